package repositories

import (
	"strings"

	"familybudget/internal/models/db_models"
)

type UserRepository interface {
	// CreateUser stores u as given. It checks nothing, not even the parent cap.
	CreateUser(u db_models.User) db_models.User
	// CreateUserUnique stores u only if username and email are free and, for a parent,
	// the family has fewer than maxParents parents. Checks and insert are one step.
	CreateUserUnique(u db_models.User, maxParents int) (db_models.User, error)
	FindByID(id int64) *db_models.User
	FindByUsername(username string) *db_models.User
	FindByEmail(email string) *db_models.User
	UpdateUser(id int64, update db_models.UserUpdate) *db_models.User
	ListByFamily(familyID int64) []db_models.User
	ListByRole(familyID int64, role db_models.UserRole) []db_models.User
}

type userRepository struct {
	users *collection[db_models.User, *db_models.User]
}

func NewUserRepository(store *Store) UserRepository {
	return &userRepository{users: store.users}
}

func (r *userRepository) CreateUser(u db_models.User) db_models.User {
	return r.users.insert(u)
}

func (r *userRepository) CreateUserUnique(u db_models.User, maxParents int) (db_models.User, error) {
	return r.users.insertIf(u, func(existing []db_models.User) error {
		parents := 0
		for _, other := range existing {
			if other.Username == u.Username {
				return ErrUsernameTaken
			}
			if strings.EqualFold(other.Email, u.Email) {
				return ErrEmailTaken
			}
			if other.FamilyID == u.FamilyID && other.IsParent() {
				parents++
			}
		}
		if u.IsParent() && parents >= maxParents {
			return ErrParentLimitReached
		}
		return nil
	})
}

func (r *userRepository) FindByID(id int64) *db_models.User {
	u, _ := r.users.get(id)
	return u
}

func (r *userRepository) FindByUsername(username string) *db_models.User {
	return r.users.find(func(u db_models.User) bool { return u.Username == username })
}

func (r *userRepository) FindByEmail(email string) *db_models.User {
	return r.users.find(func(u db_models.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *userRepository) UpdateUser(id int64, update db_models.UserUpdate) *db_models.User {
	u, _ := r.users.update(id, update.Apply)
	return u
}

func (r *userRepository) ListByFamily(familyID int64) []db_models.User {
	return r.users.filter(func(u db_models.User) bool { return u.FamilyID == familyID })
}

func (r *userRepository) ListByRole(familyID int64, role db_models.UserRole) []db_models.User {
	return r.users.filter(func(u db_models.User) bool {
		return u.FamilyID == familyID && u.Role == role
	})
}
