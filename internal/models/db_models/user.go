package db_models

type UserRole string

const (
	RoleParent UserRole = "parent"
	RoleUser   UserRole = "user"
)

type User struct {
	BaseModel
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	FamilyID     int64    `json:"familyId"`
}

func (u User) IsParent() bool { return u.Role == RoleParent }

// UserUpdate lists the user fields that may change after registration.
type UserUpdate struct {
	FirstName    *string
	LastName     *string
	Email        *string
	PasswordHash *string
	Role         *UserRole
}

func (u UserUpdate) Apply(user *User) {
	if u.FirstName != nil {
		user.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		user.LastName = *u.LastName
	}
	if u.Email != nil {
		user.Email = *u.Email
	}
	if u.PasswordHash != nil {
		user.PasswordHash = *u.PasswordHash
	}
	if u.Role != nil {
		user.Role = *u.Role
	}
}
