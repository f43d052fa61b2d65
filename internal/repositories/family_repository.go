package repositories

import "familybudget/internal/models/db_models"

type FamilyRepository interface {
	CreateFamily(name string) db_models.Family
	FindByID(id int64) *db_models.Family
}

type familyRepository struct {
	families *collection[db_models.Family, *db_models.Family]
}

func NewFamilyRepository(store *Store) FamilyRepository {
	return &familyRepository{families: store.families}
}

func (r *familyRepository) CreateFamily(name string) db_models.Family {
	return r.families.insert(db_models.Family{Name: name})
}

func (r *familyRepository) FindByID(id int64) *db_models.Family {
	f, _ := r.families.get(id)
	return f
}

type FamilyMemberRepository interface {
	CreateMember(m db_models.FamilyMember) db_models.FamilyMember
	FindByID(id int64) *db_models.FamilyMember
	ListByFamily(familyID int64) []db_models.FamilyMember
	UpdateMember(id int64, update db_models.FamilyMemberUpdate) *db_models.FamilyMember
	DeleteMember(id int64) bool
}

type familyMemberRepository struct {
	members *collection[db_models.FamilyMember, *db_models.FamilyMember]
}

func NewFamilyMemberRepository(store *Store) FamilyMemberRepository {
	return &familyMemberRepository{members: store.familyMembers}
}

func (r *familyMemberRepository) CreateMember(m db_models.FamilyMember) db_models.FamilyMember {
	if m.UserID != nil {
		id := *m.UserID
		m.UserID = &id
	}
	return r.members.insert(m)
}

func (r *familyMemberRepository) FindByID(id int64) *db_models.FamilyMember {
	m, _ := r.members.get(id)
	return m
}

func (r *familyMemberRepository) ListByFamily(familyID int64) []db_models.FamilyMember {
	return r.members.filter(func(m db_models.FamilyMember) bool { return m.FamilyID == familyID })
}

func (r *familyMemberRepository) UpdateMember(id int64, update db_models.FamilyMemberUpdate) *db_models.FamilyMember {
	m, _ := r.members.update(id, update.Apply)
	return m
}

func (r *familyMemberRepository) DeleteMember(id int64) bool {
	return r.members.remove(id)
}
