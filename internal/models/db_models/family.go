package db_models

// Family is the tenancy boundary: users, transactions, goals and payments hang off it.
type Family struct {
	BaseModel
	Name string `json:"name"`
}

// FamilyMember is a relative record; it may be linked to a user account.
type FamilyMember struct {
	BaseModel
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Age      int    `json:"age"`
	UserID   *int64 `json:"userId"`
	FamilyID int64  `json:"familyId"`
}

// FamilyMemberUpdate leaves nil fields untouched. ClearUserID unlinks the
// account and takes precedence over UserID.
type FamilyMemberUpdate struct {
	Name        *string
	Relation    *string
	Age         *int
	UserID      *int64
	ClearUserID bool
}

func (u FamilyMemberUpdate) Apply(m *FamilyMember) {
	if u.Name != nil {
		m.Name = *u.Name
	}
	if u.Relation != nil {
		m.Relation = *u.Relation
	}
	if u.Age != nil {
		m.Age = *u.Age
	}
	switch {
	case u.ClearUserID:
		m.UserID = nil
	case u.UserID != nil:
		id := *u.UserID
		m.UserID = &id
	}
}
