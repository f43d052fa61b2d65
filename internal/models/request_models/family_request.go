package request_models

// AddFamilyUserRequest creates a login account inside the caller's family.
type AddFamilyUserRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=50"`
	Password  string `json:"password" binding:"required,min=6"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName" binding:"max=100"`
	LastName  string `json:"lastName" binding:"max=100"`
	Role      string `json:"role" binding:"omitempty,oneof=parent user"`
}

type FamilyMemberRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Relation string `json:"relation" binding:"required"`
	Age      *int   `json:"age" binding:"required,min=0,max=120"`
	UserID   *int64 `json:"userId" binding:"omitempty,min=1"`
}

// UpdateFamilyMemberRequest links a user with userId and removes the link
// with unlinkUser; sending both is rejected.
type UpdateFamilyMemberRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=2"`
	Relation   *string `json:"relation" binding:"omitempty,min=1"`
	Age        *int    `json:"age" binding:"omitempty,min=0,max=120"`
	UserID     *int64  `json:"userId" binding:"omitempty,min=1"`
	UnlinkUser bool    `json:"unlinkUser"`
}
