package request_models

// TransactionRequest carries a positive amount; the sign comes from Type.
type TransactionRequest struct {
	Description string `json:"description" binding:"required,min=3"`
	Amount      int64  `json:"amount" binding:"required,min=1,max=1000000000000"`
	Type        string `json:"type" binding:"required,oneof=income expense"`
	Category    string `json:"category" binding:"required"`
	Date        string `json:"date" binding:"required"`
}

type UpdateTransactionRequest struct {
	Description *string `json:"description" binding:"omitempty,min=3"`
	Amount      *int64  `json:"amount" binding:"omitempty,min=1,max=1000000000000"`
	Type        *string `json:"type" binding:"omitempty,oneof=income expense"`
	Category    *string `json:"category" binding:"omitempty,min=1"`
	Date        *string `json:"date" binding:"omitempty,min=1"`
}
