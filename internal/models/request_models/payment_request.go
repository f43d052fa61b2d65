package request_models

type PaymentRequest struct {
	Name        string `json:"name" binding:"required"`
	Amount      int64  `json:"amount" binding:"required,min=1,max=1000000000000"`
	DueDate     string `json:"dueDate" binding:"required"`
	Category    string `json:"category" binding:"required"`
	IsCompleted bool   `json:"isCompleted"`
}

type UpdatePaymentRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Amount      *int64  `json:"amount" binding:"omitempty,min=1,max=1000000000000"`
	DueDate     *string `json:"dueDate" binding:"omitempty,min=1"`
	Category    *string `json:"category" binding:"omitempty,min=1"`
	IsCompleted *bool   `json:"isCompleted"`
}
