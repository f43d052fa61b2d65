package request_models

type SavingsGoalRequest struct {
	Name          string `json:"name" binding:"required,min=3"`
	TargetAmount  int64  `json:"targetAmount" binding:"required,min=1,max=1000000000000"`
	CurrentAmount *int64 `json:"currentAmount" binding:"omitempty,min=0,max=1000000000000"`
	Description   string `json:"description"`
	Deadline      string `json:"deadline"`
}

type UpdateSavingsGoalRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=3"`
	TargetAmount *int64  `json:"targetAmount" binding:"omitempty,min=1,max=1000000000000"`
	Description  *string `json:"description"`
	Deadline     *string `json:"deadline"`
}

// SavingsOperationRequest is the body of a deposit or a withdrawal.
type SavingsOperationRequest struct {
	Amount      int64  `json:"amount" binding:"required,min=1,max=1000000000000"`
	Description string `json:"description" binding:"required,min=3"`
}
