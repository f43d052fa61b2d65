package request_models

type BudgetPlanningRequest struct {
	TotalBudget         int64            `json:"totalBudget" binding:"required,gt=0,max=1000000000000"`
	CategoryAllocations map[string]int64 `json:"categoryAllocations" binding:"required,dive,gte=0,max=1000000000000"`
}
