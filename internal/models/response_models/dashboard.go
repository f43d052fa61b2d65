package response_models

type GoalProgress struct {
	Name     string `json:"name"`
	Target   int64  `json:"target"`
	Current  int64  `json:"current"`
	Progress int    `json:"progress"`
}

type CategoryBudget struct {
	Name      string `json:"name"`
	Allocated int64  `json:"allocated"`
	Spent     int64  `json:"spent"`
	Color     string `json:"color"`
}

type BudgetSummary struct {
	Balance             int64            `json:"balance"`
	MonthlyExpenses     int64            `json:"monthlyExpenses"`
	SavingsGoal         *GoalProgress    `json:"savingsGoal"`
	NeedsBudgetPlanning bool             `json:"needsBudgetPlanning"`
	CategoryBudgets     []CategoryBudget `json:"categoryBudgets"`
	CurrentPeriod       string           `json:"currentPeriod"`
}

type SpendingCategory struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
	Color      string `json:"color"`
}

type PlannedBudget struct {
	TotalBudget         int64            `json:"totalBudget"`
	CategoryAllocations map[string]int64 `json:"categoryAllocations"`
	Month               string           `json:"month"`
	Unallocated         int64            `json:"unallocated"`
}
