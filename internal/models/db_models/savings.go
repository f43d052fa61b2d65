package db_models

type SavingsGoal struct {
	BaseModel
	Name          string `json:"name"`
	TargetAmount  int64  `json:"targetAmount"`
	CurrentAmount int64  `json:"currentAmount"`
	Description   string `json:"description"`
	Deadline      string `json:"deadline,omitempty"`
	FamilyID      int64  `json:"familyId"`
}

type SavingsGoalUpdate struct {
	Name          *string
	TargetAmount  *int64
	CurrentAmount *int64
	Description   *string
	Deadline      *string
}

func (u SavingsGoalUpdate) Apply(g *SavingsGoal) {
	if u.Name != nil {
		g.Name = *u.Name
	}
	if u.TargetAmount != nil {
		g.TargetAmount = *u.TargetAmount
	}
	if u.CurrentAmount != nil {
		g.CurrentAmount = *u.CurrentAmount
	}
	if u.Description != nil {
		g.Description = *u.Description
	}
	if u.Deadline != nil {
		g.Deadline = *u.Deadline
	}
}

type SavingsHistoryType string

const (
	SavingsDeposit    SavingsHistoryType = "deposit"
	SavingsWithdrawal SavingsHistoryType = "withdrawal"
)

// SavingsHistory is the append-only trail of goal balance changes.
type SavingsHistory struct {
	BaseModel
	Amount      int64              `json:"amount"`
	Description string             `json:"description"`
	Date        string             `json:"date"`
	GoalID      int64              `json:"goalId"`
	Type        SavingsHistoryType `json:"type"`
	UserID      int64              `json:"userId"`
}
