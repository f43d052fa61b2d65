package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"familybudget/internal/models/db_models"
	"familybudget/internal/models/request_models"
	"familybudget/internal/models/response_models"
	"familybudget/internal/repositories"
	"familybudget/pkg/utils"
)

const fallbackCategoryColor = "#94A3B8"

var defaultCategoryBudgets = []response_models.CategoryBudget{
	{Name: "Еда", Allocated: 15000, Color: "bg-orange-500"},
	{Name: "Транспорт", Allocated: 8000, Color: "bg-blue-500"},
	{Name: "Развлечения", Allocated: 6000, Color: "bg-purple-500"},
	{Name: "Обязательные платежи", Allocated: 20000, Color: "bg-red-500"},
	{Name: "Одежда", Allocated: 5000, Color: "bg-indigo-500"},
	{Name: "Здоровье", Allocated: 4000, Color: "bg-green-500"},
	{Name: "Образование", Allocated: 3000, Color: "bg-amber-500"},
	{Name: "Другое", Allocated: 4000, Color: "bg-gray-500"},
}

var spendingColors = map[string]string{
	"Еда":          "#F97316",
	"Транспорт":    "#3B82F6",
	"Развлечения":  "#10B981",
	"Обязательные": "#EF4444",
	"Прочее":       "#F59E0B",
}

// defaultSpending is shown to users who have not recorded any expense yet.
var defaultSpending = []response_models.SpendingCategory{
	{Name: "Еда", Percentage: 35, Color: "#F97316"},
	{Name: "Транспорт", Percentage: 20, Color: "#3B82F6"},
	{Name: "Развлечения", Percentage: 15, Color: "#10B981"},
	{Name: "Обязательные", Percentage: 25, Color: "#EF4444"},
	{Name: "Прочее", Percentage: 5, Color: "#F59E0B"},
}

type DashboardServiceInterface interface {
	BudgetSummary(ctx context.Context, actor db_models.User) (*response_models.BudgetSummary, error)
	SpendingCategories(ctx context.Context, actor db_models.User) ([]response_models.SpendingCategory, error)
	PlanBudget(ctx context.Context, actor db_models.User, request request_models.BudgetPlanningRequest) (*response_models.PlannedBudget, error)
}

type DashboardService struct {
	txnRepo     repositories.TransactionRepository
	savingsRepo repositories.SavingsRepository
	now         func() time.Time
}

func NewDashboardService(txnRepo repositories.TransactionRepository, savingsRepo repositories.SavingsRepository) DashboardServiceInterface {
	return &DashboardService{
		txnRepo:     txnRepo,
		savingsRepo: savingsRepo,
		now:         time.Now,
	}
}

func (s *DashboardService) BudgetSummary(_ context.Context, actor db_models.User) (*response_models.BudgetSummary, error) {
	if err := requireFamily(actor); err != nil {
		return nil, err
	}

	var balance, expenses int64
	for _, txn := range s.txnRepo.ListByFamily(actor.FamilyID) {
		if txn.Type == db_models.TxnIncome {
			balance += txn.Amount
			continue
		}
		balance -= absInt(txn.Amount)
		expenses += absInt(txn.Amount)
	}

	summary := &response_models.BudgetSummary{
		Balance:             balance,
		MonthlyExpenses:     expenses,
		NeedsBudgetPlanning: true,
		CurrentPeriod:       utils.PeriodLabel(s.now()),
	}

	if goals := s.savingsRepo.ListGoalsByFamily(actor.FamilyID); len(goals) > 0 {
		goal := goals[0]
		summary.SavingsGoal = &response_models.GoalProgress{
			Name:     goal.Name,
			Target:   goal.TargetAmount,
			Current:  goal.CurrentAmount,
			Progress: percent(goal.CurrentAmount, goal.TargetAmount),
		}
	}

	spent, _ := s.userExpenses(actor.ID)
	summary.CategoryBudgets = make([]response_models.CategoryBudget, len(defaultCategoryBudgets))
	for i, budget := range defaultCategoryBudgets {
		budget.Spent = spent[budget.Name]
		summary.CategoryBudgets[i] = budget
	}

	return summary, nil
}

func (s *DashboardService) SpendingCategories(_ context.Context, actor db_models.User) ([]response_models.SpendingCategory, error) {
	if err := requireFamily(actor); err != nil {
		return nil, err
	}

	spent, order := s.userExpenses(actor.ID)
	if len(order) == 0 {
		out := make([]response_models.SpendingCategory, len(defaultSpending))
		copy(out, defaultSpending)
		return out, nil
	}

	var total int64
	for _, amount := range spent {
		total += amount
	}

	out := make([]response_models.SpendingCategory, 0, len(order))
	for _, name := range order {
		color, ok := spendingColors[name]
		if !ok {
			color = fallbackCategoryColor
		}
		out = append(out, response_models.SpendingCategory{
			Name:       name,
			Percentage: percent(spent[name], total),
			Color:      color,
		})
	}
	return out, nil
}

// PlanBudget validates the plan and echoes it back; plans are not stored.
func (s *DashboardService) PlanBudget(_ context.Context, actor db_models.User, request request_models.BudgetPlanningRequest) (*response_models.PlannedBudget, error) {
	if err := requireParent(actor); err != nil {
		return nil, err
	}
	if request.TotalBudget <= 0 || request.CategoryAllocations == nil {
		return nil, utils.ErrInvalidInput
	}

	var allocated int64
	for _, amount := range request.CategoryAllocations {
		if amount < 0 {
			return nil, utils.ErrInvalidInput
		}
		allocated += amount
	}
	if allocated > request.TotalBudget {
		return nil, utils.ErrOverAllocated
	}

	return &response_models.PlannedBudget{
		TotalBudget:         request.TotalBudget,
		CategoryAllocations: request.CategoryAllocations,
		Month:               utils.PeriodLabel(s.now()),
		Unallocated:         request.TotalBudget - allocated,
	}, nil
}

// userExpenses sums the user's expenses per category. order lists categories
// by first appearance in the newest-first transaction list.
func (s *DashboardService) userExpenses(userID int64) (map[string]int64, []string) {
	spent := make(map[string]int64)
	var order []string
	for _, txn := range s.txnRepo.ListByUser(userID) {
		if txn.Type != db_models.TxnExpense {
			continue
		}
		if _, seen := spent[txn.Category]; !seen {
			order = append(order, txn.Category)
		}
		spent[txn.Category] += absInt(txn.Amount)
	}
	return spent, order
}

var hundred = decimal.NewFromInt(100)

// percent rounds half away from zero.
func percent(part, whole int64) int {
	if whole == 0 {
		return 0
	}
	return int(decimal.NewFromInt(part).Mul(hundred).Div(decimal.NewFromInt(whole)).Round(0).IntPart())
}
