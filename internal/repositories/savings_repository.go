package repositories

import "familybudget/internal/models/db_models"

type SavingsRepository interface {
	CreateGoal(g db_models.SavingsGoal) db_models.SavingsGoal
	FindGoalByID(id int64) *db_models.SavingsGoal
	ListGoalsByFamily(familyID int64) []db_models.SavingsGoal
	UpdateGoal(id int64, update db_models.SavingsGoalUpdate) *db_models.SavingsGoal
	DeleteGoal(id int64) bool

	CreateHistory(h db_models.SavingsHistory) db_models.SavingsHistory
	// ListHistoryByGoal returns newest first.
	ListHistoryByGoal(goalID int64) []db_models.SavingsHistory
	DeleteHistoryByGoal(goalID int64) int
}

type savingsRepository struct {
	goals   *collection[db_models.SavingsGoal, *db_models.SavingsGoal]
	history *collection[db_models.SavingsHistory, *db_models.SavingsHistory]
}

func NewSavingsRepository(store *Store) SavingsRepository {
	return &savingsRepository{
		goals:   store.savingsGoals,
		history: store.savingsHistory,
	}
}

func (r *savingsRepository) CreateGoal(g db_models.SavingsGoal) db_models.SavingsGoal {
	return r.goals.insert(g)
}

func (r *savingsRepository) FindGoalByID(id int64) *db_models.SavingsGoal {
	g, _ := r.goals.get(id)
	return g
}

func (r *savingsRepository) ListGoalsByFamily(familyID int64) []db_models.SavingsGoal {
	return r.goals.filter(func(g db_models.SavingsGoal) bool { return g.FamilyID == familyID })
}

func (r *savingsRepository) UpdateGoal(id int64, update db_models.SavingsGoalUpdate) *db_models.SavingsGoal {
	g, _ := r.goals.update(id, update.Apply)
	return g
}

func (r *savingsRepository) DeleteGoal(id int64) bool {
	return r.goals.remove(id)
}

func (r *savingsRepository) CreateHistory(h db_models.SavingsHistory) db_models.SavingsHistory {
	return r.history.insert(h)
}

func (r *savingsRepository) ListHistoryByGoal(goalID int64) []db_models.SavingsHistory {
	return r.history.filterNewest(func(h db_models.SavingsHistory) bool { return h.GoalID == goalID })
}

func (r *savingsRepository) DeleteHistoryByGoal(goalID int64) int {
	return r.history.removeWhere(func(h db_models.SavingsHistory) bool { return h.GoalID == goalID })
}
