package services

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"familybudget/internal/models/db_models"
	"familybudget/internal/models/request_models"
	"familybudget/internal/models/response_models"
	"familybudget/internal/repositories"
	"familybudget/pkg/utils"
)

type SavingsServiceInterface interface {
	ListGoals(ctx context.Context, actor db_models.User) ([]db_models.SavingsGoal, error)
	CreateGoal(ctx context.Context, actor db_models.User, request request_models.SavingsGoalRequest) (*db_models.SavingsGoal, error)
	UpdateGoal(ctx context.Context, actor db_models.User, id int64, request request_models.UpdateSavingsGoalRequest) (*db_models.SavingsGoal, error)
	DeleteGoal(ctx context.Context, actor db_models.User, id int64) error
	History(ctx context.Context, actor db_models.User, goalID int64) ([]db_models.SavingsHistory, error)
	Deposit(ctx context.Context, actor db_models.User, goalID int64, request request_models.SavingsOperationRequest) (*response_models.SavingsOperationResponse, error)
	Withdraw(ctx context.Context, actor db_models.User, goalID int64, request request_models.SavingsOperationRequest) (*response_models.SavingsOperationResponse, error)
}

type SavingsService struct {
	savingsRepo repositories.SavingsRepository
	logger      *zap.Logger
	now         func() time.Time

	// balanceMu serializes every read-check-write of a goal balance together
	// with its history entry.
	balanceMu sync.Mutex
}

func NewSavingsService(savingsRepo repositories.SavingsRepository, logger *zap.Logger) SavingsServiceInterface {
	return &SavingsService{
		savingsRepo: savingsRepo,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *SavingsService) ListGoals(_ context.Context, actor db_models.User) ([]db_models.SavingsGoal, error) {
	if err := requireFamily(actor); err != nil {
		return nil, err
	}
	return s.savingsRepo.ListGoalsByFamily(actor.FamilyID), nil
}

func (s *SavingsService) CreateGoal(_ context.Context, actor db_models.User, request request_models.SavingsGoalRequest) (*db_models.SavingsGoal, error) {
	if err := requireParent(actor); err != nil {
		return nil, err
	}

	var current int64
	if request.CurrentAmount != nil {
		current = *request.CurrentAmount
	}

	goal := s.savingsRepo.CreateGoal(db_models.SavingsGoal{
		Name:          request.Name,
		TargetAmount:  request.TargetAmount,
		CurrentAmount: current,
		Description:   request.Description,
		Deadline:      request.Deadline,
		FamilyID:      actor.FamilyID,
	})
	return &goal, nil
}

// UpdateGoal never touches the balance; deposits and withdrawals do.
func (s *SavingsService) UpdateGoal(_ context.Context, actor db_models.User, id int64, request request_models.UpdateSavingsGoalRequest) (*db_models.SavingsGoal, error) {
	if err := requireParent(actor); err != nil {
		return nil, err
	}
	if _, err := s.familyGoal(actor, id); err != nil {
		return nil, err
	}

	goal := s.savingsRepo.UpdateGoal(id, db_models.SavingsGoalUpdate{
		Name:         request.Name,
		TargetAmount: request.TargetAmount,
		Description:  request.Description,
		Deadline:     request.Deadline,
	})
	if goal == nil {
		return nil, utils.ErrGoalNotFound
	}
	return goal, nil
}

func (s *SavingsService) DeleteGoal(_ context.Context, actor db_models.User, id int64) error {
	if err := requireParent(actor); err != nil {
		return err
	}

	s.balanceMu.Lock()
	defer s.balanceMu.Unlock()

	if _, err := s.familyGoal(actor, id); err != nil {
		return err
	}
	if !s.savingsRepo.DeleteGoal(id) {
		return utils.ErrGoalNotFound
	}
	removed := s.savingsRepo.DeleteHistoryByGoal(id)

	s.logger.Info("savings goal deleted",
		zap.Int64("goal_id", id),
		zap.Int("history_removed", removed),
	)
	return nil
}

func (s *SavingsService) History(_ context.Context, actor db_models.User, goalID int64) ([]db_models.SavingsHistory, error) {
	if _, err := s.familyGoal(actor, goalID); err != nil {
		return nil, err
	}
	return s.savingsRepo.ListHistoryByGoal(goalID), nil
}

func (s *SavingsService) Deposit(_ context.Context, actor db_models.User, goalID int64, request request_models.SavingsOperationRequest) (*response_models.SavingsOperationResponse, error) {
	if err := requireFamily(actor); err != nil {
		return nil, err
	}
	return s.move(actor, goalID, db_models.SavingsDeposit, request)
}

func (s *SavingsService) Withdraw(_ context.Context, actor db_models.User, goalID int64, request request_models.SavingsOperationRequest) (*response_models.SavingsOperationResponse, error) {
	if err := requireParent(actor); err != nil {
		return nil, err
	}
	return s.move(actor, goalID, db_models.SavingsWithdrawal, request)
}

// move changes the balance and appends the history entry as one critical section.
func (s *SavingsService) move(actor db_models.User, goalID int64, kind db_models.SavingsHistoryType, request request_models.SavingsOperationRequest) (*response_models.SavingsOperationResponse, error) {
	if request.Amount <= 0 {
		return nil, utils.ErrInvalidInput
	}

	s.balanceMu.Lock()
	defer s.balanceMu.Unlock()

	goal, err := s.familyGoal(actor, goalID)
	if err != nil {
		return nil, err
	}

	var balance int64
	switch kind {
	case db_models.SavingsWithdrawal:
		if goal.CurrentAmount < request.Amount {
			return nil, utils.ErrInsufficientFunds
		}
		balance = goal.CurrentAmount - request.Amount
	default:
		if request.Amount > math.MaxInt64-goal.CurrentAmount {
			return nil, fmt.Errorf("%w: deposit would overflow the goal balance", utils.ErrInvalidInput)
		}
		balance = goal.CurrentAmount + request.Amount
	}

	updated := s.savingsRepo.UpdateGoal(goalID, db_models.SavingsGoalUpdate{CurrentAmount: &balance})
	if updated == nil {
		return nil, utils.ErrGoalNotFound
	}

	history := s.savingsRepo.CreateHistory(db_models.SavingsHistory{
		Amount:      request.Amount,
		Description: request.Description,
		Date:        utils.DateOnly(s.now()),
		GoalID:      goalID,
		Type:        kind,
		UserID:      actor.ID,
	})

	s.logger.Info("savings balance changed",
		zap.Int64("goal_id", goalID),
		zap.String("type", string(kind)),
		zap.Int64("amount", request.Amount),
		zap.Int64("balance", balance),
		zap.Int64("user_id", actor.ID),
	)

	return &response_models.SavingsOperationResponse{Goal: *updated, History: history}, nil
}

func (s *SavingsService) familyGoal(actor db_models.User, id int64) (*db_models.SavingsGoal, error) {
	if err := requireFamily(actor); err != nil {
		return nil, err
	}

	goal := s.savingsRepo.FindGoalByID(id)
	if goal == nil || goal.FamilyID != actor.FamilyID {
		return nil, utils.ErrGoalNotFound
	}
	return goal, nil
}
