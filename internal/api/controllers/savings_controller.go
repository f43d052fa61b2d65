package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"familybudget/internal/models/db_models"
	"familybudget/internal/models/request_models"
	"familybudget/internal/models/response_models"
	"familybudget/internal/services"
	"familybudget/pkg/utils"
)

type SavingsController struct {
	savingsService services.SavingsServiceInterface
}

func NewSavingsController(savingsService services.SavingsServiceInterface) *SavingsController {
	return &SavingsController{
		savingsService: savingsService,
	}
}

func (s *SavingsController) ListGoals(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	goals, err := s.savingsService.ListGoals(c.Request.Context(), user)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, goals, "")
}

func (s *SavingsController) CreateGoal(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req request_models.SavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, invalidRequestFormat)
		return
	}

	goal, err := s.savingsService.CreateGoal(c.Request.Context(), user, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, goal, "Savings goal created")
}

func (s *SavingsController) UpdateGoal(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req request_models.UpdateSavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, invalidRequestFormat)
		return
	}

	goal, err := s.savingsService.UpdateGoal(c.Request.Context(), user, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, goal, "Savings goal updated")
}

func (s *SavingsController) DeleteGoal(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := s.savingsService.DeleteGoal(c.Request.Context(), user, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Savings goal deleted")
}

func (s *SavingsController) History(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	history, err := s.savingsService.History(c.Request.Context(), user, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, history, "")
}

// Deposit godoc
// @Summary Deposit into a savings goal
// @Tags Savings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Goal ID"
// @Param request body request_models.SavingsOperationRequest true "Amount and description"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/savings-goals/{id}/deposit [post]
func (s *SavingsController) Deposit(c *gin.Context) {
	s.operate(c, s.savingsService.Deposit, "Deposit recorded")
}

// Withdraw godoc
// @Summary Withdraw from a savings goal
// @Description Parents only. Fails when the amount exceeds the balance.
// @Tags Savings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Goal ID"
// @Param request body request_models.SavingsOperationRequest true "Amount and description"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/savings-goals/{id}/withdraw [post]
func (s *SavingsController) Withdraw(c *gin.Context) {
	s.operate(c, s.savingsService.Withdraw, "Withdrawal recorded")
}

type savingsOperation func(ctx context.Context, actor db_models.User, goalID int64, request request_models.SavingsOperationRequest) (*response_models.SavingsOperationResponse, error)

func (s *SavingsController) operate(c *gin.Context, op savingsOperation, message string) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req request_models.SavingsOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, invalidRequestFormat)
		return
	}

	res, err := op(c.Request.Context(), user, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, res, message)
}
