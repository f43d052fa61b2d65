package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"familybudget/internal/models/request_models"
	"familybudget/internal/services"
	"familybudget/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// BudgetSummary godoc
// @Summary Dashboard summary
// @Description Balance, expenses, first savings goal and category budgets for the current period
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /api/budget-summary [get]
func (d *DashboardController) BudgetSummary(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	summary, err := d.dashboardService.BudgetSummary(c.Request.Context(), user)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "")
}

// SpendingCategories godoc
// @Summary Spending split by category
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /api/spending-categories [get]
func (d *DashboardController) SpendingCategories(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	categories, err := d.dashboardService.SpendingCategories(c.Request.Context(), user)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories, "")
}

// PlanBudget godoc
// @Summary Plan the monthly budget
// @Description Parents only. Allocations may not exceed the total budget.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.BudgetPlanningRequest true "Budget plan"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/budget-planning [post]
func (d *DashboardController) PlanBudget(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req request_models.BudgetPlanningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, invalidRequestFormat)
		return
	}

	plan, err := d.dashboardService.PlanBudget(c.Request.Context(), user, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, plan, "Budget planned for the month")
}
