package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"familybudget/internal/models/request_models"
	"familybudget/internal/services"
	"familybudget/pkg/utils"
)

type TransactionController struct {
	transactionService services.TransactionServiceInterface
}

func NewTransactionController(transactionService services.TransactionServiceInterface) *TransactionController {
	return &TransactionController{
		transactionService: transactionService,
	}
}

// ListFamily godoc
// @Summary Family transactions, newest first
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /api/transactions [get]
func (t *TransactionController) ListFamily(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	txns, err := t.transactionService.ListFamily(c.Request.Context(), user)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, txns, "")
}

// ListMine godoc
// @Summary Transactions of the current user, newest first
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /api/transactions/mine [get]
func (t *TransactionController) ListMine(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	txns, err := t.transactionService.ListMine(c.Request.Context(), user)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, txns, "")
}

// Create godoc
// @Summary Record a transaction
// @Description The amount is always positive in the request; expenses are stored negative.
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.TransactionRequest true "Transaction"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/transactions [post]
func (t *TransactionController) Create(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req request_models.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, invalidRequestFormat)
		return
	}

	txn, err := t.transactionService.Create(c.Request.Context(), user, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, txn, "Transaction created")
}

// Update godoc
// @Summary Update a transaction
// @Description Allowed to the author and to parents of the same family.
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Param request body request_models.UpdateTransactionRequest true "Changed fields"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/transactions/{id} [put]
func (t *TransactionController) Update(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req request_models.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, invalidRequestFormat)
		return
	}

	txn, err := t.transactionService.Update(c.Request.Context(), user, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, txn, "Transaction updated")
}

// Delete godoc
// @Summary Delete a transaction
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/transactions/{id} [delete]
func (t *TransactionController) Delete(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := t.transactionService.Delete(c.Request.Context(), user, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Transaction deleted")
}
