package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"familybudget/internal/models/request_models"
	"familybudget/internal/services"
	"familybudget/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// List godoc
// @Summary Mandatory payments of the family
// @Tags Payments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /api/payments [get]
func (p *PaymentController) List(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	payments, err := p.paymentService.List(c.Request.Context(), user)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, payments, "")
}

func (p *PaymentController) Create(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req request_models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, invalidRequestFormat)
		return
	}

	payment, err := p.paymentService.Create(c.Request.Context(), user, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, payment, "Payment created")
}

func (p *PaymentController) Update(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req request_models.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, invalidRequestFormat)
		return
	}

	payment, err := p.paymentService.Update(c.Request.Context(), user, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, payment, "Payment updated")
}

func (p *PaymentController) Delete(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := p.paymentService.Delete(c.Request.Context(), user, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Payment deleted")
}
