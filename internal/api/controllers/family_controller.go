package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"familybudget/internal/models/request_models"
	"familybudget/internal/services"
	"familybudget/pkg/utils"
)

type FamilyController struct {
	familyService services.FamilyServiceInterface
}

func NewFamilyController(familyService services.FamilyServiceInterface) *FamilyController {
	return &FamilyController{
		familyService: familyService,
	}
}

// GetFamily godoc
// @Summary Current family
// @Tags Family
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /api/family [get]
func (f *FamilyController) GetFamily(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	family, err := f.familyService.GetFamily(c.Request.Context(), user)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, family, "")
}

// ListUsers godoc
// @Summary Accounts of the current family
// @Tags Family
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /api/family/members [get]
func (f *FamilyController) ListUsers(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	users, err := f.familyService.ListUsers(c.Request.Context(), user)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "")
}

// AddUser godoc
// @Summary Add an account to the family
// @Description Parents only. The number of parents per family is capped.
// @Tags Family
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.AddFamilyUserRequest true "New account"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/family/member [post]
func (f *FamilyController) AddUser(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req request_models.AddFamilyUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, invalidRequestFormat)
		return
	}

	created, err := f.familyService.AddUser(c.Request.Context(), user, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, created, "Family member added")
}

func (f *FamilyController) ListRelatives(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	relatives, err := f.familyService.ListRelatives(c.Request.Context(), user)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, relatives, "")
}

func (f *FamilyController) AddRelative(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req request_models.FamilyMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, invalidRequestFormat)
		return
	}

	member, err := f.familyService.AddRelative(c.Request.Context(), user, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, member, "Relative added")
}

func (f *FamilyController) UpdateRelative(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req request_models.UpdateFamilyMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, invalidRequestFormat)
		return
	}

	member, err := f.familyService.UpdateRelative(c.Request.Context(), user, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, member, "Relative updated")
}

func (f *FamilyController) DeleteRelative(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := f.familyService.DeleteRelative(c.Request.Context(), user, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Relative deleted")
}
