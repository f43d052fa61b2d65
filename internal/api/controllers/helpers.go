package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"familybudget/internal/models/db_models"
	"familybudget/pkg/middleware"
	"familybudget/pkg/utils"
)

const invalidRequestFormat = "Invalid request format"

// actor returns the authenticated user or writes a 401 and reports false.
func actor(c *gin.Context) (db_models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return db_models.User{}, false
	}
	return user, true
}

// idParam parses the :id path parameter or writes a 400 and reports false.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}
