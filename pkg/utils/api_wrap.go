package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusCreated, data, message)
}

func respond(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// serviceErrors maps sentinel errors to the status and message the client sees.
var serviceErrors = []struct {
	err     error
	code    int
	message string
}{
	{ErrInvalidInput, http.StatusBadRequest, "Invalid request"},
	{ErrInvalidCredentials, http.StatusUnauthorized, "Invalid username or password"},
	{ErrNotParent, http.StatusForbidden, "Forbidden: parent role required"},
	{ErrNotOwner, http.StatusForbidden, "Forbidden: you cannot modify another user's transaction"},
	{ErrNoFamily, http.StatusBadRequest, "User does not belong to a family"},
	{ErrUserNotFound, http.StatusNotFound, "User not found"},
	{ErrFamilyNotFound, http.StatusNotFound, "Family not found"},
	{ErrUsernameTaken, http.StatusBadRequest, "Username is already taken"},
	{ErrEmailAlreadyExists, http.StatusBadRequest, "Email is already in use"},
	{ErrParentLimitReached, http.StatusBadRequest, "The family already has the maximum number of parents"},
	{ErrTransactionNotFound, http.StatusNotFound, "Transaction not found"},
	{ErrGoalNotFound, http.StatusNotFound, "Savings goal not found"},
	{ErrInsufficientFunds, http.StatusBadRequest, "Insufficient funds for withdrawal"},
	{ErrPaymentNotFound, http.StatusNotFound, "Mandatory payment not found"},
	{ErrMemberNotFound, http.StatusNotFound, "Family member not found"},
	{ErrNotificationNotFound, http.StatusNotFound, "Notification not found"},
	{ErrInvalidResetToken, http.StatusBadRequest, "Reset token is invalid or expired"},
	{ErrOverAllocated, http.StatusBadRequest, "Category allocations exceed the total budget"},
}

func HandleServiceError(c *gin.Context, err error) {
	for _, se := range serviceErrors {
		if errors.Is(err, se.err) {
			RespondError(c, se.code, se.message)
			return
		}
	}

	zap.L().Error("unhandled service error",
		zap.Error(err),
		zap.String("trace_id", c.GetString("trace_id")),
		zap.String("path", c.FullPath()),
	)
	RespondError(c, http.StatusInternalServerError, "Internal server error")
}
