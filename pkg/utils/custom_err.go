package utils

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrNotParent            = errors.New("parent role required")
	ErrNoFamily             = errors.New("user does not belong to a family")
	ErrUserNotFound         = errors.New("user not found")
	ErrFamilyNotFound       = errors.New("family not found")
	ErrUsernameTaken        = errors.New("username already taken")
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrParentLimitReached   = errors.New("family already has the maximum number of parents")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrNotOwner             = errors.New("transaction belongs to another user")
	ErrGoalNotFound         = errors.New("savings goal not found")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrMemberNotFound       = errors.New("family member not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidResetToken    = errors.New("invalid or expired reset token")
	ErrOverAllocated        = errors.New("allocations exceed total budget")
	ErrTokenIssue           = errors.New("could not issue token")
)
