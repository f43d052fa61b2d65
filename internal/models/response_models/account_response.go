package response_models

import (
	"time"

	"familybudget/internal/models/db_models"
)

type AuthResponse struct {
	User      db_models.User `json:"user"`
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
}
