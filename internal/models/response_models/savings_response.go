package response_models

import "familybudget/internal/models/db_models"

type SavingsOperationResponse struct {
	Goal    db_models.SavingsGoal    `json:"goal"`
	History db_models.SavingsHistory `json:"history"`
}
