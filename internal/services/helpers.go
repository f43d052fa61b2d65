package services

import (
	"familybudget/internal/models/db_models"
	"familybudget/pkg/utils"
)

func requireFamily(actor db_models.User) error {
	if actor.FamilyID == 0 {
		return utils.ErrNoFamily
	}
	return nil
}

func requireParent(actor db_models.User) error {
	if err := requireFamily(actor); err != nil {
		return err
	}
	if !actor.IsParent() {
		return utils.ErrNotParent
	}
	return nil
}

func absInt(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
