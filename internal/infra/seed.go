package infra

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"familybudget/internal/models/db_models"
	"familybudget/internal/repositories"
	"familybudget/pkg/utils"
)

const (
	DemoUsername = "demo"
	DemoPassword = "demo123"
)

var demoTransactions = []struct {
	txn       db_models.Transaction
	createdAt time.Time
}{
	{db_models.Transaction{Date: "15 мая", Description: "Продукты в магазине", Amount: -5200, Category: "Еда", Type: db_models.TxnExpense},
		time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC)},
	{db_models.Transaction{Date: "12 мая", Description: "Зарплата", Amount: 65000, Category: "Доход", Type: db_models.TxnIncome},
		time.Date(2023, 5, 12, 0, 0, 0, 0, time.UTC)},
	{db_models.Transaction{Date: "10 мая", Description: "Кино с семьей", Amount: -2800, Category: "Развлечения", Type: db_models.TxnExpense},
		time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC)},
}

// SeedDemo creates the demo family, its parent account and three sample
// transactions. It does nothing when the demo account already exists.
func SeedDemo(
	users repositories.UserRepository,
	families repositories.FamilyRepository,
	txns repositories.TransactionRepository,
	bcryptCost int,
	logger *zap.Logger,
) error {
	if users.FindByUsername(DemoUsername) != nil {
		return nil
	}

	hashedPassword, err := utils.HashPassword(DemoPassword, bcryptCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	family := families.CreateFamily("Семья Демо")
	user := users.CreateUser(db_models.User{
		Username:     DemoUsername,
		PasswordHash: hashedPassword,
		FirstName:    "Демо",
		LastName:     "Пользователь",
		Email:        "demo@example.com",
		Role:         db_models.RoleParent,
		FamilyID:     family.ID,
	})

	for _, d := range demoTransactions {
		t := d.txn
		t.UserID = user.ID
		t.FamilyID = family.ID
		txns.SeedTransaction(t, d.createdAt)
	}

	logger.Info("demo data seeded",
		zap.Int64("user_id", user.ID),
		zap.Int64("family_id", family.ID),
		zap.Int("transactions", len(demoTransactions)),
	)
	return nil
}
