package services

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"

	"familybudget/internal/models/db_models"
	"familybudget/internal/repositories"
	mem "familybudget/pkg/memcache"
	"familybudget/pkg/utils"
)

// testRig wires every service against one fresh store.
type testRig struct {
	store         *repositories.Store
	users         repositories.UserRepository
	families      repositories.FamilyRepository
	members       repositories.FamilyMemberRepository
	txns          repositories.TransactionRepository
	savings       repositories.SavingsRepository
	payments      repositories.PaymentRepository
	notifications repositories.NotificationRepository

	resetTokens *mem.ResetTokens
	revoked     *mem.RevokedTokens
	tokens      *utils.TokenIssuer

	notify    NotificationServiceInterface
	account   AccountServiceInterface
	family    FamilyServiceInterface
	txn       TransactionServiceInterface
	savingsSv SavingsServiceInterface
	payment   PaymentServiceInterface
	dashboard DashboardServiceInterface
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()

	logger := zaptest.NewLogger(t)
	store := repositories.NewStore()
	r := &testRig{
		store:         store,
		users:         repositories.NewUserRepository(store),
		families:      repositories.NewFamilyRepository(store),
		members:       repositories.NewFamilyMemberRepository(store),
		txns:          repositories.NewTransactionRepository(store),
		savings:       repositories.NewSavingsRepository(store),
		payments:      repositories.NewPaymentRepository(store),
		notifications: repositories.NewNotificationRepository(store),
		resetTokens:   mem.NewResetTokens(),
		revoked:       mem.NewRevokedTokens(),
		tokens:        utils.NewTokenIssuer("test-secret", "familybudget-test", time.Hour),
	}

	r.notify = NewNotificationService(r.notifications)
	r.account = NewAccountService(r.users, r.families, r.notify, r.tokens, r.resetTokens, r.revoked, AccountOptions{
		BcryptCost:    bcrypt.MinCost,
		ResetTokenTTL: time.Minute,
		MaxParents:    2,
	}, logger)
	r.family = NewFamilyService(r.families, r.users, r.members, r.notify, FamilyOptions{
		BcryptCost: bcrypt.MinCost,
		MaxParents: 2,
	}, logger)
	r.txn = NewTransactionService(r.txns)
	r.savingsSv = NewSavingsService(r.savings, logger)
	r.payment = NewPaymentService(r.payments)
	r.dashboard = NewDashboardService(r.txns, r.savings)
	return r
}

// seedFamily creates a family with a parent and a child account.
func (r *testRig) seedFamily(name string) (parent, child db_models.User) {
	family := r.families.CreateFamily(name)
	parent = r.users.CreateUser(db_models.User{
		Username: name + "-parent",
		Email:    name + "-parent@example.com",
		Role:     db_models.RoleParent,
		FamilyID: family.ID,
	})
	child = r.users.CreateUser(db_models.User{
		Username: name + "-child",
		Email:    name + "-child@example.com",
		Role:     db_models.RoleUser,
		FamilyID: family.ID,
	})
	return parent, child
}

var ctx = context.Background()

func ptr[T any](v T) *T {
	return &v
}
