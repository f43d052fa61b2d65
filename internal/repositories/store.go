package repositories

import (
	"errors"
	"time"

	"familybudget/internal/models/db_models"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already taken")
	ErrParentLimitReached = errors.New("family parent limit reached")
)

// Store owns every in-memory collection of the process. Nothing is persisted:
// a new Store starts empty and its data dies with it.
type Store struct {
	users          *collection[db_models.User, *db_models.User]
	families       *collection[db_models.Family, *db_models.Family]
	transactions   *collection[db_models.Transaction, *db_models.Transaction]
	savingsGoals   *collection[db_models.SavingsGoal, *db_models.SavingsGoal]
	savingsHistory *collection[db_models.SavingsHistory, *db_models.SavingsHistory]
	familyMembers  *collection[db_models.FamilyMember, *db_models.FamilyMember]
	payments       *collection[db_models.Payment, *db_models.Payment]
	notifications  *collection[db_models.Notification, *db_models.Notification]
}

type StoreOption func(*storeOptions)

type storeOptions struct {
	now func() time.Time
}

// WithClock replaces time.Now as the source of creation timestamps.
func WithClock(now func() time.Time) StoreOption {
	return func(o *storeOptions) { o.now = now }
}

func NewStore(opts ...StoreOption) *Store {
	o := storeOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return &Store{
		users:          newCollection[db_models.User](o.now),
		families:       newCollection[db_models.Family](o.now),
		transactions:   newCollection[db_models.Transaction](o.now),
		savingsGoals:   newCollection[db_models.SavingsGoal](o.now),
		savingsHistory: newCollection[db_models.SavingsHistory](o.now),
		familyMembers:  newCollection[db_models.FamilyMember](o.now),
		payments:       newCollection[db_models.Payment](o.now),
		notifications:  newCollection[db_models.Notification](o.now),
	}
}
