package repositories

import (
	"time"

	"familybudget/internal/models/db_models"
)

type TransactionRepository interface {
	CreateTransaction(t db_models.Transaction) db_models.Transaction
	// SeedTransaction stores t with a fixed creation time.
	SeedTransaction(t db_models.Transaction, createdAt time.Time) db_models.Transaction
	FindByID(id int64) *db_models.Transaction
	// ListByFamily and ListByUser return newest first.
	ListByFamily(familyID int64) []db_models.Transaction
	ListByUser(userID int64) []db_models.Transaction
	UpdateTransaction(id int64, update db_models.TransactionUpdate) *db_models.Transaction
	DeleteTransaction(id int64) bool
}

type transactionRepository struct {
	txns *collection[db_models.Transaction, *db_models.Transaction]
}

func NewTransactionRepository(store *Store) TransactionRepository {
	return &transactionRepository{txns: store.transactions}
}

func (r *transactionRepository) CreateTransaction(t db_models.Transaction) db_models.Transaction {
	return r.txns.insert(t)
}

func (r *transactionRepository) SeedTransaction(t db_models.Transaction, createdAt time.Time) db_models.Transaction {
	return r.txns.insertAt(t, createdAt)
}

func (r *transactionRepository) FindByID(id int64) *db_models.Transaction {
	t, _ := r.txns.get(id)
	return t
}

func (r *transactionRepository) ListByFamily(familyID int64) []db_models.Transaction {
	return r.txns.filterNewest(func(t db_models.Transaction) bool { return t.FamilyID == familyID })
}

func (r *transactionRepository) ListByUser(userID int64) []db_models.Transaction {
	return r.txns.filterNewest(func(t db_models.Transaction) bool { return t.UserID == userID })
}

func (r *transactionRepository) UpdateTransaction(id int64, update db_models.TransactionUpdate) *db_models.Transaction {
	t, _ := r.txns.update(id, update.Apply)
	return t
}

func (r *transactionRepository) DeleteTransaction(id int64) bool {
	return r.txns.remove(id)
}
