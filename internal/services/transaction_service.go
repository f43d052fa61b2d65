package services

import (
	"context"

	"familybudget/internal/models/db_models"
	"familybudget/internal/models/request_models"
	"familybudget/internal/repositories"
	"familybudget/pkg/utils"
)

type TransactionServiceInterface interface {
	ListFamily(ctx context.Context, actor db_models.User) ([]db_models.Transaction, error)
	ListMine(ctx context.Context, actor db_models.User) ([]db_models.Transaction, error)
	Create(ctx context.Context, actor db_models.User, request request_models.TransactionRequest) (*db_models.Transaction, error)
	Update(ctx context.Context, actor db_models.User, id int64, request request_models.UpdateTransactionRequest) (*db_models.Transaction, error)
	Delete(ctx context.Context, actor db_models.User, id int64) error
}

type TransactionService struct {
	txnRepo repositories.TransactionRepository
}

func NewTransactionService(txnRepo repositories.TransactionRepository) TransactionServiceInterface {
	return &TransactionService{txnRepo: txnRepo}
}

func (s *TransactionService) ListFamily(_ context.Context, actor db_models.User) ([]db_models.Transaction, error) {
	if err := requireFamily(actor); err != nil {
		return nil, err
	}
	return s.txnRepo.ListByFamily(actor.FamilyID), nil
}

func (s *TransactionService) ListMine(_ context.Context, actor db_models.User) ([]db_models.Transaction, error) {
	return s.txnRepo.ListByUser(actor.ID), nil
}

func (s *TransactionService) Create(_ context.Context, actor db_models.User, request request_models.TransactionRequest) (*db_models.Transaction, error) {
	if err := requireFamily(actor); err != nil {
		return nil, err
	}

	txnType := db_models.TransactionType(request.Type)
	txn := s.txnRepo.CreateTransaction(db_models.Transaction{
		Date:        request.Date,
		Description: request.Description,
		Amount:      db_models.SignedAmount(txnType, request.Amount),
		Category:    request.Category,
		Type:        txnType,
		UserID:      actor.ID,
		FamilyID:    actor.FamilyID,
	})
	return &txn, nil
}

func (s *TransactionService) Update(_ context.Context, actor db_models.User, id int64, request request_models.UpdateTransactionRequest) (*db_models.Transaction, error) {
	existing, err := s.editable(actor, id)
	if err != nil {
		return nil, err
	}

	update := db_models.TransactionUpdate{
		Date:        request.Date,
		Description: request.Description,
		Category:    request.Category,
	}

	// the sign follows the resulting type, so a type change alone flips the amount
	txnType := existing.Type
	if request.Type != nil {
		txnType = db_models.TransactionType(*request.Type)
		update.Type = &txnType
	}
	if request.Amount != nil || request.Type != nil {
		amount := existing.Amount
		if request.Amount != nil {
			amount = *request.Amount
		}
		signed := db_models.SignedAmount(txnType, amount)
		update.Amount = &signed
	}

	txn := s.txnRepo.UpdateTransaction(id, update)
	if txn == nil {
		return nil, utils.ErrTransactionNotFound
	}
	return txn, nil
}

func (s *TransactionService) Delete(_ context.Context, actor db_models.User, id int64) error {
	if _, err := s.editable(actor, id); err != nil {
		return err
	}

	if !s.txnRepo.DeleteTransaction(id) {
		return utils.ErrTransactionNotFound
	}
	return nil
}

// editable returns the transaction if actor is its owner or a parent of its family.
func (s *TransactionService) editable(actor db_models.User, id int64) (*db_models.Transaction, error) {
	if err := requireFamily(actor); err != nil {
		return nil, err
	}

	txn := s.txnRepo.FindByID(id)
	if txn == nil || txn.FamilyID != actor.FamilyID {
		return nil, utils.ErrTransactionNotFound
	}
	if !actor.IsParent() && txn.UserID != actor.ID {
		return nil, utils.ErrNotOwner
	}
	return txn, nil
}
