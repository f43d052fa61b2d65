package services

import (
	"context"

	"familybudget/internal/models/db_models"
	"familybudget/internal/models/request_models"
	"familybudget/internal/repositories"
	"familybudget/pkg/utils"
)

type PaymentServiceInterface interface {
	List(ctx context.Context, actor db_models.User) ([]db_models.Payment, error)
	Create(ctx context.Context, actor db_models.User, request request_models.PaymentRequest) (*db_models.Payment, error)
	Update(ctx context.Context, actor db_models.User, id int64, request request_models.UpdatePaymentRequest) (*db_models.Payment, error)
	Delete(ctx context.Context, actor db_models.User, id int64) error
}

type PaymentService struct {
	paymentRepo repositories.PaymentRepository
}

func NewPaymentService(paymentRepo repositories.PaymentRepository) PaymentServiceInterface {
	return &PaymentService{paymentRepo: paymentRepo}
}

func (s *PaymentService) List(_ context.Context, actor db_models.User) ([]db_models.Payment, error) {
	if err := requireFamily(actor); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListByFamily(actor.FamilyID), nil
}

func (s *PaymentService) Create(_ context.Context, actor db_models.User, request request_models.PaymentRequest) (*db_models.Payment, error) {
	if err := requireParent(actor); err != nil {
		return nil, err
	}

	payment := s.paymentRepo.CreatePayment(db_models.Payment{
		Name:        request.Name,
		Amount:      request.Amount,
		DueDate:     request.DueDate,
		Category:    request.Category,
		IsCompleted: request.IsCompleted,
		FamilyID:    actor.FamilyID,
	})
	return &payment, nil
}

// Update may reopen a completed payment; the flag has no transition rules.
func (s *PaymentService) Update(_ context.Context, actor db_models.User, id int64, request request_models.UpdatePaymentRequest) (*db_models.Payment, error) {
	if err := s.familyPayment(actor, id); err != nil {
		return nil, err
	}

	payment := s.paymentRepo.UpdatePayment(id, db_models.PaymentUpdate{
		Name:        request.Name,
		Amount:      request.Amount,
		DueDate:     request.DueDate,
		Category:    request.Category,
		IsCompleted: request.IsCompleted,
	})
	if payment == nil {
		return nil, utils.ErrPaymentNotFound
	}
	return payment, nil
}

func (s *PaymentService) Delete(_ context.Context, actor db_models.User, id int64) error {
	if err := s.familyPayment(actor, id); err != nil {
		return err
	}

	if !s.paymentRepo.DeletePayment(id) {
		return utils.ErrPaymentNotFound
	}
	return nil
}

func (s *PaymentService) familyPayment(actor db_models.User, id int64) error {
	if err := requireParent(actor); err != nil {
		return err
	}

	p := s.paymentRepo.FindByID(id)
	if p == nil || p.FamilyID != actor.FamilyID {
		return utils.ErrPaymentNotFound
	}
	return nil
}
