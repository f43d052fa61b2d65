package repositories

import "familybudget/internal/models/db_models"

type PaymentRepository interface {
	CreatePayment(p db_models.Payment) db_models.Payment
	FindByID(id int64) *db_models.Payment
	ListByFamily(familyID int64) []db_models.Payment
	UpdatePayment(id int64, update db_models.PaymentUpdate) *db_models.Payment
	DeletePayment(id int64) bool
}

type paymentRepository struct {
	payments *collection[db_models.Payment, *db_models.Payment]
}

func NewPaymentRepository(store *Store) PaymentRepository {
	return &paymentRepository{payments: store.payments}
}

func (r *paymentRepository) CreatePayment(p db_models.Payment) db_models.Payment {
	return r.payments.insert(p)
}

func (r *paymentRepository) FindByID(id int64) *db_models.Payment {
	p, _ := r.payments.get(id)
	return p
}

func (r *paymentRepository) ListByFamily(familyID int64) []db_models.Payment {
	return r.payments.filter(func(p db_models.Payment) bool { return p.FamilyID == familyID })
}

func (r *paymentRepository) UpdatePayment(id int64, update db_models.PaymentUpdate) *db_models.Payment {
	p, _ := r.payments.update(id, update.Apply)
	return p
}

func (r *paymentRepository) DeletePayment(id int64) bool {
	return r.payments.remove(id)
}
