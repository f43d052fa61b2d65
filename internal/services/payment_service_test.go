package services

import (
	"errors"
	"testing"

	"familybudget/internal/models/request_models"
	"familybudget/pkg/utils"
)

func TestPaymentLifecycle(t *testing.T) {
	r := newTestRig(t)
	parent, child := r.seedFamily("belov")
	outsider, _ := r.seedFamily("tarasov")

	request := request_models.PaymentRequest{Name: "Rent", Amount: 30000, DueDate: "2024-06-01", Category: "Жильё"}
	if _, err := r.payment.Create(ctx, child, request); !errors.Is(err, utils.ErrNotParent) {
		t.Errorf("child create error = %v", err)
	}

	p, err := r.payment.Create(ctx, parent, request)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	done, err := r.payment.Update(ctx, parent, p.ID, request_models.UpdatePaymentRequest{IsCompleted: ptr(true)})
	if err != nil || !done.IsCompleted || done.Amount != 30000 {
		t.Fatalf("complete = %+v, %v", done, err)
	}
	reopened, err := r.payment.Update(ctx, parent, p.ID, request_models.UpdatePaymentRequest{IsCompleted: ptr(false)})
	if err != nil || reopened.IsCompleted {
		t.Fatalf("reopen = %+v, %v", reopened, err)
	}

	if list, _ := r.payment.List(ctx, child); len(list) != 1 {
		t.Errorf("child sees %d payments, want 1", len(list))
	}
	if err := r.payment.Delete(ctx, outsider, p.ID); !errors.Is(err, utils.ErrPaymentNotFound) {
		t.Errorf("outsider delete error = %v", err)
	}
	if err := r.payment.Delete(ctx, parent, p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}
