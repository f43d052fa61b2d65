package services

import (
	"errors"
	"testing"

	"familybudget/internal/models/db_models"
	"familybudget/internal/models/request_models"
	"familybudget/pkg/utils"
)

func TestCreateNormalizesSign(t *testing.T) {
	r := newTestRig(t)
	_, child := r.seedFamily("morozov")

	tests := []struct {
		txnType string
		want    int64
	}{
		{"expense", -250},
		{"income", 250},
	}
	for _, tt := range tests {
		t.Run(tt.txnType, func(t *testing.T) {
			txn, err := r.txn.Create(ctx, child, request_models.TransactionRequest{
				Description: "coffee",
				Amount:      250,
				Type:        tt.txnType,
				Category:    "Еда",
				Date:        "вчера",
			})
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if txn.Amount != tt.want || txn.UserID != child.ID || txn.FamilyID != child.FamilyID {
				t.Errorf("txn = %+v, want amount %d", txn, tt.want)
			}
		})
	}
}

func TestUpdateKeepsSignConsistentWithType(t *testing.T) {
	r := newTestRig(t)
	parent, _ := r.seedFamily("novikov")

	txn, _ := r.txn.Create(ctx, parent, request_models.TransactionRequest{
		Description: "salary",
		Amount:      1000,
		Type:        "income",
		Category:    "Зарплата",
		Date:        "1 мая",
	})

	updated, err := r.txn.Update(ctx, parent, txn.ID, request_models.UpdateTransactionRequest{Type: ptr("expense")})
	if err != nil {
		t.Fatalf("Update type: %v", err)
	}
	if updated.Amount != -1000 || updated.Type != db_models.TxnExpense {
		t.Errorf("after type change = %+v", updated)
	}

	updated, err = r.txn.Update(ctx, parent, txn.ID, request_models.UpdateTransactionRequest{Amount: ptr(int64(300))})
	if err != nil {
		t.Fatalf("Update amount: %v", err)
	}
	if updated.Amount != -300 || updated.Description != "salary" {
		t.Errorf("after amount change = %+v", updated)
	}
}

func TestTransactionEditPermissions(t *testing.T) {
	r := newTestRig(t)
	parent, child := r.seedFamily("fedorov")
	outsider, _ := r.seedFamily("egorov")
	sibling := r.users.CreateUser(db_models.User{Username: "sibling", Role: db_models.RoleUser, FamilyID: parent.FamilyID})

	byChild, _ := r.txn.Create(ctx, child, request_models.TransactionRequest{
		Description: "cinema",
		Amount:      500,
		Type:        "expense",
		Category:    "Развлечения",
		Date:        "сегодня",
	})
	edit := request_models.UpdateTransactionRequest{Description: ptr("cinema and popcorn")}

	tests := []struct {
		name  string
		actor db_models.User
		want  error
	}{
		{"sibling is not the owner", sibling, utils.ErrNotOwner},
		{"other family sees nothing", outsider, utils.ErrTransactionNotFound},
		{"owner may edit", child, nil},
		{"parent may edit", parent, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.txn.Update(ctx, tt.actor, byChild.ID, edit); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}

	if err := r.txn.Delete(ctx, sibling, byChild.ID); !errors.Is(err, utils.ErrNotOwner) {
		t.Errorf("sibling delete error = %v", err)
	}
	if err := r.txn.Delete(ctx, parent, byChild.ID); err != nil {
		t.Fatalf("parent delete: %v", err)
	}
	if err := r.txn.Delete(ctx, parent, byChild.ID); !errors.Is(err, utils.ErrTransactionNotFound) {
		t.Errorf("second delete error = %v", err)
	}
}

func TestListFamilyAndMine(t *testing.T) {
	r := newTestRig(t)
	parent, child := r.seedFamily("sokolov")
	outsider, _ := r.seedFamily("pavlov")

	for _, actor := range []db_models.User{parent, child, child, outsider} {
		r.txn.Create(ctx, actor, request_models.TransactionRequest{
			Description: "bread",
			Amount:      50,
			Type:        "expense",
			Category:    "Еда",
			Date:        "сегодня",
		})
	}

	family, _ := r.txn.ListFamily(ctx, parent)
	if len(family) != 3 {
		t.Errorf("family transactions = %d, want 3", len(family))
	}
	mine, _ := r.txn.ListMine(ctx, child)
	if len(mine) != 2 {
		t.Errorf("child transactions = %d, want 2", len(mine))
	}
	for i := 1; i < len(family); i++ {
		if family[i-1].ID < family[i].ID {
			t.Errorf("family list not newest first: %d before %d", family[i-1].ID, family[i].ID)
		}
	}
}
