package repositories

import (
	"errors"
	"testing"
	"time"

	"familybudget/internal/models/db_models"
)

func fixedClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func newTestStore() *Store {
	return NewStore(WithClock(fixedClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))))
}

func TestIDsAreUniqueAndNeverReused(t *testing.T) {
	repo := NewPaymentRepository(newTestStore())

	seen := map[int64]bool{}
	for i := 0; i < 5; i++ {
		p := repo.CreatePayment(db_models.Payment{Name: "rent", Amount: 100, FamilyID: 1})
		if seen[p.ID] {
			t.Fatalf("duplicate id %d", p.ID)
		}
		seen[p.ID] = true
	}

	if !repo.DeletePayment(5) {
		t.Fatal("expected delete of id 5 to succeed")
	}
	next := repo.CreatePayment(db_models.Payment{Name: "water", FamilyID: 1})
	if next.ID != 6 {
		t.Errorf("id after delete = %d, want 6", next.ID)
	}
}

func TestCountersArePerCollection(t *testing.T) {
	store := newTestStore()
	family := NewFamilyRepository(store).CreateFamily("Ivanovs")
	payment := NewPaymentRepository(store).CreatePayment(db_models.Payment{FamilyID: family.ID})

	if family.ID != 1 || payment.ID != 1 {
		t.Errorf("family id = %d, payment id = %d, want 1 and 1", family.ID, payment.ID)
	}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	repo := NewTransactionRepository(newTestStore())

	in := db_models.Transaction{
		Date:        "15 мая",
		Description: "groceries",
		Amount:      -5200,
		Category:    "Еда",
		Type:        db_models.TxnExpense,
		UserID:      3,
		FamilyID:    2,
	}
	created := repo.CreateTransaction(in)
	if created.ID == 0 || created.CreatedAt.IsZero() {
		t.Fatalf("create did not stamp identity: %+v", created)
	}

	got := repo.FindByID(created.ID)
	if got == nil {
		t.Fatal("FindByID returned nil")
	}

	in.BaseModel = got.BaseModel
	if *got != in {
		t.Errorf("round trip = %+v, want %+v", *got, in)
	}
}

func TestGetMissingReturnsNil(t *testing.T) {
	store := newTestStore()

	if NewUserRepository(store).FindByID(42) != nil {
		t.Error("expected nil user")
	}
	if NewSavingsRepository(store).FindGoalByID(42) != nil {
		t.Error("expected nil goal")
	}
	if NewNotificationRepository(store).SetRead(42, true) != nil {
		t.Error("expected nil notification")
	}
}

func TestUpdateIsPartialMerge(t *testing.T) {
	repo := NewPaymentRepository(newTestStore())
	created := repo.CreatePayment(db_models.Payment{
		Name:     "Internet",
		Amount:   700,
		DueDate:  "2024-06-01",
		Category: "utilities",
		FamilyID: 1,
	})

	done := true
	updated := repo.UpdatePayment(created.ID, db_models.PaymentUpdate{IsCompleted: &done})
	if updated == nil {
		t.Fatal("update returned nil")
	}

	want := created
	want.IsCompleted = true
	if *updated != want {
		t.Errorf("updated = %+v, want %+v", *updated, want)
	}
	if got := repo.FindByID(created.ID); *got != want {
		t.Errorf("stored = %+v, want %+v", *got, want)
	}

	if repo.UpdatePayment(99, db_models.PaymentUpdate{IsCompleted: &done}) != nil {
		t.Error("update of missing id should return nil")
	}
}

func TestMemberUserLinkCanBeCleared(t *testing.T) {
	repo := NewFamilyMemberRepository(newTestStore())
	userID := int64(4)
	member := repo.CreateMember(db_models.FamilyMember{Name: "Uncle", Relation: "uncle", Age: 40, UserID: &userID, FamilyID: 1})

	other := int64(5)
	tests := []struct {
		name   string
		update db_models.FamilyMemberUpdate
		want   *int64
	}{
		{"nil keeps link", db_models.FamilyMemberUpdate{}, &userID},
		{"relink", db_models.FamilyMemberUpdate{UserID: &other}, &other},
		{"clear wins over id", db_models.FamilyMemberUpdate{UserID: &userID, ClearUserID: true}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repo.UpdateMember(member.ID, tt.update)
			switch {
			case tt.want == nil && got.UserID != nil:
				t.Errorf("userId = %d, want nil", *got.UserID)
			case tt.want != nil && (got.UserID == nil || *got.UserID != *tt.want):
				t.Errorf("userId = %v, want %d", got.UserID, *tt.want)
			}
		})
	}
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	repo := NewSavingsRepository(newTestStore())
	goal := repo.CreateGoal(db_models.SavingsGoal{Name: "Car", TargetAmount: 1000, FamilyID: 1})

	got := repo.FindGoalByID(goal.ID)
	got.CurrentAmount = 999

	if repo.FindGoalByID(goal.ID).CurrentAmount != 0 {
		t.Error("mutating a returned record changed the store")
	}
}

func TestDeleteTwice(t *testing.T) {
	repo := NewTransactionRepository(newTestStore())
	tx := repo.CreateTransaction(db_models.Transaction{FamilyID: 1})

	if !repo.DeleteTransaction(tx.ID) {
		t.Error("first delete = false, want true")
	}
	if repo.DeleteTransaction(tx.ID) {
		t.Error("second delete = true, want false")
	}
	if repo.FindByID(tx.ID) != nil {
		t.Error("record still found after delete")
	}
}

func TestFilterByForeignKey(t *testing.T) {
	repo := NewPaymentRepository(newTestStore())
	families := []int64{2, 1, 2, 3, 2, 1}
	for _, f := range families {
		repo.CreatePayment(db_models.Payment{FamilyID: f})
	}

	tests := []struct {
		family int64
		want   []int64
	}{
		{family: 1, want: []int64{2, 6}},
		{family: 2, want: []int64{1, 3, 5}},
		{family: 3, want: []int64{4}},
		{family: 4, want: nil},
	}

	for _, tt := range tests {
		got := repo.ListByFamily(tt.family)
		if len(got) != len(tt.want) {
			t.Fatalf("family %d: got %d payments, want %d", tt.family, len(got), len(tt.want))
		}
		for i, p := range got {
			if p.ID != tt.want[i] || p.FamilyID != tt.family {
				t.Errorf("family %d: item %d = %+v, want id %d", tt.family, i, p, tt.want[i])
			}
		}
	}
}

func TestListsAreNewestFirst(t *testing.T) {
	repo := NewNotificationRepository(newTestStore())
	first := repo.CreateNotification(db_models.Notification{Title: "a", UserID: 1})
	second := repo.CreateNotification(db_models.Notification{Title: "b", UserID: 1})
	repo.CreateNotification(db_models.Notification{Title: "other", UserID: 2})
	repo.SetRead(first.ID, true)

	all := repo.ListByUser(1)
	if len(all) != 2 || all[0].ID != second.ID || all[1].ID != first.ID {
		t.Errorf("ListByUser order = %+v", all)
	}

	unread := repo.ListUnreadByUser(1)
	if len(unread) != 1 || unread[0].ID != second.ID {
		t.Errorf("ListUnreadByUser = %+v", unread)
	}

	if n := repo.SetRead(first.ID, false); n == nil || n.IsRead {
		t.Error("notification could not be marked unread again")
	}
}

func TestSeededTransactionsSortByCreatedAt(t *testing.T) {
	repo := NewTransactionRepository(newTestStore())
	repo.SeedTransaction(db_models.Transaction{Description: "old", FamilyID: 1}, time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC))
	repo.SeedTransaction(db_models.Transaction{Description: "new", FamilyID: 1}, time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC))
	repo.SeedTransaction(db_models.Transaction{Description: "mid", FamilyID: 1}, time.Date(2023, 5, 12, 0, 0, 0, 0, time.UTC))

	got := repo.ListByFamily(1)
	order := []string{got[0].Description, got[1].Description, got[2].Description}
	if order[0] != "new" || order[1] != "mid" || order[2] != "old" {
		t.Errorf("order = %v", order)
	}
}

func TestFamilyTransactionScenario(t *testing.T) {
	store := newTestStore()
	family := NewFamilyRepository(store).CreateFamily("F1")
	user := NewUserRepository(store).CreateUser(db_models.User{
		Username: "u1",
		Email:    "u1@example.com",
		Role:     db_models.RoleParent,
		FamilyID: family.ID,
	})
	txns := NewTransactionRepository(store)
	tx := txns.CreateTransaction(db_models.Transaction{
		Amount:   -500,
		Type:     db_models.TxnExpense,
		UserID:   user.ID,
		FamilyID: family.ID,
	})

	got := txns.ListByFamily(family.ID)
	if len(got) != 1 || got[0] != tx {
		t.Fatalf("ListByFamily = %+v, want [%+v]", got, tx)
	}

	txns.DeleteTransaction(tx.ID)
	if got := txns.ListByFamily(family.ID); len(got) != 0 {
		t.Errorf("ListByFamily after delete = %+v, want empty", got)
	}
}

func TestCreateUserUnique(t *testing.T) {
	repo := NewUserRepository(newTestStore())
	parent := func(name string) db_models.User {
		return db_models.User{Username: name, Email: name + "@example.com", Role: db_models.RoleParent, FamilyID: 1}
	}

	if _, err := repo.CreateUserUnique(parent("mom"), 2); err != nil {
		t.Fatalf("first parent: %v", err)
	}
	if _, err := repo.CreateUserUnique(parent("dad"), 2); err != nil {
		t.Fatalf("second parent: %v", err)
	}

	tests := []struct {
		name string
		user db_models.User
		want error
	}{
		{"third parent", parent("gran"), ErrParentLimitReached},
		{"username taken", db_models.User{Username: "mom", Email: "x@example.com", FamilyID: 1}, ErrUsernameTaken},
		{"email taken case-insensitive", db_models.User{Username: "kid", Email: "DAD@example.com", FamilyID: 1}, ErrEmailTaken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := repo.CreateUserUnique(tt.user, 2); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := repo.CreateUserUnique(db_models.User{Username: "kid", Email: "kid@example.com", Role: db_models.RoleUser, FamilyID: 1}, 2); err != nil {
		t.Errorf("child user rejected: %v", err)
	}
	if _, err := repo.CreateUserUnique(parent("other"), 2); err == nil {
		t.Error("third parent accepted")
	}
}

func TestCreateUserBypassesParentCap(t *testing.T) {
	repo := NewUserRepository(newTestStore())
	for _, name := range []string{"a", "b", "c"} {
		repo.CreateUser(db_models.User{Username: name, Role: db_models.RoleParent, FamilyID: 1})
	}

	if got := len(repo.ListByRole(1, db_models.RoleParent)); got != 3 {
		t.Errorf("parents = %d, want 3: CreateUser is not expected to enforce the cap", got)
	}
}

func TestDeleteHistoryByGoal(t *testing.T) {
	repo := NewSavingsRepository(newTestStore())
	repo.CreateHistory(db_models.SavingsHistory{GoalID: 1, Amount: 10})
	repo.CreateHistory(db_models.SavingsHistory{GoalID: 2, Amount: 20})
	repo.CreateHistory(db_models.SavingsHistory{GoalID: 1, Amount: 30})

	if n := repo.DeleteHistoryByGoal(1); n != 2 {
		t.Errorf("removed %d, want 2", n)
	}
	if got := repo.ListHistoryByGoal(2); len(got) != 1 {
		t.Errorf("history of goal 2 = %+v", got)
	}
}
