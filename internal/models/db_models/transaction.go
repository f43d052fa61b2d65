package db_models

type TransactionType string

const (
	TxnIncome  TransactionType = "income"
	TxnExpense TransactionType = "expense"
)

// Transaction amounts are signed: expenses are stored negative.
type Transaction struct {
	BaseModel
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      int64           `json:"amount"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type"`
	UserID      int64           `json:"userId"`
	FamilyID    int64           `json:"familyId"`
}

type TransactionUpdate struct {
	Date        *string
	Description *string
	Amount      *int64
	Category    *string
	Type        *TransactionType
}

func (u TransactionUpdate) Apply(t *Transaction) {
	if u.Date != nil {
		t.Date = *u.Date
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Amount != nil {
		t.Amount = *u.Amount
	}
	if u.Category != nil {
		t.Category = *u.Category
	}
	if u.Type != nil {
		t.Type = *u.Type
	}
}

// SignedAmount normalizes an amount to the sign convention of the given type.
func SignedAmount(txnType TransactionType, amount int64) int64 {
	if amount < 0 {
		amount = -amount
	}
	if txnType == TxnExpense {
		return -amount
	}
	return amount
}
