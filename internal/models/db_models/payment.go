package db_models

// Payment is a mandatory, bill-like family expense with a paid flag.
type Payment struct {
	BaseModel
	Name        string `json:"name"`
	Amount      int64  `json:"amount"`
	DueDate     string `json:"dueDate"`
	Category    string `json:"category"`
	IsCompleted bool   `json:"isCompleted"`
	FamilyID    int64  `json:"familyId"`
}

type PaymentUpdate struct {
	Name        *string
	Amount      *int64
	DueDate     *string
	Category    *string
	IsCompleted *bool
}

func (u PaymentUpdate) Apply(p *Payment) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Amount != nil {
		p.Amount = *u.Amount
	}
	if u.DueDate != nil {
		p.DueDate = *u.DueDate
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.IsCompleted != nil {
		p.IsCompleted = *u.IsCompleted
	}
}
