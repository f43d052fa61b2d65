package db_models

import "time"

// BaseModel carries the identity every stored record gets from the store.
type BaseModel struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// Stamp assigns the identity fields. Only the store calls it, once per record.
func (b *BaseModel) Stamp(id int64, createdAt time.Time) {
	b.ID = id
	b.CreatedAt = createdAt
}

func (b BaseModel) Key() int64 { return b.ID }

func (b BaseModel) Created() time.Time { return b.CreatedAt }
