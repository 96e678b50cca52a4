package cashflow

import (
	"time"

	"github.com/shopspring/decimal"
)

type AppendInput struct {
	Type        string
	Amount      decimal.Decimal
	Description string
	Date        time.Time
}

// UpdateInput patches a manual entry; nil fields stay untouched.
type UpdateInput struct {
	Type        *string
	Amount      *decimal.Decimal
	Description *string
	Date        *time.Time
}

type EntryDTO struct {
	ID          uint64          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	RelatedID   *uint64         `json:"related_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
