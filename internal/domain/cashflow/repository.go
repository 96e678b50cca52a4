package cashflow

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Sort struct {
	Field string
	Desc  bool
}

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	Save(ctx context.Context, e *Entry) error
	Delete(ctx context.Context, id uint64) error
	GetByID(ctx context.Context, id uint64) (*Entry, error)
	List(ctx context.Context) ([]Entry, error)
	ListRecent(ctx context.Context, limit int) ([]Entry, error)
	DeleteByRelatedID(ctx context.Context, relatedID uint64) error

	SumByTypes(ctx context.Context, types ...EntryType) (decimal.Decimal, error)
	DailyTotals(ctx context.Context, from, to time.Time, sort Sort) ([]DailyTotal, error)
}
