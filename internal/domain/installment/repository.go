package installment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Repository interface {
	CreateBatch(ctx context.Context, items []Installment) error
	Save(ctx context.Context, i *Installment) error
	GetByID(ctx context.Context, id uint64) (*Installment, error)
	// GetByIDForUpdate locks the row so concurrent payments serialize.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Installment, error)
	ListByApplication(ctx context.Context, applicationID uint64) ([]Installment, error)
	// ListDetailed returns all installments joined with applicant info,
	// ordered by due date ascending.
	ListDetailed(ctx context.Context) ([]Detail, error)
	DeleteByApplication(ctx context.Context, applicationID uint64) error

	SumUnpaid(ctx context.Context) (decimal.Decimal, error)
	SumUnpaidDueBefore(ctx context.Context, day time.Time) (decimal.Decimal, error)
	SumUnpaidDueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}
