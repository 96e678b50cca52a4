package installmentmock

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domain "mikopo-backoffice/internal/domain/installment"
)

// Repo is a function-backed mock satisfying installment.Repository.
type Repo struct {
	CreateBatchFn         func(ctx context.Context, items []domain.Installment) error
	SaveFn                func(ctx context.Context, i *domain.Installment) error
	GetByIDFn             func(ctx context.Context, id uint64) (*domain.Installment, error)
	GetByIDForUpdateFn    func(ctx context.Context, id uint64) (*domain.Installment, error)
	ListByApplicationFn   func(ctx context.Context, applicationID uint64) ([]domain.Installment, error)
	ListDetailedFn        func(ctx context.Context) ([]domain.Detail, error)
	DeleteByApplicationFn func(ctx context.Context, applicationID uint64) error
	SumUnpaidFn           func(ctx context.Context) (decimal.Decimal, error)
	SumUnpaidDueBeforeFn  func(ctx context.Context, day time.Time) (decimal.Decimal, error)
	SumUnpaidDueBetweenFn func(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}

func (m *Repo) CreateBatch(ctx context.Context, items []domain.Installment) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, items)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, i *domain.Installment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, i)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Installment, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Installment, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByApplication(ctx context.Context, applicationID uint64) ([]domain.Installment, error) {
	if m.ListByApplicationFn != nil {
		return m.ListByApplicationFn(ctx, applicationID)
	}
	return nil, nil
}

func (m *Repo) ListDetailed(ctx context.Context) ([]domain.Detail, error) {
	if m.ListDetailedFn != nil {
		return m.ListDetailedFn(ctx)
	}
	return nil, nil
}

func (m *Repo) DeleteByApplication(ctx context.Context, applicationID uint64) error {
	if m.DeleteByApplicationFn != nil {
		return m.DeleteByApplicationFn(ctx, applicationID)
	}
	return nil
}

func (m *Repo) SumUnpaid(ctx context.Context) (decimal.Decimal, error) {
	if m.SumUnpaidFn != nil {
		return m.SumUnpaidFn(ctx)
	}
	return decimal.Zero, nil
}

func (m *Repo) SumUnpaidDueBefore(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	if m.SumUnpaidDueBeforeFn != nil {
		return m.SumUnpaidDueBeforeFn(ctx, day)
	}
	return decimal.Zero, nil
}

func (m *Repo) SumUnpaidDueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	if m.SumUnpaidDueBetweenFn != nil {
		return m.SumUnpaidDueBetweenFn(ctx, from, to)
	}
	return decimal.Zero, nil
}
