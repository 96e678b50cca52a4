package cashflowmock

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domain "mikopo-backoffice/internal/domain/cashflow"
)

// Repo is a function-backed mock satisfying cashflow.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, e *domain.Entry) error
	SaveFn              func(ctx context.Context, e *domain.Entry) error
	DeleteFn            func(ctx context.Context, id uint64) error
	GetByIDFn           func(ctx context.Context, id uint64) (*domain.Entry, error)
	ListFn              func(ctx context.Context) ([]domain.Entry, error)
	ListRecentFn        func(ctx context.Context, limit int) ([]domain.Entry, error)
	DeleteByRelatedIDFn func(ctx context.Context, relatedID uint64) error
	SumByTypesFn        func(ctx context.Context, types ...domain.EntryType) (decimal.Decimal, error)
	DailyTotalsFn       func(ctx context.Context, from, to time.Time, sort domain.Sort) ([]domain.DailyTotal, error)
}

func (m *Repo) Create(ctx context.Context, e *domain.Entry) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, e *domain.Entry) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, e)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Entry, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]domain.Entry, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListRecent(ctx context.Context, limit int) ([]domain.Entry, error) {
	if m.ListRecentFn != nil {
		return m.ListRecentFn(ctx, limit)
	}
	return nil, nil
}

func (m *Repo) DeleteByRelatedID(ctx context.Context, relatedID uint64) error {
	if m.DeleteByRelatedIDFn != nil {
		return m.DeleteByRelatedIDFn(ctx, relatedID)
	}
	return nil
}

func (m *Repo) SumByTypes(ctx context.Context, types ...domain.EntryType) (decimal.Decimal, error) {
	if m.SumByTypesFn != nil {
		return m.SumByTypesFn(ctx, types...)
	}
	return decimal.Zero, nil
}

func (m *Repo) DailyTotals(ctx context.Context, from, to time.Time, sort domain.Sort) ([]domain.DailyTotal, error) {
	if m.DailyTotalsFn != nil {
		return m.DailyTotalsFn(ctx, from, to, sort)
	}
	return nil, nil
}
