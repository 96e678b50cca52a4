// Package applicationmock is a function-backed mock of the application
// repository. Only the methods a test wires are live; the rest return
// context.Canceled so accidental use is loud.
package applicationmock

import (
	"context"

	domain "mikopo-backoffice/internal/domain/application"
)

type Repo struct {
	CreateFn              func(ctx context.Context, a *domain.Application) error
	SaveFn                func(ctx context.Context, a *domain.Application) error
	DeleteFn              func(ctx context.Context, id uint64) error
	GetByIDFn             func(ctx context.Context, id uint64) (*domain.Application, error)
	GetByIDForUpdateFn    func(ctx context.Context, id uint64) (*domain.Application, error)
	GetByNationalIDFn     func(ctx context.Context, nationalID string) (*domain.Application, error)
	ListFn                func(ctx context.Context) ([]domain.Application, error)
	ListRecentFn          func(ctx context.Context, limit int) ([]domain.Application, error)
	CountFn               func(ctx context.Context) (int64, error)
	StatusCountsFn        func(ctx context.Context, filter domain.Status, sort domain.Sort) ([]domain.StatusCount, error)
	RepaymentAggregatesFn func(ctx context.Context, sort domain.Sort) ([]domain.RepaymentAggregate, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, a *domain.Application) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Application, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Application, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByNationalID(ctx context.Context, nationalID string) (*domain.Application, error) {
	if m.GetByNationalIDFn != nil {
		return m.GetByNationalIDFn(ctx, nationalID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]domain.Application, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListRecent(ctx context.Context, limit int) ([]domain.Application, error) {
	if m.ListRecentFn != nil {
		return m.ListRecentFn(ctx, limit)
	}
	return nil, nil
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

func (m *Repo) StatusCounts(ctx context.Context, filter domain.Status, sort domain.Sort) ([]domain.StatusCount, error) {
	if m.StatusCountsFn != nil {
		return m.StatusCountsFn(ctx, filter, sort)
	}
	return nil, nil
}

func (m *Repo) RepaymentAggregates(ctx context.Context, sort domain.Sort) ([]domain.RepaymentAggregate, error) {
	if m.RepaymentAggregatesFn != nil {
		return m.RepaymentAggregatesFn(ctx, sort)
	}
	return nil, nil
}
