package uowmock

import (
	"context"

	"mikopo-backoffice/internal/domain/application"
	"mikopo-backoffice/internal/domain/uow"
)

// UoW is a function-backed mock satisfying uow.UnitOfWork. Tests usually wire
// WithinTxFn to call fn with mocked repos directly, no real transaction.
type UoW struct {
	WithinTxFn            func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinApplicationTxFn func(ctx context.Context, id uint64, fn func(r uow.Repos, a *application.Application) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return context.Canceled
}

func (m *UoW) WithinApplicationTx(ctx context.Context, id uint64, fn func(r uow.Repos, a *application.Application) error) error {
	if m.WithinApplicationTxFn != nil {
		return m.WithinApplicationTxFn(ctx, id, fn)
	}
	return context.Canceled
}
