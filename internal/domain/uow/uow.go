package uow

import (
	"context"

	"mikopo-backoffice/internal/domain/application"
	"mikopo-backoffice/internal/domain/cashflow"
	"mikopo-backoffice/internal/domain/document"
	"mikopo-backoffice/internal/domain/installment"
)

type Repos struct {
	Applications application.Repository
	Installments installment.Repository
	CashFlow     cashflow.Repository
	Documents    document.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the application row first, then pass it in
	WithinApplicationTx(ctx context.Context, id uint64, fn func(r Repos, a *application.Application) error) error
}
