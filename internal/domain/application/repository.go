package application

import "context"

// Sort is a pre-validated ordering; usecases resolve user input against an
// allow-list before it reaches a repository.
type Sort struct {
	Field string
	Desc  bool
}

type Repository interface {
	Create(ctx context.Context, a *Application) error
	Save(ctx context.Context, a *Application) error
	Delete(ctx context.Context, id uint64) error
	GetByID(ctx context.Context, id uint64) (*Application, error)
	// GetByIDForUpdate locks the row so concurrent transitions serialize.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Application, error)
	GetByNationalID(ctx context.Context, nationalID string) (*Application, error)
	List(ctx context.Context) ([]Application, error)
	ListRecent(ctx context.Context, limit int) ([]Application, error)
	Count(ctx context.Context) (int64, error)
	StatusCounts(ctx context.Context, filter Status, sort Sort) ([]StatusCount, error)
	RepaymentAggregates(ctx context.Context, sort Sort) ([]RepaymentAggregate, error)
}
