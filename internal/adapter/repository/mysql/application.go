package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	appdomain "mikopo-backoffice/internal/domain/application"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// forUpdate adds a row lock on dialects that support it. SQLite (used by
// repository tests) serializes writers anyway and rejects FOR UPDATE.
func forUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

func (r *ApplicationRepository) Create(ctx context.Context, a *appdomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) Save(ctx context.Context, a *appdomain.Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ApplicationRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&appdomain.Application{}, id).Error
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uint64) (*appdomain.Application, error) {
	var out appdomain.Application
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *ApplicationRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*appdomain.Application, error) {
	var out appdomain.Application
	res := forUpdate(r.db.WithContext(ctx)).First(&out, id)
	return &out, res.Error
}

func (r *ApplicationRepository) GetByNationalID(ctx context.Context, nationalID string) (*appdomain.Application, error) {
	var out appdomain.Application
	res := r.db.WithContext(ctx).Where("national_id = ?", nationalID).First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) List(ctx context.Context) ([]appdomain.Application, error) {
	var out []appdomain.Application
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) ListRecent(ctx context.Context, limit int) ([]appdomain.Application, error) {
	var out []appdomain.Application
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit).Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&appdomain.Application{}).Count(&n)
	return n, res.Error
}

func (r *ApplicationRepository) StatusCounts(ctx context.Context, filter appdomain.Status, sort appdomain.Sort) ([]appdomain.StatusCount, error) {
	q := r.db.WithContext(ctx).
		Model(&appdomain.Application{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order(orderClause(sort.Field, sort.Desc))
	if filter != "" {
		q = q.Where("status = ?", filter)
	}
	var out []appdomain.StatusCount
	res := q.Scan(&out)
	return out, res.Error
}

func (r *ApplicationRepository) RepaymentAggregates(ctx context.Context, sort appdomain.Sort) ([]appdomain.RepaymentAggregate, error) {
	var out []appdomain.RepaymentAggregate
	res := r.db.WithContext(ctx).
		Table("loan_applications AS a").
		Select(`a.id AS loan_id,
			a.applicant_name,
			a.national_id,
			a.principal,
			a.interest_rate,
			a.term_months,
			a.status,
			COUNT(r.id) AS total_installments,
			COALESCE(SUM(CASE WHEN r.paid THEN 1 ELSE 0 END), 0) AS paid_installments,
			COALESCE(SUM(CASE WHEN r.paid THEN 0 ELSE 1 END), 0) AS unpaid_installments,
			COALESCE(SUM(r.amount), 0) AS total_repayment_amount,
			COALESCE(SUM(CASE WHEN r.paid THEN r.amount ELSE 0 END), 0) AS paid_amount,
			COALESCE(SUM(CASE WHEN r.paid THEN 0 ELSE r.amount END), 0) AS remaining_amount`).
		Joins("LEFT JOIN loan_repayments r ON r.loan_application_id = a.id").
		Where("a.status = ?", appdomain.StatusApproved).
		Group("a.id, a.applicant_name, a.national_id, a.principal, a.interest_rate, a.term_months, a.status").
		Order(orderClause(sort.Field, sort.Desc)).
		Scan(&out)
	return out, res.Error
}

// orderClause renders a pre-validated sort; fields never come straight from
// user input (usecases clamp them onto allow-lists first).
func orderClause(field string, desc bool) string {
	if desc {
		return field + " DESC"
	}
	return field + " ASC"
}
