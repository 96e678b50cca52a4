package mysql

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"mikopo-backoffice/internal/domain/cashflow"
)

type CashFlowRepository struct{ db *gorm.DB }

func NewCashFlowRepository(db *gorm.DB) *CashFlowRepository {
	return &CashFlowRepository{db: db}
}

func (r *CashFlowRepository) Create(ctx context.Context, e *cashflow.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *CashFlowRepository) Save(ctx context.Context, e *cashflow.Entry) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *CashFlowRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&cashflow.Entry{}, id).Error
}

func (r *CashFlowRepository) GetByID(ctx context.Context, id uint64) (*cashflow.Entry, error) {
	var out cashflow.Entry
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *CashFlowRepository) List(ctx context.Context) ([]cashflow.Entry, error) {
	var out []cashflow.Entry
	res := r.db.WithContext(ctx).Order("date DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *CashFlowRepository) ListRecent(ctx context.Context, limit int) ([]cashflow.Entry, error) {
	var out []cashflow.Entry
	res := r.db.WithContext(ctx).Order("date DESC, id DESC").Limit(limit).Find(&out)
	return out, res.Error
}

func (r *CashFlowRepository) DeleteByRelatedID(ctx context.Context, relatedID uint64) error {
	return r.db.WithContext(ctx).
		Where("related_id = ?", relatedID).
		Delete(&cashflow.Entry{}).Error
}

func (r *CashFlowRepository) SumByTypes(ctx context.Context, types ...cashflow.EntryType) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&cashflow.Entry{}).
		Where("type IN ?", types).
		Select("COALESCE(SUM(amount), 0)").
		Row().Scan(&total)
	return total, err
}

func (r *CashFlowRepository) DailyTotals(ctx context.Context, from, to time.Time, sort cashflow.Sort) ([]cashflow.DailyTotal, error) {
	var out []cashflow.DailyTotal
	res := r.db.WithContext(ctx).
		Model(&cashflow.Entry{}).
		Select(`date,
			COALESCE(SUM(CASE WHEN type IN ('income', 'loan_repayment') THEN amount ELSE 0 END), 0) AS income,
			COALESCE(SUM(CASE WHEN type IN ('expense', 'loan_disbursement') THEN amount ELSE 0 END), 0) AS expense`).
		Where("date BETWEEN ? AND ?", from, to).
		Group("date").
		Order(orderClause(sort.Field, sort.Desc)).
		Scan(&out)
	return out, res.Error
}
