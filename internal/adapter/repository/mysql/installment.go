package mysql

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"mikopo-backoffice/internal/domain/installment"
)

type InstallmentRepository struct{ db *gorm.DB }

func NewInstallmentRepository(db *gorm.DB) *InstallmentRepository {
	return &InstallmentRepository{db: db}
}

func (r *InstallmentRepository) CreateBatch(ctx context.Context, items []installment.Installment) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *InstallmentRepository) Save(ctx context.Context, i *installment.Installment) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *InstallmentRepository) GetByID(ctx context.Context, id uint64) (*installment.Installment, error) {
	var out installment.Installment
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *InstallmentRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*installment.Installment, error) {
	var out installment.Installment
	res := forUpdate(r.db.WithContext(ctx)).First(&out, id)
	return &out, res.Error
}

func (r *InstallmentRepository) ListByApplication(ctx context.Context, applicationID uint64) ([]installment.Installment, error) {
	var out []installment.Installment
	res := r.db.WithContext(ctx).
		Where("loan_application_id = ?", applicationID).
		Order("seq ASC").
		Find(&out)
	return out, res.Error
}

func (r *InstallmentRepository) ListDetailed(ctx context.Context) ([]installment.Detail, error) {
	var out []installment.Detail
	res := r.db.WithContext(ctx).
		Table("loan_repayments AS r").
		Select(`r.*,
			a.applicant_name,
			a.national_id,
			a.principal AS total_loan,
			COALESCE((SELECT SUM(p.amount) FROM loan_repayments p
				WHERE p.loan_application_id = r.loan_application_id AND p.paid), 0) AS amount_paid`).
		Joins("JOIN loan_applications a ON a.id = r.loan_application_id").
		Order("r.due_date ASC, r.id ASC").
		Scan(&out)
	return out, res.Error
}

func (r *InstallmentRepository) DeleteByApplication(ctx context.Context, applicationID uint64) error {
	return r.db.WithContext(ctx).
		Where("loan_application_id = ?", applicationID).
		Delete(&installment.Installment{}).Error
}

func (r *InstallmentRepository) SumUnpaid(ctx context.Context) (decimal.Decimal, error) {
	return r.sumWhere(ctx, "paid = ?", false)
}

func (r *InstallmentRepository) SumUnpaidDueBefore(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	return r.sumWhere(ctx, "paid = ? AND due_date < ?", false, day)
}

func (r *InstallmentRepository) SumUnpaidDueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	return r.sumWhere(ctx, "paid = ? AND due_date BETWEEN ? AND ?", false, from, to)
}

func (r *InstallmentRepository) sumWhere(ctx context.Context, cond string, args ...any) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&installment.Installment{}).
		Where(cond, args...).
		Select("COALESCE(SUM(amount), 0)").
		Row().Scan(&total)
	return total, err
}
