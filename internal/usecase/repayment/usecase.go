package repayment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"mikopo-backoffice/internal/domain/cashflow"
	"mikopo-backoffice/internal/domain/installment"
	"mikopo-backoffice/internal/domain/uow"
)

type Usecase struct {
	installments installment.Repository
	uow          uow.UnitOfWork
	now          func() time.Time
}

func NewUsecase(r installment.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{installments: r, uow: tx, now: time.Now}
}

// MarkPaid flips an installment to paid and posts the matching repayment
// ledger entry in the same transaction. Paying twice is rejected, not
// silently absorbed.
func (u *Usecase) MarkPaid(ctx context.Context, in MarkPaidInput) (*installment.Installment, error) {
	paidDate := in.PaidDate
	if paidDate.IsZero() {
		paidDate = u.now()
	}
	paidDate = dateOnly(paidDate)

	var out *installment.Installment
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		inst, err := r.Installments.GetByIDForUpdate(ctx, in.InstallmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return installment.ErrNotFound
			}
			return err
		}
		if inst.Paid {
			return installment.ErrAlreadyPaid
		}

		app, err := r.Applications.GetByID(ctx, inst.ApplicationID)
		if err != nil {
			return err
		}

		inst.Paid = true
		inst.PaidDate = &paidDate
		if err := r.Installments.Save(ctx, inst); err != nil {
			return err
		}

		appID := app.ID
		entry := &cashflow.Entry{
			Type:        cashflow.TypeRepayment,
			Amount:      inst.Amount,
			Description: fmt.Sprintf("Loan repayment from %s", app.ApplicantName),
			Date:        paidDate,
			RelatedID:   &appID,
		}
		if err := r.CashFlow.Create(ctx, entry); err != nil {
			return err
		}

		out = inst
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List returns every installment joined with applicant info plus the
// due/overdue/due-soon summary. window <= 0 selects the default.
func (u *Usecase) List(ctx context.Context, window time.Duration) (*ListOutput, error) {
	details, err := u.installments.ListDetailed(ctx)
	if err != nil {
		return nil, err
	}
	summary, err := u.Summarize(ctx, window)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Repayments: details, Summary: *summary}, nil
}

// Summarize computes the unpaid aggregates. Overdue is anything strictly
// before today; due soon is today through today+window inclusive.
func (u *Usecase) Summarize(ctx context.Context, window time.Duration) (*Summary, error) {
	if window <= 0 {
		window = DefaultDueSoonWindow
	}
	today := dateOnly(u.now())

	total, err := u.installments.SumUnpaid(ctx)
	if err != nil {
		return nil, err
	}
	overdue, err := u.installments.SumUnpaidDueBefore(ctx, today)
	if err != nil {
		return nil, err
	}
	dueSoon, err := u.installments.SumUnpaidDueBetween(ctx, today, today.Add(window))
	if err != nil {
		return nil, err
	}
	return &Summary{TotalDue: total, Overdue: overdue, DueSoon: dueSoon}, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
