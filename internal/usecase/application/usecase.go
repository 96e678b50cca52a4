package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	domain "mikopo-backoffice/internal/domain/application"
	"mikopo-backoffice/internal/domain/cashflow"
	"mikopo-backoffice/internal/domain/document"
	"mikopo-backoffice/internal/domain/installment"
	"mikopo-backoffice/internal/domain/uow"
	"mikopo-backoffice/internal/schedule"
)

type Usecase struct {
	apps     domain.Repository
	insts    installment.Repository
	docs     document.Repository
	store    document.Store
	uow      uow.UnitOfWork
	strategy schedule.Strategy
	log      *logrus.Logger
	now      func() time.Time
}

func NewUsecase(apps domain.Repository, insts installment.Repository, docs document.Repository, store document.Store, tx uow.UnitOfWork, strategy schedule.Strategy, log *logrus.Logger) *Usecase {
	return &Usecase{
		apps:     apps,
		insts:    insts,
		docs:     docs,
		store:    store,
		uow:      tx,
		strategy: strategy,
		log:      log,
		now:      time.Now,
	}
}

// Submit validates and persists a pending application together with its
// documents. Files go to the object store before the transaction opens so the
// document rows committed inside it reference keys that already exist.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*ApplicationDTO, error) {
	if err := validateSubmit(in); err != nil {
		return nil, err
	}

	existing, err := u.apps.GetByNationalID(ctx, in.NationalID)
	switch {
	case err == nil && existing != nil:
		return nil, domain.ErrDuplicateNationalID
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	stored := make(map[document.Slot]storedFile, len(in.Documents))
	for slot, up := range in.Documents {
		key, err := u.store.Put(ctx, up.Filename, up.ContentType, up.Data)
		if err != nil {
			u.discardStored(ctx, stored)
			return nil, fmt.Errorf("store document %s: %w", slot, err)
		}
		stored[slot] = storedFile{filename: up.Filename, objectKey: key}
	}

	app := &domain.Application{
		ApplicantName:    in.ApplicantName,
		NationalID:       in.NationalID,
		Principal:        in.Principal,
		TermMonths:       in.TermMonths,
		InterestRate:     in.InterestRate,
		EmploymentStatus: domain.EmploymentStatus(in.EmploymentStatus),
		RepaymentMode:    domain.RepaymentMode(in.RepaymentMode),
		Sponsor1Name:     in.Sponsor1Name,
		Sponsor1ID:       in.Sponsor1ID,
		Sponsor2Name:     in.Sponsor2Name,
		Sponsor2ID:       in.Sponsor2ID,
		Status:           domain.StatusPending,
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Applications.Create(ctx, app); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDuplicateNationalID
			}
			return err
		}
		for slot, f := range stored {
			d := &document.Document{
				ApplicationID: app.ID,
				Slot:          slot,
				Filename:      f.filename,
				ObjectKey:     f.objectKey,
			}
			if err := r.Documents.Create(ctx, d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		u.discardStored(ctx, stored)
		return nil, err
	}

	return toDTO(app), nil
}

// TransitionStatus moves a pending application to approved or rejected.
// Approval persists the repayment schedule and posts the disbursement inside
// the same transaction; a failure anywhere rolls everything back.
func (u *Usecase) TransitionStatus(ctx context.Context, id uint64, newStatus string) (*ApplicationDTO, error) {
	target := domain.Status(newStatus)
	if target != domain.StatusApproved && target != domain.StatusRejected {
		return nil, &domain.ValidationError{Fields: []string{"status"}}
	}

	var dto *ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, id, func(r uow.Repos, app *domain.Application) error {
		if app.Status != domain.StatusPending {
			return domain.ErrInvalidTransition
		}

		now := u.now().UTC()
		app.Status = target
		app.UpdatedAt = now
		if err := r.Applications.Save(ctx, app); err != nil {
			return err
		}

		if target == domain.StatusApproved {
			lines, err := schedule.Build(u.strategy, schedule.Terms{
				Principal:     app.Principal,
				AnnualRatePct: app.InterestRate,
				TermMonths:    app.TermMonths,
				Weekly:        app.Weekly(),
			}, now)
			if err != nil {
				return err
			}

			items := make([]installment.Installment, 0, len(lines))
			for _, ln := range lines {
				items = append(items, installment.Installment{
					ApplicationID:      app.ID,
					Seq:                ln.Seq,
					DueDate:            ln.DueDate,
					Amount:             ln.Amount,
					PrincipalComponent: ln.Principal,
					InterestComponent:  ln.Interest,
					RunningBalance:     ln.RunningBalance,
				})
			}
			if err := r.Installments.CreateBatch(ctx, items); err != nil {
				return err
			}

			appID := app.ID
			entry := &cashflow.Entry{
				Type:        cashflow.TypeDisbursement,
				Amount:      app.Principal,
				Description: fmt.Sprintf("Loan disbursement to %s", app.ApplicantName),
				Date:        dateOnly(now),
				RelatedID:   &appID,
			}
			if err := r.CashFlow.Create(ctx, entry); err != nil {
				return err
			}
		}

		dto = toDTO(app)
		return nil
	})
	if err != nil {
		return nil, translateNotFound(err)
	}
	return dto, nil
}

// Delete removes the application and everything hanging off it: installments,
// ledger entries matched by related id, and document rows. Stored objects are
// removed best-effort after commit.
func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	var keys []string
	err := u.uow.WithinApplicationTx(ctx, id, func(r uow.Repos, app *domain.Application) error {
		docs, err := r.Documents.ListByApplication(ctx, app.ID)
		if err != nil {
			return err
		}
		for _, d := range docs {
			keys = append(keys, d.ObjectKey)
		}
		if err := r.CashFlow.DeleteByRelatedID(ctx, app.ID); err != nil {
			return err
		}
		if err := r.Installments.DeleteByApplication(ctx, app.ID); err != nil {
			return err
		}
		if err := r.Documents.DeleteByApplication(ctx, app.ID); err != nil {
			return err
		}
		return r.Applications.Delete(ctx, app.ID)
	})
	if err != nil {
		return translateNotFound(err)
	}

	for _, key := range keys {
		if err := u.store.Remove(ctx, key); err != nil {
			u.log.WithError(err).WithField("object_key", key).Warn("failed to remove stored document")
		}
	}
	return nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*ApplicationDTO, error) {
	app, err := u.apps.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return toDTO(app), nil
}

func (u *Usecase) List(ctx context.Context) ([]ApplicationDTO, error) {
	apps, err := u.apps.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ApplicationDTO, 0, len(apps))
	for i := range apps {
		out = append(out, *toDTO(&apps[i]))
	}
	return out, nil
}

// PreviewSchedule returns the canonical plan for an application. Approved
// loans read back the rows persisted at approval so preview and tracker can
// never disagree; anything else builds the plan anchored at the creation
// date without persisting.
func (u *Usecase) PreviewSchedule(ctx context.Context, id uint64) ([]ScheduleLineDTO, error) {
	app, err := u.apps.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if app.Status == domain.StatusApproved {
		items, err := u.insts.ListByApplication(ctx, id)
		if err != nil {
			return nil, err
		}
		out := make([]ScheduleLineDTO, 0, len(items))
		for _, it := range items {
			out = append(out, ScheduleLineDTO{
				Seq:            it.Seq,
				DueDate:        it.DueDate,
				Amount:         it.Amount,
				Principal:      it.PrincipalComponent,
				Interest:       it.InterestComponent,
				RunningBalance: it.RunningBalance,
			})
		}
		return out, nil
	}

	lines, err := schedule.Build(u.strategy, schedule.Terms{
		Principal:     app.Principal,
		AnnualRatePct: app.InterestRate,
		TermMonths:    app.TermMonths,
		Weekly:        app.Weekly(),
	}, app.CreatedAt)
	if err != nil {
		return nil, err
	}
	out := make([]ScheduleLineDTO, 0, len(lines))
	for _, ln := range lines {
		out = append(out, ScheduleLineDTO{
			Seq:            ln.Seq,
			DueDate:        ln.DueDate,
			Amount:         ln.Amount,
			Principal:      ln.Principal,
			Interest:       ln.Interest,
			RunningBalance: ln.RunningBalance,
		})
	}
	return out, nil
}

type storedFile struct {
	filename  string
	objectKey string
}

func (u *Usecase) discardStored(ctx context.Context, stored map[document.Slot]storedFile) {
	for slot, f := range stored {
		if err := u.store.Remove(ctx, f.objectKey); err != nil {
			u.log.WithError(err).WithField("slot", slot).Warn("failed to discard stored document")
		}
	}
}

func validateSubmit(in SubmitInput) error {
	var missing []string
	check := func(name, v string) {
		if v == "" {
			missing = append(missing, name)
		}
	}
	check("applicant_name", in.ApplicantName)
	check("national_id", in.NationalID)
	check("sponsor1_name", in.Sponsor1Name)
	check("sponsor1_id", in.Sponsor1ID)
	check("sponsor2_name", in.Sponsor2Name)
	check("sponsor2_id", in.Sponsor2ID)
	if in.Principal.LessThanOrEqual(decimal.Zero) {
		missing = append(missing, "principal")
	}
	if in.TermMonths <= 0 {
		missing = append(missing, "term_months")
	}
	if in.InterestRate < 0 {
		missing = append(missing, "interest_rate")
	}
	employment := domain.EmploymentStatus(in.EmploymentStatus)
	if employment != domain.EmploymentEmployed && employment != domain.EmploymentEntrepreneur {
		missing = append(missing, "employment_status")
	}
	mode := domain.RepaymentMode(in.RepaymentMode)
	if mode != domain.RepayWeekly && mode != domain.RepayMonthly {
		missing = append(missing, "repayment_mode")
	}

	for slot := range in.Documents {
		if !document.ValidSlot(slot) {
			missing = append(missing, fmt.Sprintf("documents[%s]", slot))
		}
	}
	for _, slot := range document.RequiredSlots(employment == domain.EmploymentEmployed) {
		if _, ok := in.Documents[slot]; !ok {
			missing = append(missing, string(slot))
		}
	}

	if len(missing) > 0 {
		return &domain.ValidationError{Fields: missing}
	}
	return nil
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func toDTO(a *domain.Application) *ApplicationDTO {
	return &ApplicationDTO{
		ID:               a.ID,
		ApplicantName:    a.ApplicantName,
		NationalID:       a.NationalID,
		Principal:        a.Principal,
		TermMonths:       a.TermMonths,
		InterestRate:     a.InterestRate,
		EmploymentStatus: string(a.EmploymentStatus),
		RepaymentMode:    string(a.RepaymentMode),
		Sponsor1Name:     a.Sponsor1Name,
		Sponsor1ID:       a.Sponsor1ID,
		Sponsor2Name:     a.Sponsor2Name,
		Sponsor2ID:       a.Sponsor2ID,
		Status:           string(a.Status),
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}
