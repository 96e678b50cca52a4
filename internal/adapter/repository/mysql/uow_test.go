package mysql

import (
	"context"
	"errors"
	"testing"

	appdomain "mikopo-backoffice/internal/domain/application"
	"mikopo-backoffice/internal/domain/cashflow"
	"mikopo-backoffice/internal/domain/document"
	"mikopo-backoffice/internal/domain/uow"
)

func TestGormUoW_WithinTxRollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	boom := errors.New("abort")
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		e := &cashflow.Entry{
			Type: cashflow.TypeIncome, Amount: mustDec("100"),
			Description: "should roll back", Date: day(2024, 1, 1),
		}
		if err := r.CashFlow.Create(ctx, e); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("want tx error, got %v", err)
	}

	all, err := NewCashFlowRepository(db).List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("rolled-back entry persisted: %+v", all)
	}
}

func TestGormUoW_WithinTxCommits(t *testing.T) {
	db := newTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	err := u.WithinTx(ctx, func(r uow.Repos) error {
		return r.CashFlow.Create(ctx, &cashflow.Entry{
			Type: cashflow.TypeIncome, Amount: mustDec("100"),
			Description: "committed", Date: day(2024, 1, 1),
		})
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}

	all, err := NewCashFlowRepository(db).List(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("entries = %d, err = %v", len(all), err)
	}
}

func TestGormUoW_WithinApplicationTx(t *testing.T) {
	db := newTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	seeded := seedApplication(t, db, "nid-1", appdomain.StatusPending)

	t.Run("loads and persists the application", func(t *testing.T) {
		err := u.WithinApplicationTx(ctx, seeded.ID, func(r uow.Repos, a *appdomain.Application) error {
			if a.ID != seeded.ID {
				t.Fatalf("loaded wrong row: %+v", a)
			}
			a.Status = appdomain.StatusApproved
			return r.Applications.Save(ctx, a)
		})
		if err != nil {
			t.Fatalf("WithinApplicationTx: %v", err)
		}

		got, err := NewApplicationRepository(db).GetByID(ctx, seeded.ID)
		if err != nil || got.Status != appdomain.StatusApproved {
			t.Fatalf("status = %s, err = %v", got.Status, err)
		}
	})

	t.Run("unknown id maps to domain not-found", func(t *testing.T) {
		err := u.WithinApplicationTx(ctx, 9999, func(r uow.Repos, a *appdomain.Application) error {
			t.Fatal("callback must not run for a missing application")
			return nil
		})
		if !errors.Is(err, appdomain.ErrNotFound) {
			t.Fatalf("want ErrNotFound, got %v", err)
		}
	})

	t.Run("callback error rolls the mutation back", func(t *testing.T) {
		boom := errors.New("abort")
		err := u.WithinApplicationTx(ctx, seeded.ID, func(r uow.Repos, a *appdomain.Application) error {
			a.ApplicantName = "changed"
			if err := r.Applications.Save(ctx, a); err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("want callback error, got %v", err)
		}

		got, err := NewApplicationRepository(db).GetByID(ctx, seeded.ID)
		if err != nil || got.ApplicantName == "changed" {
			t.Fatalf("rollback failed: %+v, err = %v", got, err)
		}
	})
}

func TestDocumentRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	app := seedApplication(t, db, "nid-1", appdomain.StatusPending)

	for _, slot := range []document.Slot{document.SlotSponsor1Doc, document.SlotSponsor2Doc, document.SlotTermsDoc} {
		d := &document.Document{
			ApplicationID: app.ID,
			Slot:          slot,
			Filename:      string(slot) + ".pdf",
			ObjectKey:     "obj-" + string(slot),
		}
		if err := repo.Create(ctx, d); err != nil {
			t.Fatalf("Create %s: %v", slot, err)
		}
	}

	got, err := repo.ListByApplication(ctx, app.ID)
	if err != nil || len(got) != 3 {
		t.Fatalf("list = %d, err = %v", len(got), err)
	}

	if err := repo.DeleteByApplication(ctx, app.ID); err != nil {
		t.Fatalf("DeleteByApplication: %v", err)
	}
	got, err = repo.ListByApplication(ctx, app.ID)
	if err != nil || len(got) != 0 {
		t.Fatalf("after delete: %d rows, err = %v", len(got), err)
	}
}
