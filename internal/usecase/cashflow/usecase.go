package cashflow

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"mikopo-backoffice/internal/domain/application"
	domain "mikopo-backoffice/internal/domain/cashflow"
)

type Usecase struct{ entries domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{entries: r} }

// Append records a manual income or expense entry. System types are not
// accepted here; they are posted internally by the lifecycle and the tracker.
func (u *Usecase) Append(ctx context.Context, in AppendInput) (*EntryDTO, error) {
	t := domain.EntryType(in.Type)
	if !t.Manual() {
		return nil, &application.ValidationError{Fields: []string{"type"}}
	}
	var missing []string
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		missing = append(missing, "amount")
	}
	if in.Description == "" {
		missing = append(missing, "description")
	}
	if in.Date.IsZero() {
		missing = append(missing, "date")
	}
	if len(missing) > 0 {
		return nil, &application.ValidationError{Fields: missing}
	}

	e := &domain.Entry{
		Type:        t,
		Amount:      in.Amount,
		Description: in.Description,
		Date:        dateOnly(in.Date),
	}
	if err := u.entries.Create(ctx, e); err != nil {
		return nil, err
	}
	return toDTO(e), nil
}

// Update patches a manual entry. Entries posted by the lifecycle engine are
// immutable regardless of which fields are supplied.
func (u *Usecase) Update(ctx context.Context, id uint64, in UpdateInput) (*EntryDTO, error) {
	if in.Type == nil && in.Amount == nil && in.Description == nil && in.Date == nil {
		return nil, &application.ValidationError{Fields: []string{"type", "amount", "description", "date"}}
	}

	e, err := u.entries.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	if e.Type.System() {
		return nil, domain.ErrSystemEntry
	}

	if in.Type != nil {
		t := domain.EntryType(*in.Type)
		if !t.Manual() {
			return nil, &application.ValidationError{Fields: []string{"type"}}
		}
		e.Type = t
	}
	if in.Amount != nil {
		if in.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, &application.ValidationError{Fields: []string{"amount"}}
		}
		e.Amount = *in.Amount
	}
	if in.Description != nil {
		if *in.Description == "" {
			return nil, &application.ValidationError{Fields: []string{"description"}}
		}
		e.Description = *in.Description
	}
	if in.Date != nil {
		e.Date = dateOnly(*in.Date)
	}

	if err := u.entries.Save(ctx, e); err != nil {
		return nil, err
	}
	return toDTO(e), nil
}

func (u *Usecase) Remove(ctx context.Context, id uint64) error {
	e, err := u.entries.GetByID(ctx, id)
	if err != nil {
		return translateNotFound(err)
	}
	if e.Type.System() {
		return domain.ErrSystemEntry
	}
	return u.entries.Delete(ctx, id)
}

func (u *Usecase) List(ctx context.Context) ([]EntryDTO, error) {
	entries, err := u.entries.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]EntryDTO, 0, len(entries))
	for i := range entries {
		out = append(out, *toDTO(&entries[i]))
	}
	return out, nil
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

func toDTO(e *domain.Entry) *EntryDTO {
	return &EntryDTO{
		ID:          e.ID,
		Type:        string(e.Type),
		Amount:      e.Amount,
		Description: e.Description,
		Date:        e.Date,
		RelatedID:   e.RelatedID,
		CreatedAt:   e.CreatedAt,
	}
}
