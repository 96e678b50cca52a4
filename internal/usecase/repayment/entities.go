package repayment

import (
	"time"

	"github.com/shopspring/decimal"

	"mikopo-backoffice/internal/domain/installment"
)

// DefaultDueSoonWindow is how far ahead the "due soon" band looks when the
// caller does not supply a window.
const DefaultDueSoonWindow = 30 * 24 * time.Hour

type MarkPaidInput struct {
	InstallmentID uint64
	// PaidDate defaults to today when zero.
	PaidDate time.Time
}

// Summary aggregates unpaid installments. The bands overlap by design:
// overdue and due-soon both count toward total due.
type Summary struct {
	TotalDue decimal.Decimal `json:"total_due"`
	Overdue  decimal.Decimal `json:"overdue"`
	DueSoon  decimal.Decimal `json:"due_soon"`
}

type ListOutput struct {
	Repayments []installment.Detail `json:"repayments"`
	Summary    Summary              `json:"summary"`
}
