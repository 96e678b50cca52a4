package cashflow

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("cash flow entry not found")
	// ErrSystemEntry guards loan_disbursement / loan_repayment rows against
	// manual edit or delete.
	ErrSystemEntry = errors.New("system-generated cash flow entries cannot be modified")
)

type EntryType string

const (
	TypeIncome       EntryType = "income"
	TypeExpense      EntryType = "expense"
	TypeDisbursement EntryType = "loan_disbursement"
	TypeRepayment    EntryType = "loan_repayment"
)

// System reports whether the type is posted by the lifecycle engine rather
// than by an operator.
func (t EntryType) System() bool {
	return t == TypeDisbursement || t == TypeRepayment
}

// Manual reports whether the type may be created and edited by an operator.
func (t EntryType) Manual() bool {
	return t == TypeIncome || t == TypeExpense
}

type Entry struct {
	ID          uint64          `gorm:"primaryKey;column:id" json:"id"`
	Type        EntryType       `gorm:"size:20;not null;index:idx_cash_flow_type" json:"type"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Date        time.Time       `gorm:"type:date;not null;index:idx_cash_flow_date" json:"date"`
	RelatedID   *uint64         `gorm:"column:related_id;index:idx_cash_flow_related_id" json:"related_id,omitempty"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Entry) TableName() string { return "cash_flow" }

// DailyTotal is one row of the cash-flow report: income and expense totals
// for a single date. Repayments count as income, disbursements as expense.
type DailyTotal struct {
	Date    time.Time       `gorm:"column:date" json:"date"`
	Income  decimal.Decimal `gorm:"column:income" json:"income"`
	Expense decimal.Decimal `gorm:"column:expense" json:"expense"`
}
