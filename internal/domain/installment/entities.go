package installment

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound    = errors.New("repayment installment not found")
	ErrAlreadyPaid = errors.New("repayment installment already marked paid")
)

// Installment is one scheduled repayment of a loan. Rows are created in bulk
// at approval time and only ever mutate unpaid -> paid.
type Installment struct {
	ID                 uint64          `gorm:"primaryKey;column:id" json:"id"`
	ApplicationID      uint64          `gorm:"column:loan_application_id;not null;index:idx_loan_repayments_application" json:"loan_application_id"`
	Seq                int             `gorm:"not null" json:"seq"`
	DueDate            time.Time       `gorm:"type:date;not null;index:idx_loan_repayments_due_date" json:"due_date"`
	Amount             decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	PrincipalComponent decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"principal_component"`
	InterestComponent  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"interest_component"`
	RunningBalance     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"running_balance"`
	Paid               bool            `gorm:"not null;default:false;index:idx_loan_repayments_paid" json:"paid"`
	PaidDate           *time.Time      `gorm:"type:date" json:"paid_date,omitempty"`
	CreatedAt          time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Installment) TableName() string { return "loan_repayments" }

// Detail is an installment joined with its application for listing surfaces.
type Detail struct {
	Installment
	ApplicantName string          `gorm:"column:applicant_name" json:"applicant_name"`
	NationalID    string          `gorm:"column:national_id" json:"national_id"`
	TotalLoan     decimal.Decimal `gorm:"column:total_loan" json:"total_loan"`
	AmountPaid    decimal.Decimal `gorm:"column:amount_paid" json:"amount_paid"`
}
