package application

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type EmploymentStatus string

const (
	EmploymentEmployed     EmploymentStatus = "Employed"
	EmploymentEntrepreneur EmploymentStatus = "Entrepreneur"
)

type RepaymentMode string

const (
	RepayWeekly  RepaymentMode = "weekly"
	RepayMonthly RepaymentMode = "monthly"
)

// Application is a loan application row. Documents live in their own table
// keyed by application id + slot, not as per-slot columns here.
type Application struct {
	ID               uint64           `gorm:"primaryKey;column:id" json:"id"`
	ApplicantName    string           `gorm:"size:100;not null" json:"applicant_name"`
	NationalID       string           `gorm:"column:national_id;size:50;not null;uniqueIndex:ux_loan_applications_national_id" json:"national_id"`
	Principal        decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"principal"`
	TermMonths       int              `gorm:"not null" json:"term_months"`
	InterestRate     float64          `gorm:"type:decimal(5,2);not null" json:"interest_rate"`
	EmploymentStatus EmploymentStatus `gorm:"size:20;not null" json:"employment_status"`
	RepaymentMode    RepaymentMode    `gorm:"size:10;not null" json:"repayment_mode"`
	Sponsor1Name     string           `gorm:"size:100;not null" json:"sponsor1_name"`
	Sponsor1ID       string           `gorm:"column:sponsor1_id;size:50;not null" json:"sponsor1_id"`
	Sponsor2Name     string           `gorm:"size:100;not null" json:"sponsor2_name"`
	Sponsor2ID       string           `gorm:"column:sponsor2_id;size:50;not null" json:"sponsor2_id"`
	Status           Status           `gorm:"size:20;not null;default:'pending';index:idx_loan_applications_status" json:"status"`
	CreatedAt        time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Application) TableName() string { return "loan_applications" }

// Weekly reports whether the loan repays on a weekly cadence.
func (a *Application) Weekly() bool { return a.RepaymentMode == RepayWeekly }

// StatusCount is one row of the loan status report.
type StatusCount struct {
	Status Status `json:"status"`
	Count  int64  `json:"count"`
}

// RepaymentAggregate is one row of the loan repayment report: per approved
// loan, installment counts and amount totals.
type RepaymentAggregate struct {
	LoanID               uint64          `gorm:"column:loan_id" json:"loan_id"`
	ApplicantName        string          `gorm:"column:applicant_name" json:"applicant_name"`
	NationalID           string          `gorm:"column:national_id" json:"national_id"`
	Principal            decimal.Decimal `gorm:"column:principal" json:"principal"`
	InterestRate         float64         `gorm:"column:interest_rate" json:"interest_rate"`
	TermMonths           int             `gorm:"column:term_months" json:"term_months"`
	Status               Status          `gorm:"column:status" json:"status"`
	TotalInstallments    int64           `gorm:"column:total_installments" json:"total_installments"`
	PaidInstallments     int64           `gorm:"column:paid_installments" json:"paid_installments"`
	UnpaidInstallments   int64           `gorm:"column:unpaid_installments" json:"unpaid_installments"`
	TotalRepaymentAmount decimal.Decimal `gorm:"column:total_repayment_amount" json:"total_repayment_amount"`
	PaidAmount           decimal.Decimal `gorm:"column:paid_amount" json:"paid_amount"`
	RemainingAmount      decimal.Decimal `gorm:"column:remaining_amount" json:"remaining_amount"`
}
