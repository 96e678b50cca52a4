package application

import (
	"time"

	"github.com/shopspring/decimal"

	"mikopo-backoffice/internal/domain/document"
)

// DocumentUpload is one file arriving with a submission, keyed by slot.
type DocumentUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type SubmitInput struct {
	ApplicantName    string
	NationalID       string
	Principal        decimal.Decimal
	TermMonths       int
	InterestRate     float64
	EmploymentStatus string
	RepaymentMode    string
	Sponsor1Name     string
	Sponsor1ID       string
	Sponsor2Name     string
	Sponsor2ID       string
	Documents        map[document.Slot]DocumentUpload
}

type ApplicationDTO struct {
	ID               uint64          `json:"id"`
	ApplicantName    string          `json:"applicant_name"`
	NationalID       string          `json:"national_id"`
	Principal        decimal.Decimal `json:"principal"`
	TermMonths       int             `json:"term_months"`
	InterestRate     float64         `json:"interest_rate"`
	EmploymentStatus string          `json:"employment_status"`
	RepaymentMode    string          `json:"repayment_mode"`
	Sponsor1Name     string          `json:"sponsor1_name"`
	Sponsor1ID       string          `json:"sponsor1_id"`
	Sponsor2Name     string          `json:"sponsor2_name"`
	Sponsor2ID       string          `json:"sponsor2_id"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type ScheduleLineDTO struct {
	Seq            int             `json:"payment_number"`
	DueDate        time.Time       `json:"due_date"`
	Amount         decimal.Decimal `json:"total_payment"`
	Principal      decimal.Decimal `json:"principal"`
	Interest       decimal.Decimal `json:"interest"`
	RunningBalance decimal.Decimal `json:"remaining_balance"`
}
