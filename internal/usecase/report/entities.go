package report

import (
	"github.com/shopspring/decimal"

	appdomain "mikopo-backoffice/internal/domain/application"
	"mikopo-backoffice/internal/domain/cashflow"
)

type Dashboard struct {
	TotalApplications  int64                   `json:"total_applications"`
	TotalIncome        decimal.Decimal         `json:"total_income"`
	TotalExpenses      decimal.Decimal         `json:"total_expenses"`
	RecentApplications []appdomain.Application `json:"recent_applications"`
	RecentTransactions []cashflow.Entry        `json:"recent_transactions"`
}

type CashFlowReportInput struct {
	StartDate string
	EndDate   string
	SortBy    string
	SortOrder string
}

type LoanStatusReportInput struct {
	Status    string
	SortBy    string
	SortOrder string
}

type LoanRepaymentReportInput struct {
	SortBy    string
	SortOrder string
}
