package report

import (
	"context"
	"time"

	appdomain "mikopo-backoffice/internal/domain/application"
	"mikopo-backoffice/internal/domain/cashflow"
)

const recentLimit = 5

type Usecase struct {
	apps    appdomain.Repository
	entries cashflow.Repository
}

func NewUsecase(apps appdomain.Repository, entries cashflow.Repository) *Usecase {
	return &Usecase{apps: apps, entries: entries}
}

func (u *Usecase) Dashboard(ctx context.Context) (*Dashboard, error) {
	count, err := u.apps.Count(ctx)
	if err != nil {
		return nil, err
	}
	income, err := u.entries.SumByTypes(ctx, cashflow.TypeIncome, cashflow.TypeRepayment)
	if err != nil {
		return nil, err
	}
	expenses, err := u.entries.SumByTypes(ctx, cashflow.TypeExpense, cashflow.TypeDisbursement)
	if err != nil {
		return nil, err
	}
	recentApps, err := u.apps.ListRecent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	recentEntries, err := u.entries.ListRecent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		TotalApplications:  count,
		TotalIncome:        income,
		TotalExpenses:      expenses,
		RecentApplications: recentApps,
		RecentTransactions: recentEntries,
	}, nil
}

// CashFlow groups ledger entries per date over an inclusive range. Sort
// fields outside the allow-list fall back to the default.
func (u *Usecase) CashFlow(ctx context.Context, in CashFlowReportInput) ([]cashflow.DailyTotal, error) {
	if in.StartDate == "" || in.EndDate == "" {
		return nil, &appdomain.ValidationError{Fields: []string{"start_date", "end_date"}}
	}
	from, err := time.Parse("2006-01-02", in.StartDate)
	if err != nil {
		return nil, &appdomain.ValidationError{Fields: []string{"start_date"}}
	}
	to, err := time.Parse("2006-01-02", in.EndDate)
	if err != nil {
		return nil, &appdomain.ValidationError{Fields: []string{"end_date"}}
	}

	sort := resolveSort(in.SortBy, in.SortOrder, "date", []string{"date", "income", "expense"})
	if in.SortBy == "" {
		// unsorted requests read chronologically
		sort = cashflow.Sort{Field: "date", Desc: false}
	}
	return u.entries.DailyTotals(ctx, from, to, sort)
}

// LoanStatus counts applications per status, optionally filtered to one.
func (u *Usecase) LoanStatus(ctx context.Context, in LoanStatusReportInput) ([]appdomain.StatusCount, error) {
	var filter appdomain.Status
	if in.Status != "" {
		filter = appdomain.Status(in.Status)
		switch filter {
		case appdomain.StatusPending, appdomain.StatusApproved, appdomain.StatusRejected:
		default:
			return nil, &appdomain.ValidationError{Fields: []string{"status"}}
		}
	}
	s := resolveSort(in.SortBy, in.SortOrder, "count", []string{"status", "count"})
	return u.apps.StatusCounts(ctx, filter, appdomain.Sort{Field: s.Field, Desc: s.Desc})
}

// LoanRepayments aggregates installments per approved loan.
func (u *Usecase) LoanRepayments(ctx context.Context, in LoanRepaymentReportInput) ([]appdomain.RepaymentAggregate, error) {
	s := resolveSort(in.SortBy, in.SortOrder, "remaining_amount", []string{
		"loan_id", "applicant_name", "principal", "total_installments",
		"paid_installments", "unpaid_installments", "total_repayment_amount",
		"paid_amount", "remaining_amount",
	})
	return u.apps.RepaymentAggregates(ctx, appdomain.Sort{Field: s.Field, Desc: s.Desc})
}

// resolveSort clamps user-supplied sorting onto an allow-list; anything
// unrecognized becomes the default field in descending order.
func resolveSort(field, order, def string, allowed []string) cashflow.Sort {
	out := cashflow.Sort{Field: def, Desc: true}
	for _, f := range allowed {
		if field == f {
			out.Field = f
			break
		}
	}
	if order == "asc" {
		out.Desc = false
	}
	return out
}
