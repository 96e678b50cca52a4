package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	appdomain "mikopo-backoffice/internal/domain/application"
	"mikopo-backoffice/internal/domain/installment"
	"mikopo-backoffice/internal/domain/uow"
	"mikopo-backoffice/internal/testutil/applicationmock"
	"mikopo-backoffice/internal/testutil/auditmock"
	"mikopo-backoffice/internal/testutil/cashflowmock"
	"mikopo-backoffice/internal/testutil/installmentmock"
	"mikopo-backoffice/internal/testutil/uowmock"
	"mikopo-backoffice/internal/usecase/repayment"
)

func repaymentHandler(insts *installmentmock.Repo, tx uow.UnitOfWork, sink *auditmock.Sink) *RepaymentHandler {
	return NewRepaymentHandler(repayment.NewUsecase(insts, tx), sink, repayment.DefaultDueSoonWindow)
}

func TestRepaymentHandler_List(t *testing.T) {
	t.Run("returns rows and summary", func(t *testing.T) {
		insts := &installmentmock.Repo{
			ListDetailedFn: func(ctx context.Context) ([]installment.Detail, error) {
				return []installment.Detail{
					{Installment: installment.Installment{ID: 1, Amount: decimal.RequireFromString("244000")}, ApplicantName: "Asha Mwinyi"},
				}, nil
			},
			SumUnpaidFn: func(ctx context.Context) (decimal.Decimal, error) {
				return decimal.RequireFromString("244000"), nil
			},
		}
		h := repaymentHandler(insts, &uowmock.UoW{}, &auditmock.Sink{})

		req := httptest.NewRequest(http.MethodGet, "/api/repayments", nil)
		rec := httptest.NewRecorder()
		c := newEcho().NewContext(req, rec)

		if err := h.List(c); err != nil {
			t.Fatalf("handler err: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var out repayment.ListOutput
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(out.Repayments) != 1 || !out.Summary.TotalDue.Equal(decimal.RequireFromString("244000")) {
			t.Fatalf("out = %+v", out)
		}
	})

	t.Run("window override reaches the summary query", func(t *testing.T) {
		var gotFrom, gotTo time.Time
		insts := &installmentmock.Repo{
			SumUnpaidDueBetweenFn: func(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
				gotFrom, gotTo = from, to
				return decimal.Zero, nil
			},
		}
		h := repaymentHandler(insts, &uowmock.UoW{}, &auditmock.Sink{})

		req := httptest.NewRequest(http.MethodGet, "/api/repayments?window_days=7", nil)
		rec := httptest.NewRecorder()
		c := newEcho().NewContext(req, rec)

		if err := h.List(c); err != nil {
			t.Fatalf("handler err: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if got := gotTo.Sub(gotFrom); got != 7*24*time.Hour {
			t.Fatalf("window = %v, want 7 days", got)
		}
	})

	t.Run("invalid window rejected", func(t *testing.T) {
		h := repaymentHandler(&installmentmock.Repo{}, &uowmock.UoW{}, &auditmock.Sink{})

		for _, raw := range []string{"zero", "0", "-3"} {
			req := httptest.NewRequest(http.MethodGet, "/api/repayments?window_days="+raw, nil)
			rec := httptest.NewRecorder()
			c := newEcho().NewContext(req, rec)

			if err := h.List(c); err != nil {
				t.Fatalf("handler err: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("window %q: status = %d", raw, rec.Code)
			}
		}
	})
}

func TestRepaymentHandler_MarkPaid(t *testing.T) {
	passthroughTx := func(apps *applicationmock.Repo, insts *installmentmock.Repo, cf *cashflowmock.Repo) *uowmock.UoW {
		repos := uow.Repos{Applications: apps, Installments: insts, CashFlow: cf}
		return &uowmock.UoW{
			WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
				return fn(repos)
			},
		}
	}

	do := func(t *testing.T, h *RepaymentHandler, id, body string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodPatch, "/api/repayments/"+id+"/pay", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := newEcho().NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(id)
		if err := h.MarkPaid(c); err != nil {
			t.Fatalf("handler err: %v", err)
		}
		return rec
	}

	t.Run("marks paid with explicit date", func(t *testing.T) {
		insts := &installmentmock.Repo{
			GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*installment.Installment, error) {
				return &installment.Installment{ID: id, ApplicationID: 9, Amount: decimal.RequireFromString("244000")}, nil
			},
		}
		apps := &applicationmock.Repo{
			GetByIDFn: func(ctx context.Context, id uint64) (*appdomain.Application, error) {
				return &appdomain.Application{ID: id, ApplicantName: "Asha Mwinyi"}, nil
			},
		}
		sink := &auditmock.Sink{}
		h := repaymentHandler(insts, passthroughTx(apps, insts, &cashflowmock.Repo{}), sink)

		rec := do(t, h, "11", `{"paid_date":"2024-03-15"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		var out installment.Installment
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !out.Paid || out.PaidDate == nil {
			t.Fatalf("out = %+v", out)
		}
		if len(sink.Entries) != 1 || sink.Entries[0].Action != "MARK_REPAYMENT_PAID" {
			t.Fatalf("audit = %+v", sink.Entries)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		insts := &installmentmock.Repo{
			GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*installment.Installment, error) {
				return &installment.Installment{ID: id, Paid: true}, nil
			},
		}
		h := repaymentHandler(insts, passthroughTx(&applicationmock.Repo{}, insts, &cashflowmock.Repo{}), &auditmock.Sink{})

		rec := do(t, h, "11", `{}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
	})

	t.Run("unknown installment", func(t *testing.T) {
		insts := &installmentmock.Repo{
			GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*installment.Installment, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		h := repaymentHandler(insts, passthroughTx(&applicationmock.Repo{}, insts, &cashflowmock.Repo{}), &auditmock.Sink{})

		rec := do(t, h, "404", `{}`)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d", rec.Code)
		}
	})

	t.Run("malformed paid date", func(t *testing.T) {
		h := repaymentHandler(&installmentmock.Repo{}, &uowmock.UoW{}, &auditmock.Sink{})

		rec := do(t, h, "11", `{"paid_date":"15/03/2024"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
	})
}
