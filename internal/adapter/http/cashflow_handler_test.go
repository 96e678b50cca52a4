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

	domain "mikopo-backoffice/internal/domain/cashflow"
	"mikopo-backoffice/internal/testutil/auditmock"
	"mikopo-backoffice/internal/testutil/cashflowmock"
	"mikopo-backoffice/internal/usecase/cashflow"
)

func cashflowHandler(repo *cashflowmock.Repo, sink *auditmock.Sink) *CashFlowHandler {
	return NewCashFlowHandler(cashflow.NewUsecase(repo), sink)
}

func TestCashFlowHandler_Append(t *testing.T) {
	t.Run("valid entry", func(t *testing.T) {
		var created *domain.Entry
		repo := &cashflowmock.Repo{
			CreateFn: func(ctx context.Context, e *domain.Entry) error {
				e.ID = 7
				created = e
				return nil
			},
		}
		sink := &auditmock.Sink{}
		h := cashflowHandler(repo, sink)

		body := `{"type":"expense","amount":50000,"description":"Office rent","date":"2024-02-01"}`
		req := httptest.NewRequest(http.MethodPost, "/api/cash-flow", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := newEcho().NewContext(req, rec)

		if err := h.Append(c); err != nil {
			t.Fatalf("handler err: %v", err)
		}
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		if created == nil || created.Type != domain.TypeExpense {
			t.Fatalf("created = %+v", created)
		}
		if !created.Amount.Equal(decimal.RequireFromString("50000")) {
			t.Fatalf("amount = %s", created.Amount)
		}
		if len(sink.Entries) != 1 || sink.Entries[0].Action != "CREATE_TRANSACTION" {
			t.Fatalf("audit = %+v", sink.Entries)
		}
	})

	t.Run("system type rejected by validator", func(t *testing.T) {
		h := cashflowHandler(&cashflowmock.Repo{}, &auditmock.Sink{})

		body := `{"type":"loan_repayment","amount":100,"description":"x","date":"2024-02-01"}`
		req := httptest.NewRequest(http.MethodPost, "/api/cash-flow", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := newEcho().NewContext(req, rec)

		if err := h.Append(c); err != nil {
			t.Fatalf("handler err: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
		resp := decodeErr(t, rec)
		if !containsFieldMsg(resp.Details, "Type", "one of") {
			t.Fatalf("details = %+v", resp.Details)
		}
	})

	t.Run("fractional cents rejected", func(t *testing.T) {
		h := cashflowHandler(&cashflowmock.Repo{}, &auditmock.Sink{})

		body := `{"type":"income","amount":10.999,"description":"x","date":"2024-02-01"}`
		req := httptest.NewRequest(http.MethodPost, "/api/cash-flow", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := newEcho().NewContext(req, rec)

		if err := h.Append(c); err != nil {
			t.Fatalf("handler err: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
		resp := decodeErr(t, rec)
		if !containsFieldMsg(resp.Details, "Amount", "decimal places") {
			t.Fatalf("details = %+v", resp.Details)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		h := cashflowHandler(&cashflowmock.Repo{}, &auditmock.Sink{})

		body := `{"type":"income","amount":100,"description":"x","date":"01/02/2024"}`
		req := httptest.NewRequest(http.MethodPost, "/api/cash-flow", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := newEcho().NewContext(req, rec)

		if err := h.Append(c); err != nil {
			t.Fatalf("handler err: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
	})
}

func TestCashFlowHandler_Update(t *testing.T) {
	manualEntry := func() *domain.Entry {
		return &domain.Entry{
			ID: 3, Type: domain.TypeExpense,
			Amount: decimal.RequireFromString("50000"), Description: "Office rent",
			Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	do := func(t *testing.T, h *CashFlowHandler, id, body string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodPut, "/api/cash-flow/"+id, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := newEcho().NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(id)
		if err := h.Update(c); err != nil {
			t.Fatalf("handler err: %v", err)
		}
		return rec
	}

	t.Run("patch amount", func(t *testing.T) {
		var saved *domain.Entry
		repo := &cashflowmock.Repo{
			GetByIDFn: func(ctx context.Context, id uint64) (*domain.Entry, error) { return manualEntry(), nil },
			SaveFn:    func(ctx context.Context, e *domain.Entry) error { saved = e; return nil },
		}
		sink := &auditmock.Sink{}
		rec := do(t, cashflowHandler(repo, sink), "3", `{"amount":75000}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		if !saved.Amount.Equal(decimal.RequireFromString("75000")) {
			t.Fatalf("amount = %s", saved.Amount)
		}
		if len(sink.Entries) != 1 || sink.Entries[0].Action != "UPDATE_TRANSACTION" {
			t.Fatalf("audit = %+v", sink.Entries)
		}
	})

	t.Run("system entry is forbidden", func(t *testing.T) {
		repo := &cashflowmock.Repo{
			GetByIDFn: func(ctx context.Context, id uint64) (*domain.Entry, error) {
				e := manualEntry()
				e.Type = domain.TypeDisbursement
				return e, nil
			},
		}
		rec := do(t, cashflowHandler(repo, &auditmock.Sink{}), "3", `{"description":"edited"}`)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d", rec.Code)
		}
	})
}

func TestCashFlowHandler_Delete(t *testing.T) {
	do := func(t *testing.T, h *CashFlowHandler, id string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodDelete, "/api/cash-flow/"+id, nil)
		rec := httptest.NewRecorder()
		c := newEcho().NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(id)
		if err := h.Delete(c); err != nil {
			t.Fatalf("handler err: %v", err)
		}
		return rec
	}

	t.Run("manual entry deleted", func(t *testing.T) {
		repo := &cashflowmock.Repo{
			GetByIDFn: func(ctx context.Context, id uint64) (*domain.Entry, error) {
				return &domain.Entry{ID: id, Type: domain.TypeIncome}, nil
			},
		}
		sink := &auditmock.Sink{}
		rec := do(t, cashflowHandler(repo, sink), "3")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if len(sink.Entries) != 1 || sink.Entries[0].Action != "DELETE_TRANSACTION" {
			t.Fatalf("audit = %+v", sink.Entries)
		}
	})

	t.Run("system entry is forbidden", func(t *testing.T) {
		repo := &cashflowmock.Repo{
			GetByIDFn: func(ctx context.Context, id uint64) (*domain.Entry, error) {
				return &domain.Entry{ID: id, Type: domain.TypeRepayment}, nil
			},
		}
		sink := &auditmock.Sink{}
		rec := do(t, cashflowHandler(repo, sink), "3")
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d", rec.Code)
		}
		if len(sink.Entries) != 0 {
			t.Fatalf("no audit expected, got %+v", sink.Entries)
		}
	})
}

func TestCashFlowHandler_List(t *testing.T) {
	repo := &cashflowmock.Repo{
		ListFn: func(ctx context.Context) ([]domain.Entry, error) {
			return []domain.Entry{
				{ID: 2, Type: domain.TypeIncome, Amount: decimal.RequireFromString("100")},
				{ID: 1, Type: domain.TypeExpense, Amount: decimal.RequireFromString("50")},
			}, nil
		},
	}
	h := cashflowHandler(repo, &auditmock.Sink{})

	req := httptest.NewRequest(http.MethodGet, "/api/cash-flow", nil)
	rec := httptest.NewRecorder()
	c := newEcho().NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler err: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var out []cashflow.EntryDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 2 || out[0].ID != 2 {
		t.Fatalf("out = %+v", out)
	}
}
