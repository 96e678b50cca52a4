package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	appdomain "mikopo-backoffice/internal/domain/application"
	"mikopo-backoffice/internal/domain/audit"
	"mikopo-backoffice/internal/usecase/repayment"
)

type RepaymentHandler struct {
	uc    *repayment.Usecase
	audit audit.Sink
	// window is the configured due-soon horizon; ?window_days= overrides it
	window time.Duration
}

func NewRepaymentHandler(uc *repayment.Usecase, sink audit.Sink, window time.Duration) *RepaymentHandler {
	return &RepaymentHandler{uc: uc, audit: sink, window: window}
}

func (h *RepaymentHandler) List(c echo.Context) error {
	window := h.window
	if raw := c.QueryParam("window_days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days <= 0 {
			return writeError(c, &appdomain.ValidationError{Fields: []string{"window_days"}})
		}
		window = time.Duration(days) * 24 * time.Hour
	}

	out, err := h.uc.List(c.Request().Context(), window)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type markPaidReq struct {
	PaidDate string `json:"paid_date"`
}

func (h *RepaymentHandler) MarkPaid(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	var req markPaidReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	in := repayment.MarkPaidInput{InstallmentID: id}
	if req.PaidDate != "" {
		paidDate, err := time.Parse("2006-01-02", req.PaidDate)
		if err != nil {
			return writeError(c, &appdomain.ValidationError{Fields: []string{"paid_date"}})
		}
		in.PaidDate = paidDate
	}

	inst, err := h.uc.MarkPaid(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	h.audit.Log(c.Request().Context(), actor(c), "MARK_REPAYMENT_PAID",
		fmt.Sprintf("Marked repayment %d as paid", id))
	return c.JSON(http.StatusOK, inst)
}
