package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mikopo-backoffice/internal/usecase/report"
)

type ReportHandler struct{ uc *report.Usecase }

func NewReportHandler(uc *report.Usecase) *ReportHandler { return &ReportHandler{uc: uc} }

func (h *ReportHandler) Dashboard(c echo.Context) error {
	out, err := h.uc.Dashboard(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) CashFlow(c echo.Context) error {
	out, err := h.uc.CashFlow(c.Request().Context(), report.CashFlowReportInput{
		StartDate: c.QueryParam("start_date"),
		EndDate:   c.QueryParam("end_date"),
		SortBy:    c.QueryParam("sort_by"),
		SortOrder: c.QueryParam("sort_order"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) LoanStatus(c echo.Context) error {
	out, err := h.uc.LoanStatus(c.Request().Context(), report.LoanStatusReportInput{
		Status:    c.QueryParam("status"),
		SortBy:    c.QueryParam("sort_by"),
		SortOrder: c.QueryParam("sort_order"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) LoanRepayments(c echo.Context) error {
	out, err := h.uc.LoanRepayments(c.Request().Context(), report.LoanRepaymentReportInput{
		SortBy:    c.QueryParam("sort_by"),
		SortOrder: c.QueryParam("sort_order"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
