package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	appdomain "mikopo-backoffice/internal/domain/application"
	"mikopo-backoffice/internal/domain/audit"
	"mikopo-backoffice/internal/usecase/cashflow"
)

type CashFlowHandler struct {
	uc    *cashflow.Usecase
	audit audit.Sink
}

func NewCashFlowHandler(uc *cashflow.Usecase, sink audit.Sink) *CashFlowHandler {
	return &CashFlowHandler{uc: uc, audit: sink}
}

func (h *CashFlowHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type appendEntryReq struct {
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Amount      float64 `json:"amount" validate:"required,gt=0,dec2"`
	Description string  `json:"description" validate:"required"`
	Date        string  `json:"date" validate:"required"`
}

func (h *CashFlowHandler) Append(c echo.Context) error {
	var req appendEntryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return writeError(c, &appdomain.ValidationError{Fields: []string{"date"}})
	}

	dto, err := h.uc.Append(c.Request().Context(), cashflow.AppendInput{
		Type:        req.Type,
		Amount:      decimal.NewFromFloat(req.Amount),
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		return writeError(c, err)
	}

	h.audit.Log(c.Request().Context(), actor(c), "CREATE_TRANSACTION",
		fmt.Sprintf("Created %s transaction of %s", dto.Type, dto.Amount))
	return c.JSON(http.StatusCreated, dto)
}

type updateEntryReq struct {
	Type        *string  `json:"type"`
	Amount      *float64 `json:"amount"`
	Description *string  `json:"description"`
	Date        *string  `json:"date"`
}

func (h *CashFlowHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	var req updateEntryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	in := cashflow.UpdateInput{Type: req.Type, Description: req.Description}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		in.Amount = &amount
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return writeError(c, &appdomain.ValidationError{Fields: []string{"date"}})
		}
		in.Date = &date
	}

	dto, err := h.uc.Update(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}

	h.audit.Log(c.Request().Context(), actor(c), "UPDATE_TRANSACTION",
		fmt.Sprintf("Updated transaction %d", id))
	return c.JSON(http.StatusOK, dto)
}

func (h *CashFlowHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Remove(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	h.audit.Log(c.Request().Context(), actor(c), "DELETE_TRANSACTION",
		fmt.Sprintf("Deleted transaction %d", id))
	return c.JSON(http.StatusOK, map[string]string{"message": "transaction deleted"})
}
