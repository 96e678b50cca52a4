package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	appdomain "mikopo-backoffice/internal/domain/application"
	"mikopo-backoffice/internal/domain/cashflow"
	"mikopo-backoffice/internal/domain/document"
	"mikopo-backoffice/internal/domain/installment"
)

// writeError maps the core's typed errors onto HTTP status codes. Anything
// unrecognized is a 500.
func writeError(c echo.Context, err error) error {
	var ve *appdomain.ValidationError
	if errors.As(err, &ve) {
		details := make([]FieldError, 0, len(ve.Fields))
		for _, f := range ve.Fields {
			details = append(details, FieldError{Field: f, Message: "missing or invalid"})
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: details})
	}

	switch {
	case errors.Is(err, appdomain.ErrDuplicateNationalID):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, appdomain.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, installment.ErrAlreadyPaid):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, cashflow.ErrSystemEntry):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, appdomain.ErrNotFound),
		errors.Is(err, installment.ErrNotFound),
		errors.Is(err, cashflow.ErrNotFound),
		errors.Is(err, document.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// actor identifies who performed a mutation for the audit trail. Token
// issuance is out of scope; the gateway forwards the operator in a header.
func actor(c echo.Context) string {
	if a := strings.TrimSpace(c.Request().Header.Get("X-Actor")); a != "" {
		return a
	}
	return "system"
}
