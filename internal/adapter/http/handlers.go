package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// serviceName identifies this API in health responses so probes can tell
// instances apart behind a shared gateway.
const serviceName = "mikopo-backoffice"

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"service": serviceName,
		"status":  "ok",
		"time":    time.Now().UTC().Format(time.RFC3339Nano),
	})
}
