package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler serves GET / and GET /health — liveness probe.
// Returns the literal "OK" the contract promises.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, "OK")
}
