package handlers

import (
	"net/http"
	"time"

	"finance-agent-tools/internal/errors"
	"finance-agent-tools/internal/ledger"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	breaker *ledger.CircuitBreaker
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(breaker *ledger.CircuitBreaker) *HealthCheckHandler {
	return &HealthCheckHandler{breaker: breaker}
}

// HealthCheck reports service health. There is no local state to probe;
// the only dependency signal is the ledger circuit breaker.
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	circuitState := ledger.StateClosed
	if h.breaker != nil {
		circuitState = h.breaker.State()
	}

	if circuitState == ledger.StateOpen {
		traceID := getTraceID(c)
		errorResponse := errors.NewErrorResponse(
			errors.SystemServiceUnavailable,
			traceID,
			errors.WithDetails("Payments ledger circuit breaker is open"),
		)
		return c.JSON(http.StatusServiceUnavailable, errorResponse)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"ledger": circuitState.String(),
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
