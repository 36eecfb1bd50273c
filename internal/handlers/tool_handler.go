package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	apierrors "finance-agent-tools/internal/errors"
	"finance-agent-tools/internal/dto"
	"finance-agent-tools/internal/registry"
	"finance-agent-tools/internal/services"

	"github.com/labstack/echo/v4"
)

// ToolHandler dispatches agent runtime tool invocations through the registry
type ToolHandler struct {
	registry *registry.Registry
	metrics  services.MetricsRecorderInterface
}

// NewToolHandler creates a new tool dispatch handler. metrics may be nil.
func NewToolHandler(reg *registry.Registry, metrics services.MetricsRecorderInterface) *ToolHandler {
	return &ToolHandler{
		registry: reg,
		metrics:  metrics,
	}
}

// Invoke handles POST /tools/:name. The request body is the tool's JSON
// argument object; an empty body is treated as empty arguments. Tool-level
// ledger failures still return 200 with the payload's error field set.
func (h *ToolHandler) Invoke(c echo.Context) error {
	name := c.Param("name")
	start := time.Now()

	tool, ok := h.registry.Get(name)
	if !ok {
		h.record(name, "unknown_tool", start)
		return SendError(c, apierrors.ToolNotFound)
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		h.record(name, "read_error", start)
		return SendSystemError(c, err)
	}
	if len(body) == 0 {
		body = []byte("{}")
	}
	if !json.Valid(body) {
		h.record(name, "malformed_args", start)
		return SendError(c, apierrors.ToolMalformedArgs)
	}

	result, err := tool.Handler(c.Request().Context(), json.RawMessage(body))
	if err != nil {
		var argErr *registry.ArgumentError
		if errors.As(err, &argErr) {
			h.record(name, "invalid_args", start)
			return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(argErr.Details...))
		}
		h.record(name, "internal_error", start)
		return SendSystemError(c, err)
	}

	h.record(name, "success", start)
	return c.JSON(http.StatusOK, result)
}

// ListTools handles GET /tools, returning the registered tools in
// registration order
func (h *ToolHandler) ListTools(c echo.Context) error {
	tools := h.registry.Tools()

	descriptors := make([]dto.ToolDescriptor, 0, len(tools))
	for _, tool := range tools {
		descriptors = append(descriptors, dto.ToolDescriptor{
			Name:        tool.Name,
			Description: tool.Description,
		})
	}

	return c.JSON(http.StatusOK, dto.ToolListResponse{Tools: descriptors})
}

func (h *ToolHandler) record(tool, outcome string, start time.Time) {
	if h.metrics == nil {
		return
	}
	h.metrics.RecordToolInvocation(tool, outcome, time.Since(start))
}
