package handlers

import (
	"context"
	"encoding/json"
	"time"

	"finance-agent-tools/internal/dto"
	"finance-agent-tools/internal/models"
	"finance-agent-tools/internal/registry"
	"finance-agent-tools/internal/services"
	"finance-agent-tools/internal/validation"
)

// Tool names as invoked by the hosting agent runtime
const (
	ToolAnalyzeRevenueTrends = "analyzeRevenueTrends"
	ToolGetPaymentHistory    = "getPaymentHistory"
	ToolIssueRefund          = "issueRefund"
	ToolCurrentDatetime      = "currentDatetime"
)

// BuildToolRegistry wires the tool services into the dispatch table.
// Each handler decodes and validates its arguments before any ledger call;
// ledger failures after that point are folded into the tool payload per
// the fail-soft contract.
func BuildToolRegistry(
	revenueService services.RevenueServiceInterface,
	historyService services.PaymentHistoryServiceInterface,
	refundService services.RefundServiceInterface,
	clockService services.ClockServiceInterface,
	v *validation.Validator,
	reportLocation *time.Location,
) (*registry.Registry, error) {
	reg := registry.New()

	tools := []registry.Tool{
		{
			Name:        ToolAnalyzeRevenueTrends,
			Description: "Analyze revenue trends over a date range, bucketed by day, week, or month, with summary statistics and insights",
			Handler:     analyzeRevenueTrendsHandler(revenueService, v),
		},
		{
			Name:        ToolGetPaymentHistory,
			Description: "Retrieve completed payments with customer, line item, and shipping detail for a local datetime range",
			Handler:     getPaymentHistoryHandler(historyService, v, reportLocation),
		},
		{
			Name:        ToolIssueRefund,
			Description: "Issue a refund against a payment intent for a given amount in major currency units",
			Handler:     issueRefundHandler(refundService, v),
		},
		{
			Name:        ToolCurrentDatetime,
			Description: "Get the current date, time, and weekday in the report timezone",
			Handler:     currentDatetimeHandler(clockService),
		},
	}

	for _, tool := range tools {
		if err := reg.Register(tool); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

func analyzeRevenueTrendsHandler(svc services.RevenueServiceInterface, v *validation.Validator) registry.Handler {
	return func(ctx context.Context, args json.RawMessage) (any, error) {
		var req dto.AnalyzeRevenueTrendsRequest
		if err := decodeArgs(args, &req, v); err != nil {
			return nil, err
		}

		// Formats are already validated; parse cannot fail here.
		startDate, _ := time.ParseInLocation("2006-01-02", req.StartDate, time.UTC)
		endDate, _ := time.ParseInLocation("2006-01-02", req.EndDate, time.UTC)

		report, err := svc.AnalyzeRevenueTrends(ctx, startDate, endDate, req.GroupBy)
		if err != nil {
			return models.EmptyRevenueReport(err.Error()), nil
		}
		return report, nil
	}
}

func getPaymentHistoryHandler(svc services.PaymentHistoryServiceInterface, v *validation.Validator, location *time.Location) registry.Handler {
	return func(ctx context.Context, args json.RawMessage) (any, error) {
		var req dto.GetPaymentHistoryRequest
		if err := decodeArgs(args, &req, v); err != nil {
			return nil, err
		}

		start, _ := time.ParseInLocation("2006-01-02 15:04:05", req.StartDate, location)
		end, _ := time.ParseInLocation("2006-01-02 15:04:05", req.EndDate, location)

		history, err := svc.GetPaymentHistory(ctx, start, end)
		if err != nil {
			return models.EmptyPaymentHistory(err.Error()), nil
		}
		return history, nil
	}
}

func issueRefundHandler(svc services.RefundServiceInterface, v *validation.Validator) registry.Handler {
	return func(ctx context.Context, args json.RawMessage) (any, error) {
		var req dto.IssueRefundRequest
		if err := decodeArgs(args, &req, v); err != nil {
			return nil, err
		}

		return svc.IssueRefund(ctx, req.PaymentIntentID, req.Amount), nil
	}
}

func currentDatetimeHandler(svc services.ClockServiceInterface) registry.Handler {
	return func(_ context.Context, _ json.RawMessage) (any, error) {
		return svc.CurrentDatetime(), nil
	}
}

// decodeArgs unmarshals and validates tool arguments, converting failures
// into an ArgumentError for the transport layer
func decodeArgs(args json.RawMessage, target any, v *validation.Validator) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, target); err != nil {
		return registry.NewArgumentError(map[string]string{"arguments": "must be a valid JSON object"})
	}
	if err := v.Struct(target); err != nil {
		return registry.NewArgumentError(v.FormatErrors(err))
	}
	return nil
}
