package services

import (
	"context"
	"time"

	"finance-agent-tools/internal/models"
)

// RevenueServiceInterface analyzes revenue trends over a calendar date range.
// Start and end are inclusive UTC calendar dates.
type RevenueServiceInterface interface {
	AnalyzeRevenueTrends(ctx context.Context, startDate, endDate time.Time, groupBy string) (*models.RevenueReport, error)
}

// PaymentHistoryServiceInterface retrieves completed checkout sessions.
// Start and end are inclusive instants, already converted from the report
// timezone by the caller.
type PaymentHistoryServiceInterface interface {
	GetPaymentHistory(ctx context.Context, start, end time.Time) (*models.PaymentHistory, error)
}

// RefundServiceInterface submits a single refund to the payments ledger.
// The result always carries a status; ledger failures surface as
// status "error", never as a returned error.
type RefundServiceInterface interface {
	IssueRefund(ctx context.Context, paymentIntentID string, amount float64) *models.RefundResult
}

// ClockServiceInterface reads the current time in the report timezone
type ClockServiceInterface interface {
	CurrentDatetime() *models.ClockReading
}

// MetricsRecorderInterface records tool invocation metrics
type MetricsRecorderInterface interface {
	RecordToolInvocation(tool, outcome string, duration time.Duration)
	RecordLedgerRequest(endpoint, outcome string)
	SetLedgerCircuitState(state float64)
}
