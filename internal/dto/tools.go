package dto

// AnalyzeRevenueTrendsRequest are the arguments for the revenue trends tool.
// Dates are inclusive UTC calendar dates.
type AnalyzeRevenueTrendsRequest struct {
	StartDate string `json:"startDate" validate:"required,report_date"`
	EndDate   string `json:"endDate" validate:"required,report_date"`
	GroupBy   string `json:"groupBy" validate:"omitempty,group_by"`
}

// GetPaymentHistoryRequest are the arguments for the payment history tool.
// Bounds are inclusive local datetimes in the report timezone.
type GetPaymentHistoryRequest struct {
	StartDate string `json:"startDate" validate:"required,report_datetime"`
	EndDate   string `json:"endDate" validate:"required,report_datetime"`
}

// IssueRefundRequest are the arguments for the refund tool.
// Amount is in major currency units. The caller is responsible for keeping
// it at or below the original payment total; the ledger enforces the limit.
type IssueRefundRequest struct {
	PaymentIntentID string  `json:"paymentIntentId" validate:"required,payment_intent_id"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
}

// ToolDescriptor describes one registered tool for the listing endpoint
type ToolDescriptor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ToolListResponse is the payload of the tool listing endpoint
type ToolListResponse struct {
	Tools []ToolDescriptor `json:"tools"`
}
