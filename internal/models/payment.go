package models

// CustomerDetails carries the nullable contact fields of a checkout session.
// Absent values stay nil rather than defaulting to empty strings so that
// consumers must handle absence explicitly.
type CustomerDetails struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// LineItem is one purchased item within a payment record.
// Monetary fields are in major currency units.
type LineItem struct {
	Name        *string `json:"name"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    *int64  `json:"quantity"`
	TotalAmount float64 `json:"totalAmount"`
}

// ShippingDetails holds the shipping address and cost for a payment.
// Address is sourced from session metadata and may be absent.
type ShippingDetails struct {
	Address     *string `json:"address"`
	TotalAmount float64 `json:"totalAmount"`
}

// PaymentRecord is a request-scoped reshaping of a completed checkout
// session into the payment history response schema
type PaymentRecord struct {
	ID              string          `json:"id"`
	PaymentIntentID *string         `json:"paymentIntentId"`
	Date            string          `json:"date"`
	TotalAmount     float64         `json:"totalAmount"`
	CustomerDetails CustomerDetails `json:"customerDetails"`
	LineItems       []LineItem      `json:"lineItems"`
	ShippingDetails ShippingDetails `json:"shippingDetails"`
}

// PaymentHistorySummary provides aggregate totals for the history range
type PaymentHistorySummary struct {
	TotalPayments int     `json:"totalPayments"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// PaymentHistory is the full payload returned by the payment history tool
type PaymentHistory struct {
	Payments []PaymentRecord       `json:"payments"`
	Summary  PaymentHistorySummary `json:"summary"`
	Error    string                `json:"error,omitempty"`
}

// EmptyPaymentHistory returns a zeroed history payload with the given error message
func EmptyPaymentHistory(errMsg string) *PaymentHistory {
	return &PaymentHistory{
		Payments: []PaymentRecord{},
		Error:    errMsg,
	}
}
