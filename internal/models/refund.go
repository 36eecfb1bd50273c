package models

// Refund outcome statuses
const (
	RefundStatusSuccess = "success"
	RefundStatusError   = "error"
)

// RefundResult is the outcome of a single refund request against the
// external ledger. AmountRefunded is the ledger-confirmed amount in major
// currency units, not an echo of the requested amount.
type RefundResult struct {
	Status         string  `json:"status"`
	AmountRefunded float64 `json:"amountRefunded"`
	Error          string  `json:"error,omitempty"`
}
