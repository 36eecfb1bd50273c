package ledger

// Charge settlement statuses reported by the payments ledger
const (
	ChargeStatusSucceeded = "succeeded"
	ChargeStatusPending   = "pending"
	ChargeStatusFailed    = "failed"
)

// Checkout session statuses
const (
	SessionStatusComplete = "complete"
	SessionStatusExpired  = "expired"
)

// Charge is a single charge record from the payments ledger.
// Amount is in minor currency units; Created is seconds since epoch.
type Charge struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Created  int64  `json:"created"`
	Status   string `json:"status"`
	Currency string `json:"currency"`
}

// ChargeList is one page of the paginated charge feed
type ChargeList struct {
	Object  string   `json:"object"`
	Data    []Charge `json:"data"`
	HasMore bool     `json:"has_more"`
}

// ChargeListParams filters the charge feed by creation time.
// CreatedGTE and CreatedLTE are inclusive epoch-second bounds.
type ChargeListParams struct {
	CreatedGTE    int64
	CreatedLTE    int64
	Limit         int
	StartingAfter string
}

// SessionCustomerDetails carries the nullable customer contact fields
// attached to a checkout session
type SessionCustomerDetails struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// SessionPrice is the price object expanded on a line item.
// UnitAmount is in minor currency units.
type SessionPrice struct {
	UnitAmount int64 `json:"unit_amount"`
}

// SessionLineItem is one purchased item within a checkout session
type SessionLineItem struct {
	Description *string       `json:"description"`
	Quantity    *int64        `json:"quantity"`
	AmountTotal int64         `json:"amount_total"`
	Price       *SessionPrice `json:"price"`
}

// SessionLineItemList wraps the expanded line items of a session
type SessionLineItemList struct {
	Data []SessionLineItem `json:"data"`
}

// SessionShippingCost is the shipping charge attached to a session,
// in minor currency units
type SessionShippingCost struct {
	AmountTotal int64 `json:"amount_total"`
}

// CheckoutSession is a completed purchase flow record. Customer details,
// line items, and shipping cost are all nullable on the wire.
type CheckoutSession struct {
	ID              string                  `json:"id"`
	PaymentIntent   *string                 `json:"payment_intent"`
	Created         int64                   `json:"created"`
	AmountTotal     int64                   `json:"amount_total"`
	Status          string                  `json:"status"`
	CustomerDetails *SessionCustomerDetails `json:"customer_details"`
	LineItems       *SessionLineItemList    `json:"line_items"`
	ShippingCost    *SessionShippingCost    `json:"shipping_cost"`
	Metadata        map[string]string       `json:"metadata"`
}

// CheckoutSessionList is one page of the paginated session feed
type CheckoutSessionList struct {
	Object  string            `json:"object"`
	Data    []CheckoutSession `json:"data"`
	HasMore bool              `json:"has_more"`
}

// CheckoutSessionListParams filters the session feed. ExpandLineItems
// requests line-item detail inline instead of a follow-up call per session.
type CheckoutSessionListParams struct {
	CreatedGTE      int64
	CreatedLTE      int64
	Status          string
	Limit           int
	StartingAfter   string
	ExpandLineItems bool
}

// Refund is the ledger's record of a submitted refund.
// Amount is the confirmed refunded amount in minor currency units.
type Refund struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
	Status string `json:"status"`
}

// RefundParams describes a refund to submit. Amount is in minor currency
// units. The idempotency key guards against transport-level duplicates on
// a single submission; this layer performs no retries.
type RefundParams struct {
	PaymentIntentID string
	Amount          int64
	IdempotencyKey  string
}
