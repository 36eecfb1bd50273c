package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"finance-agent-tools/internal/config"

	"golang.org/x/time/rate"
)

// Client is the surface of the payments ledger used by the tool services.
// Each list call returns a single page; callers follow HasMore with
// StartingAfter set to the last record ID of the previous page.
type Client interface {
	ListCharges(ctx context.Context, params ChargeListParams) (*ChargeList, error)
	ListCheckoutSessions(ctx context.Context, params CheckoutSessionListParams) (*CheckoutSessionList, error)
	CreateRefund(ctx context.Context, params RefundParams) (*Refund, error)
}

// MetricsRecorder receives ledger request outcomes. A nil recorder disables
// instrumentation.
type MetricsRecorder interface {
	RecordLedgerRequest(endpoint, outcome string)
	SetLedgerCircuitState(state float64)
}

// APIError is a structured error returned by the ledger API
type APIError struct {
	StatusCode int    `json:"-"`
	Type       string `json:"type"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("ledger API error (%d %s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("ledger API error (%d)", e.StatusCode)
}

// IsRateLimited reports whether the ledger throttled the request
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

type apiErrorEnvelope struct {
	Error APIError `json:"error"`
}

type AuthTransport struct {
	apiKey string
	base   http.RoundTripper
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	return t.base.RoundTrip(req)
}

// HTTPClient talks to the payments ledger over its REST API. Outbound
// requests pass a client-side rate limiter and a circuit breaker; neither
// retries a failed call.
type HTTPClient struct {
	config  *config.LedgerConfig
	client  *http.Client
	limiter *rate.Limiter
	breaker *CircuitBreaker
	metrics MetricsRecorder
	logger  *slog.Logger
}

// NewHTTPClient creates a ledger client from configuration. metrics may be nil.
func NewHTTPClient(cfg *config.LedgerConfig, breaker *CircuitBreaker, metrics MetricsRecorder, logger *slog.Logger) *HTTPClient {
	transport := &AuthTransport{
		apiKey: cfg.APIKey,
		base:   http.DefaultTransport,
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 25
	}

	if breaker == nil {
		breaker = NewCircuitBreaker(DefaultCircuitBreakerConfig())
	}

	return &HTTPClient{
		config:  cfg,
		client:  &http.Client{Transport: transport, Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), rps),
		breaker: breaker,
		metrics: metrics,
		logger:  logger,
	}
}

// Breaker exposes the circuit breaker for health reporting
func (c *HTTPClient) Breaker() *CircuitBreaker {
	return c.breaker
}

func (c *HTTPClient) ListCharges(ctx context.Context, params ChargeListParams) (*ChargeList, error) {
	query := url.Values{}
	query.Set("created[gte]", strconv.FormatInt(params.CreatedGTE, 10))
	query.Set("created[lte]", strconv.FormatInt(params.CreatedLTE, 10))
	query.Set("limit", strconv.Itoa(params.Limit))
	if params.StartingAfter != "" {
		query.Set("starting_after", params.StartingAfter)
	}

	body, err := c.get(ctx, "/charges", query)
	if err != nil {
		return nil, err
	}

	var page ChargeList
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("decode charge list: %w", err)
	}

	return &page, nil
}

func (c *HTTPClient) ListCheckoutSessions(ctx context.Context, params CheckoutSessionListParams) (*CheckoutSessionList, error) {
	query := url.Values{}
	query.Set("created[gte]", strconv.FormatInt(params.CreatedGTE, 10))
	query.Set("created[lte]", strconv.FormatInt(params.CreatedLTE, 10))
	query.Set("limit", strconv.Itoa(params.Limit))
	if params.Status != "" {
		query.Set("status", params.Status)
	}
	if params.StartingAfter != "" {
		query.Set("starting_after", params.StartingAfter)
	}
	if params.ExpandLineItems {
		query.Add("expand[]", "data.line_items")
	}

	body, err := c.get(ctx, "/checkout/sessions", query)
	if err != nil {
		return nil, err
	}

	var page CheckoutSessionList
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("decode checkout session list: %w", err)
	}

	return &page, nil
}

func (c *HTTPClient) CreateRefund(ctx context.Context, params RefundParams) (*Refund, error) {
	form := url.Values{}
	form.Set("payment_intent", params.PaymentIntentID)
	form.Set("amount", strconv.FormatInt(params.Amount, 10))

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.config.BaseURL+"/refunds",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if params.IdempotencyKey != "" {
		req.Header.Set("Idempotency-Key", params.IdempotencyKey)
	}

	body, err := c.do(req, "/refunds")
	if err != nil {
		return nil, err
	}

	var refund Refund
	if err := json.Unmarshal(body, &refund); err != nil {
		return nil, fmt.Errorf("decode refund: %w", err)
	}

	return &refund, nil
}

func (c *HTTPClient) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.config.BaseURL+path+"?"+query.Encode(),
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return c.do(req, path)
}

func (c *HTTPClient) do(req *http.Request, endpoint string) ([]byte, error) {
	if c.breaker.IsOpen() {
		c.record(endpoint, "circuit_open")
		return nil, ErrCircuitBreakerOpen
	}

	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.breaker.RecordFailure()
		c.record(endpoint, "transport_error")
		c.logger.Error("ledger request failed",
			"method", req.Method,
			"endpoint", endpoint,
			"error", err,
		)
		return nil, fmt.Errorf("ledger request: %w", err)
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()

	if err != nil {
		c.breaker.RecordFailure()
		c.record(endpoint, "read_error")
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		// 4xx responses are request problems, not upstream outages; only
		// 5xx and rate limiting count against the circuit.
		if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
			c.breaker.RecordFailure()
		}
		c.record(endpoint, "api_error")

		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope apiErrorEnvelope
		if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
			envelope.Error.StatusCode = resp.StatusCode
			apiErr = &envelope.Error
		}

		c.logger.Warn("ledger returned error response",
			"method", req.Method,
			"endpoint", endpoint,
			"status", resp.StatusCode,
			"code", apiErr.Code,
		)
		return nil, apiErr
	}

	c.breaker.RecordSuccess()
	c.record(endpoint, "success")

	return body, nil
}

func (c *HTTPClient) record(endpoint, outcome string) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordLedgerRequest(endpoint, outcome)
	c.metrics.SetLedgerCircuitState(float64(c.breaker.State()))
}
