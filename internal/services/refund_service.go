package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"finance-agent-tools/internal/ledger"
	"finance-agent-tools/internal/models"

	"github.com/google/uuid"
)

// PaymentIntentPrefix is the documented identifier prefix for refundable payments
const PaymentIntentPrefix = "pi_"

type refundService struct {
	ledger ledger.Client
}

// NewRefundService creates the refund issuance service. The external
// ledger is the authority on refund limits; this layer does not fetch the
// original payment to verify the amount, and performs no retries.
func NewRefundService(client ledger.Client) RefundServiceInterface {
	return &refundService{ledger: client}
}

func (s *refundService) IssueRefund(ctx context.Context, paymentIntentID string, amount float64) *models.RefundResult {
	if !strings.HasPrefix(paymentIntentID, PaymentIntentPrefix) {
		return refundError("payment intent ID must start with 'pi_'")
	}
	if amount <= 0 {
		return refundError("refund amount must be greater than zero")
	}

	refund, err := s.ledger.CreateRefund(ctx, ledger.RefundParams{
		PaymentIntentID: paymentIntentID,
		Amount:          majorToMinor(amount),
		IdempotencyKey:  uuid.NewString(),
	})
	if err != nil {
		slog.Error("refund submission failed",
			"payment_intent_id", paymentIntentID,
			"error", err)

		var apiErr *ledger.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return refundError(apiErr.Message)
		}
		return refundError("refund request failed")
	}

	slog.Info("refund issued",
		"payment_intent_id", paymentIntentID,
		"refund_id", refund.ID,
		"amount_minor", refund.Amount)

	return &models.RefundResult{
		Status:         models.RefundStatusSuccess,
		AmountRefunded: minorToMajor(refund.Amount),
	}
}

func refundError(message string) *models.RefundResult {
	return &models.RefundResult{
		Status: models.RefundStatusError,
		Error:  message,
	}
}
