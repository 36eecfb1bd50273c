package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finance-agent-tools/internal/ledger"
	"finance-agent-tools/internal/models"
)

// shippingAddressMetadataKey is where checkout flows record the shipping
// address on the session
const shippingAddressMetadataKey = "shipping_address"

var ErrInvalidHistoryRange = errors.New("end datetime must not be before start datetime")

type paymentHistoryService struct {
	ledger   ledger.Client
	location *time.Location
	pageSize int
}

// NewPaymentHistoryService creates the payment history retrieval service.
// location is the report timezone used to render display datetimes.
func NewPaymentHistoryService(client ledger.Client, location *time.Location, pageSize int) PaymentHistoryServiceInterface {
	if pageSize <= 0 || pageSize > defaultPageSize {
		pageSize = defaultPageSize
	}
	return &paymentHistoryService{
		ledger:   client,
		location: location,
		pageSize: pageSize,
	}
}

func (s *paymentHistoryService) GetPaymentHistory(ctx context.Context, start, end time.Time) (*models.PaymentHistory, error) {
	if end.Before(start) {
		return nil, ErrInvalidHistoryRange
	}

	sessions, err := s.fetchCompletedSessions(ctx, start.Unix(), end.Unix())
	if err != nil {
		slog.Error("payment history retrieval failed",
			"start", start.In(s.location).Format("2006-01-02 15:04:05"),
			"end", end.In(s.location).Format("2006-01-02 15:04:05"),
			"error", err)
		return nil, err
	}

	payments := make([]models.PaymentRecord, 0, len(sessions))
	var totalMinor int64
	for _, session := range sessions {
		payments = append(payments, s.buildPaymentRecord(session))
		totalMinor += session.AmountTotal
	}

	history := &models.PaymentHistory{
		Payments: payments,
		Summary: models.PaymentHistorySummary{
			TotalPayments: len(payments),
			TotalRevenue:  minorToMajor(totalMinor),
		},
	}

	slog.Info("payment history retrieved",
		"payment_count", len(payments))

	return history, nil
}

// fetchCompletedSessions pages through completed checkout sessions with
// line-item expansion until the cursor is exhausted. A failed page fetch
// aborts the whole operation.
func (s *paymentHistoryService) fetchCompletedSessions(ctx context.Context, createdGTE, createdLTE int64) ([]ledger.CheckoutSession, error) {
	var sessions []ledger.CheckoutSession
	cursor := ""

	for {
		page, err := s.ledger.ListCheckoutSessions(ctx, ledger.CheckoutSessionListParams{
			CreatedGTE:      createdGTE,
			CreatedLTE:      createdLTE,
			Status:          ledger.SessionStatusComplete,
			Limit:           s.pageSize,
			StartingAfter:   cursor,
			ExpandLineItems: true,
		})
		if err != nil {
			return nil, fmt.Errorf("fetch checkout sessions: %w", err)
		}

		sessions = append(sessions, page.Data...)

		if !page.HasMore || len(page.Data) == 0 {
			break
		}
		cursor = page.Data[len(page.Data)-1].ID
	}

	return sessions, nil
}

// buildPaymentRecord reshapes one checkout session into the payment
// history response schema. Nullable source fields stay nil; shipping cost
// defaults to 0 when the session carries none.
func (s *paymentHistoryService) buildPaymentRecord(session ledger.CheckoutSession) models.PaymentRecord {
	record := models.PaymentRecord{
		ID:              session.ID,
		PaymentIntentID: session.PaymentIntent,
		Date:            time.Unix(session.Created, 0).In(s.location).Format("2006-01-02 15:04:05"),
		TotalAmount:     minorToMajor(session.AmountTotal),
		LineItems:       []models.LineItem{},
	}

	if session.CustomerDetails != nil {
		record.CustomerDetails = models.CustomerDetails{
			Name:  session.CustomerDetails.Name,
			Email: session.CustomerDetails.Email,
			Phone: session.CustomerDetails.Phone,
		}
	}

	if session.LineItems != nil {
		for _, item := range session.LineItems.Data {
			lineItem := models.LineItem{
				Name:        item.Description,
				Quantity:    item.Quantity,
				TotalAmount: minorToMajor(item.AmountTotal),
			}
			if item.Price != nil {
				lineItem.UnitPrice = minorToMajor(item.Price.UnitAmount)
			}
			record.LineItems = append(record.LineItems, lineItem)
		}
	}

	if address, ok := session.Metadata[shippingAddressMetadataKey]; ok && address != "" {
		record.ShippingDetails.Address = &address
	}
	if session.ShippingCost != nil {
		record.ShippingDetails.TotalAmount = minorToMajor(session.ShippingCost.AmountTotal)
	}

	return record
}
