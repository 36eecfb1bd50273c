package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"finance-agent-tools/internal/ledger"
	"finance-agent-tools/internal/ledger/ledger_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

// PaymentHistoryServiceTestSuite defines the test suite for PaymentHistoryServiceInterface
type PaymentHistoryServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockLedger *ledger_mocks.MockClient
	location   *time.Location
	service    PaymentHistoryServiceInterface
}

// SetupTest runs before each test
func (s *PaymentHistoryServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockLedger = ledger_mocks.NewMockClient(s.ctrl)

	location, err := time.LoadLocation("America/Los_Angeles")
	s.Require().NoError(err)
	s.location = location

	s.service = NewPaymentHistoryService(s.mockLedger, s.location, 100)
}

// TearDownTest runs after each test
func (s *PaymentHistoryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestPaymentHistoryServiceSuite runs the test suite
func TestPaymentHistoryServiceSuite(t *testing.T) {
	suite.Run(t, new(PaymentHistoryServiceTestSuite))
}

func strPtr(s string) *string  { return &s }
func int64Ptr(i int64) *int64  { return &i }

func (s *PaymentHistoryServiceTestSuite) pacificRange(start, end string) (time.Time, time.Time) {
	startTime, err := time.ParseInLocation("2006-01-02 15:04:05", start, s.location)
	s.Require().NoError(err)
	endTime, err := time.ParseInLocation("2006-01-02 15:04:05", end, s.location)
	s.Require().NoError(err)
	return startTime, endTime
}

// Test a fully populated session reshapes into a complete payment record
func (s *PaymentHistoryServiceTestSuite) TestGetPaymentHistory_ReshapesSession() {
	customerName := gofakeit.Name()
	customerEmail := gofakeit.Email()

	session := ledger.CheckoutSession{
		ID:            "cs_test_1",
		PaymentIntent: strPtr("pi_abc123"),
		// 2024-07-04T19:00:00Z is noon Pacific during daylight saving
		Created:     epochAt("2024-07-04T19:00:00Z"),
		AmountTotal: 7550,
		Status:      ledger.SessionStatusComplete,
		CustomerDetails: &ledger.SessionCustomerDetails{
			Name:  &customerName,
			Email: &customerEmail,
			Phone: strPtr("+15555550100"),
		},
		LineItems: &ledger.SessionLineItemList{
			Data: []ledger.SessionLineItem{
				{
					Description: strPtr("Widget"),
					Quantity:    int64Ptr(2),
					AmountTotal: 5000,
					Price:       &ledger.SessionPrice{UnitAmount: 2500},
				},
				{
					Description: strPtr("Gadget"),
					Quantity:    int64Ptr(1),
					AmountTotal: 2000,
					Price:       &ledger.SessionPrice{UnitAmount: 2000},
				},
			},
		},
		ShippingCost: &ledger.SessionShippingCost{AmountTotal: 550},
		Metadata:     map[string]string{"shipping_address": "123 Main St, Portland, OR"},
	}

	s.mockLedger.EXPECT().
		ListCheckoutSessions(gomock.Any(), gomock.Any()).
		Return(&ledger.CheckoutSessionList{Object: "list", Data: []ledger.CheckoutSession{session}}, nil)

	start, end := s.pacificRange("2024-07-01 00:00:00", "2024-07-31 23:59:59")
	history, err := s.service.GetPaymentHistory(context.Background(), start, end)

	s.Require().NoError(err)
	s.Require().Len(history.Payments, 1)

	payment := history.Payments[0]
	s.Equal("cs_test_1", payment.ID)
	s.Equal("pi_abc123", *payment.PaymentIntentID)
	s.Equal("2024-07-04 12:00:00", payment.Date)
	s.Equal(75.50, payment.TotalAmount)
	s.Equal(customerName, *payment.CustomerDetails.Name)
	s.Equal(customerEmail, *payment.CustomerDetails.Email)
	s.Equal("+15555550100", *payment.CustomerDetails.Phone)

	s.Require().Len(payment.LineItems, 2)
	s.Equal("Widget", *payment.LineItems[0].Name)
	s.Equal(25.00, payment.LineItems[0].UnitPrice)
	s.Equal(int64(2), *payment.LineItems[0].Quantity)
	s.Equal(50.00, payment.LineItems[0].TotalAmount)

	s.Equal("123 Main St, Portland, OR", *payment.ShippingDetails.Address)
	s.Equal(5.50, payment.ShippingDetails.TotalAmount)

	s.Equal(1, history.Summary.TotalPayments)
	s.Equal(75.50, history.Summary.TotalRevenue)
}

// Test that absent nullable fields stay absent instead of defaulting
func (s *PaymentHistoryServiceTestSuite) TestGetPaymentHistory_AbsentFieldsStayAbsent() {
	session := ledger.CheckoutSession{
		ID:          "cs_test_bare",
		Created:     epochAt("2024-07-04T19:00:00Z"),
		AmountTotal: 1000,
		Status:      ledger.SessionStatusComplete,
	}

	s.mockLedger.EXPECT().
		ListCheckoutSessions(gomock.Any(), gomock.Any()).
		Return(&ledger.CheckoutSessionList{Object: "list", Data: []ledger.CheckoutSession{session}}, nil)

	start, end := s.pacificRange("2024-07-01 00:00:00", "2024-07-31 23:59:59")
	history, err := s.service.GetPaymentHistory(context.Background(), start, end)

	s.Require().NoError(err)
	s.Require().Len(history.Payments, 1)

	payment := history.Payments[0]
	s.Nil(payment.PaymentIntentID)
	s.Nil(payment.CustomerDetails.Name)
	s.Nil(payment.CustomerDetails.Email)
	s.Nil(payment.CustomerDetails.Phone)
	s.Empty(payment.LineItems)
	s.Nil(payment.ShippingDetails.Address)
	s.Equal(0.0, payment.ShippingDetails.TotalAmount)
}

// Test that Pacific local bounds are converted to epoch seconds and the
// session filter requests completed sessions with line-item expansion
func (s *PaymentHistoryServiceTestSuite) TestGetPaymentHistory_RequestParameters() {
	s.mockLedger.EXPECT().
		ListCheckoutSessions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params ledger.CheckoutSessionListParams) (*ledger.CheckoutSessionList, error) {
			// 2024-07-01 00:00:00 PDT == 2024-07-01T07:00:00Z
			s.Equal(epochAt("2024-07-01T07:00:00Z"), params.CreatedGTE)
			s.Equal(epochAt("2024-07-02T06:59:59Z"), params.CreatedLTE)
			s.Equal(ledger.SessionStatusComplete, params.Status)
			s.True(params.ExpandLineItems)
			s.Equal(100, params.Limit)
			return &ledger.CheckoutSessionList{Object: "list"}, nil
		})

	start, end := s.pacificRange("2024-07-01 00:00:00", "2024-07-01 23:59:59")
	_, err := s.service.GetPaymentHistory(context.Background(), start, end)
	s.NoError(err)
}

// Test summary totals sum in minor units across sessions
func (s *PaymentHistoryServiceTestSuite) TestGetPaymentHistory_SummaryTotals() {
	sessions := []ledger.CheckoutSession{
		{ID: "cs_1", Created: epochAt("2024-07-04T19:00:00Z"), AmountTotal: 1033, Status: ledger.SessionStatusComplete},
		{ID: "cs_2", Created: epochAt("2024-07-05T19:00:00Z"), AmountTotal: 2067, Status: ledger.SessionStatusComplete},
	}

	s.mockLedger.EXPECT().
		ListCheckoutSessions(gomock.Any(), gomock.Any()).
		Return(&ledger.CheckoutSessionList{Object: "list", Data: sessions}, nil)

	start, end := s.pacificRange("2024-07-01 00:00:00", "2024-07-31 23:59:59")
	history, err := s.service.GetPaymentHistory(context.Background(), start, end)

	s.Require().NoError(err)
	s.Equal(2, history.Summary.TotalPayments)
	s.Equal(31.00, history.Summary.TotalRevenue)
}

// Test pagination follows the session cursor to exhaustion
func (s *PaymentHistoryServiceTestSuite) TestGetPaymentHistory_FollowsPaginationCursor() {
	gomock.InOrder(
		s.mockLedger.EXPECT().
			ListCheckoutSessions(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params ledger.CheckoutSessionListParams) (*ledger.CheckoutSessionList, error) {
				s.Empty(params.StartingAfter)
				return &ledger.CheckoutSessionList{
					Object:  "list",
					Data:    []ledger.CheckoutSession{{ID: "cs_1", Created: epochAt("2024-07-04T19:00:00Z"), AmountTotal: 1000}},
					HasMore: true,
				}, nil
			}),
		s.mockLedger.EXPECT().
			ListCheckoutSessions(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params ledger.CheckoutSessionListParams) (*ledger.CheckoutSessionList, error) {
				s.Equal("cs_1", params.StartingAfter)
				return &ledger.CheckoutSessionList{
					Object: "list",
					Data:   []ledger.CheckoutSession{{ID: "cs_2", Created: epochAt("2024-07-05T19:00:00Z"), AmountTotal: 2000}},
				}, nil
			}),
	)

	start, end := s.pacificRange("2024-07-01 00:00:00", "2024-07-31 23:59:59")
	history, err := s.service.GetPaymentHistory(context.Background(), start, end)

	s.Require().NoError(err)
	s.Len(history.Payments, 2)
	s.Equal(30.00, history.Summary.TotalRevenue)
}

// Test that a ledger failure aborts the operation with no partial result
func (s *PaymentHistoryServiceTestSuite) TestGetPaymentHistory_LedgerFailureAborts() {
	s.mockLedger.EXPECT().
		ListCheckoutSessions(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("upstream timeout"))

	start, end := s.pacificRange("2024-07-01 00:00:00", "2024-07-31 23:59:59")
	history, err := s.service.GetPaymentHistory(context.Background(), start, end)

	s.Error(err)
	s.Nil(history)
}

// Test inverted bounds are rejected before any ledger call
func (s *PaymentHistoryServiceTestSuite) TestGetPaymentHistory_InvalidRange() {
	start, end := s.pacificRange("2024-07-31 00:00:00", "2024-07-01 00:00:00")
	history, err := s.service.GetPaymentHistory(context.Background(), start, end)

	s.ErrorIs(err, ErrInvalidHistoryRange)
	s.Nil(history)
}
