package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finance-agent-tools/internal/ledger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// HealthCheckHandlerTestSuite defines the test suite for the health endpoint
type HealthCheckHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	breaker *ledger.CircuitBreaker
	handler *HealthCheckHandler
}

// SetupTest runs before each test
func (s *HealthCheckHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.breaker = ledger.NewCircuitBreaker(ledger.CircuitBreakerConfig{
		MaxFailures:     2,
		ResetTimeout:    time.Minute,
		HalfOpenMaxSucc: 1,
	})
	s.handler = NewHealthCheckHandler(s.breaker)
}

// TestHealthCheckHandlerSuite runs the test suite
func TestHealthCheckHandlerSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckHandlerTestSuite))
}

func (s *HealthCheckHandlerTestSuite) check() *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Require().NoError(s.handler.HealthCheck(c))
	return rec
}

// Test healthy response while the breaker is closed
func (s *HealthCheckHandlerTestSuite) TestHealthCheck_Healthy() {
	rec := s.check()

	s.Equal(http.StatusOK, rec.Code)

	var body map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("healthy", body["status"])
	s.Equal("closed", body["ledger"])
	s.NotEmpty(body["time"])
}

// Test the endpoint degrades to 503 once the ledger breaker opens
func (s *HealthCheckHandlerTestSuite) TestHealthCheck_BreakerOpen() {
	s.breaker.RecordFailure()
	s.breaker.RecordFailure()
	s.Require().Equal(ledger.StateOpen, s.breaker.State())

	rec := s.check()

	s.Equal(http.StatusServiceUnavailable, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("SYSTEM_003", response.Error.Code)
}

// Test a nil breaker reports healthy rather than panicking
func (s *HealthCheckHandlerTestSuite) TestHealthCheck_NilBreaker() {
	s.handler = NewHealthCheckHandler(nil)

	rec := s.check()
	s.Equal(http.StatusOK, rec.Code)
}
