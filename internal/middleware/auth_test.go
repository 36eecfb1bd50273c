package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-agent-tools/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

const testAgentToken = "agent-runtime-secret"

// AgentTokenTestSuite defines the test suite for the agent token middleware
type AgentTokenTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

// SetupTest runs before each test
func (s *AgentTokenTestSuite) SetupTest() {
	s.echo = echo.New()
}

// TestAgentTokenTestSuite runs the test suite
func TestAgentTokenTestSuite(t *testing.T) {
	suite.Run(t, new(AgentTokenTestSuite))
}

func (s *AgentTokenTestSuite) request(configuredToken, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/tools/currentDatetime", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := RequireAgentToken(configuredToken)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	s.Require().NoError(handler(c))
	return rec
}

// TestRequireAgentToken_ValidToken tests that a matching bearer token passes
func (s *AgentTokenTestSuite) TestRequireAgentToken_ValidToken() {
	rec := s.request(testAgentToken, "Bearer "+testAgentToken)
	s.Equal(http.StatusOK, rec.Code)
}

// TestRequireAgentToken_MissingHeader tests the AUTH_001 response
func (s *AgentTokenTestSuite) TestRequireAgentToken_MissingHeader() {
	rec := s.request(testAgentToken, "")

	s.Equal(http.StatusUnauthorized, rec.Code)

	var errorResponse errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal("AUTH_001", errorResponse.Error.Code)
}

// TestRequireAgentToken_WrongToken tests the AUTH_002 response
func (s *AgentTokenTestSuite) TestRequireAgentToken_WrongToken() {
	rec := s.request(testAgentToken, "Bearer not-the-token")

	s.Equal(http.StatusUnauthorized, rec.Code)

	var errorResponse errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal("AUTH_002", errorResponse.Error.Code)
}

// TestRequireAgentToken_MissingBearerPrefix tests non-bearer schemes are rejected
func (s *AgentTokenTestSuite) TestRequireAgentToken_MissingBearerPrefix() {
	rec := s.request(testAgentToken, "Basic dXNlcjpwYXNz")

	s.Equal(http.StatusUnauthorized, rec.Code)

	var errorResponse errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal("AUTH_002", errorResponse.Error.Code)
}

// TestRequireAgentToken_EmptyConfiguredToken tests the development bypass
func (s *AgentTokenTestSuite) TestRequireAgentToken_EmptyConfiguredToken() {
	rec := s.request("", "")
	s.Equal(http.StatusOK, rec.Code)
}
