package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// ClockServiceTestSuite defines the test suite for ClockServiceInterface
type ClockServiceTestSuite struct {
	suite.Suite
	location *time.Location
}

// SetupTest runs before each test
func (s *ClockServiceTestSuite) SetupTest() {
	location, err := time.LoadLocation("America/Los_Angeles")
	s.Require().NoError(err)
	s.location = location
}

// TestClockServiceSuite runs the test suite
func TestClockServiceSuite(t *testing.T) {
	suite.Run(t, new(ClockServiceTestSuite))
}

func (s *ClockServiceTestSuite) fixedClock(rfc3339 string) func() time.Time {
	t, err := time.Parse(time.RFC3339, rfc3339)
	s.Require().NoError(err)
	return func() time.Time { return t }
}

// Test a UTC instant during Pacific daylight saving renders with the
// -07:00 offset applied
func (s *ClockServiceTestSuite) TestCurrentDatetime_DaylightSaving() {
	service := NewClockService(s.location, s.fixedClock("2024-07-04T19:00:00Z"))

	reading := service.CurrentDatetime()

	s.Equal("2024-07-04", reading.Date)
	s.Equal("12:00:00", reading.Time)
	s.Equal("Thursday", reading.Weekday)
}

// Test a UTC instant during Pacific standard time renders with the
// -08:00 offset, crossing the date boundary
func (s *ClockServiceTestSuite) TestCurrentDatetime_StandardTime() {
	service := NewClockService(s.location, s.fixedClock("2024-01-15T06:30:45Z"))

	reading := service.CurrentDatetime()

	s.Equal("2024-01-14", reading.Date)
	s.Equal("22:30:45", reading.Time)
	s.Equal("Sunday", reading.Weekday)
}

// Test the nil clock falls back to the system clock
func (s *ClockServiceTestSuite) TestCurrentDatetime_SystemClock() {
	service := NewClockService(s.location, nil)

	reading := service.CurrentDatetime()

	s.NotEmpty(reading.Date)
	s.NotEmpty(reading.Time)
	s.NotEmpty(reading.Weekday)
}
