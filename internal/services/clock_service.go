package services

import (
	"time"

	"finance-agent-tools/internal/models"
)

type clockService struct {
	location *time.Location
	now      func() time.Time
}

// NewClockService creates the clock reading service. now may be nil, in
// which case the system clock is used; tests inject a fixed clock.
func NewClockService(location *time.Location, now func() time.Time) ClockServiceInterface {
	if now == nil {
		now = time.Now
	}
	return &clockService{
		location: location,
		now:      now,
	}
}

func (s *clockService) CurrentDatetime() *models.ClockReading {
	t := s.now().In(s.location)

	return &models.ClockReading{
		Date:    t.Format("2006-01-02"),
		Time:    t.Format("15:04:05"),
		Weekday: t.Weekday().String(),
	}
}
