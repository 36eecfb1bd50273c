package models

// ClockReading is the current date and time rendered in the configured
// report timezone
type ClockReading struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	Weekday string `json:"weekday"`
}
