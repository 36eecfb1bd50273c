package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinorToMajor(t *testing.T) {
	tests := []struct {
		name     string
		minor    int64
		expected float64
	}{
		{"zero", 0, 0},
		{"whole dollars", 4500, 45.00},
		{"with cents", 1033, 10.33},
		{"single cent", 1, 0.01},
		{"negative", -250, -2.50},
		{"large sum", 123456789, 1234567.89},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, minorToMajor(tt.minor))
		})
	}
}

func TestMajorToMinor(t *testing.T) {
	tests := []struct {
		name     string
		major    float64
		expected int64
	}{
		{"zero", 0, 0},
		{"whole dollars", 45.00, 4500},
		{"with cents", 10.33, 1033},
		{"rounds half up", 10.555, 1056},
		{"rounds down", 10.554, 1055},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, majorToMinor(tt.major))
		})
	}
}

func TestAverageMajor(t *testing.T) {
	assert.Equal(t, 0.0, averageMajor(4500, 0), "zero count yields zero average")
	assert.Equal(t, 15.00, averageMajor(4500, 3))
	// 1000/3 minor units = 3.3333... major; rounds to cents once
	assert.Equal(t, 3.33, averageMajor(1000, 3))
}
