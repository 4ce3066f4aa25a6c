package prayer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want MinuteOfDay
	}{
		{"00:00", 0},
		{"05:15", 315},
		{"13:00", 780},
		{"19:30", 1170},
		{"23:59", 1439},
		{"05:15 (+03)", 315}, // zone suffix from the timing service
		{" 12:00 ", 720},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseClock_Invalid(t *testing.T) {
	for _, in := range []string{"", "5", "24:00", "12:60", "-1:00", "ab:cd", "12:00:00"} {
		_, err := ParseClock(in)
		assert.Error(t, err, in)
	}
}

func TestClock12_RoundTrip(t *testing.T) {
	tests := []struct {
		wire string
		want string
	}{
		{"05:15", "5:15 AM"},
		{"13:00", "1:00 PM"},
		{"00:00", "12:00 AM"},
		{"12:00", "12:00 PM"},
		{"23:59", "11:59 PM"},
		{"11:05", "11:05 AM"},
	}

	for _, tt := range tests {
		m, err := ParseClock(tt.wire)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, m.Clock12(), tt.wire)
	}
}

func TestClock24(t *testing.T) {
	assert.Equal(t, "05:15", MinuteOfDay(315).Clock24())
	assert.Equal(t, "00:00", MinuteOfDay(0).Clock24())
	assert.Equal(t, "23:59", MinuteOfDay(1439).Clock24())
}

func TestFormatRemaining(t *testing.T) {
	assert.Equal(t, "0m", FormatRemaining(-5))
	assert.Equal(t, "0m", FormatRemaining(0))
	assert.Equal(t, "45m", FormatRemaining(45))
	assert.Equal(t, "1h 0m", FormatRemaining(60))
	assert.Equal(t, "9h 15m", FormatRemaining(555))
}
