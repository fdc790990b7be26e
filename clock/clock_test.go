package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTo12Hour(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"00:15", "12:15 AM"},
		{"00:00", "12:00 AM"},
		{"01:00", "1:00 AM"},
		{"09:05", "9:05 AM"},
		{"11:59", "11:59 AM"},
		{"12:00", "12:00 PM"},
		{"12:30", "12:30 PM"},
		{"13:30", "1:30 PM"},
		{"23:59", "11:59 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, To12Hour(tt.in))
		})
	}
}

func TestTo12HourPassthrough(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"wrong length short", "9:5"},
		{"wrong length long", "009:05"},
		{"empty", ""},
		{"colon misplaced", "0:905"},
		{"non-numeric hour", "AB:CD"},
		{"half-numeric hour", "1a:00"},
		{"space in hour", " 9:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.in, To12Hour(tt.in))
		})
	}
}

func TestTo12HourKeepsMinutesVerbatim(t *testing.T) {
	assert.Equal(t, "3:xy PM", To12Hour("15:xy"))
	assert.Equal(t, "12:99 AM", To12Hour("00:99"))
}

func TestTo12HourOutOfRangeHour(t *testing.T) {
	assert.Equal(t, "13:00 PM", To12Hour("25:00"))
	assert.Equal(t, "87:00 PM", To12Hour("99:00"))
	assert.Equal(t, "-13:00 PM", To12Hour("-1:00"))
}

func TestSplit(t *testing.T) {
	hh, mm, ok := Split("07:45")
	assert.True(t, ok)
	assert.Equal(t, "07", hh)
	assert.Equal(t, "45", mm)

	_, _, ok = Split("07-45")
	assert.False(t, ok)
}
