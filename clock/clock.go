// Package clock reformats 24-hour "HH:MM" strings for display.
package clock

import (
	"strconv"
	"strings"
)

// Suffixes appended by To12Hour.
const (
	AM = "AM"
	PM = "PM"
)

// Split breaks a "HH:MM" string into its hour and minute fields.
// ok is false unless s is exactly five bytes with ':' at index 2.
func Split(s string) (hour, minute string, ok bool) {
	if len(s) != 5 || s[2] != ':' {
		return "", "", false
	}
	return s[:2], s[3:], true
}

// To12Hour converts "HH:MM" to "H:MM AM" or "H:MM PM". Input that is not
// shaped like "HH:MM", or whose hour is not an integer, is returned as is.
// The minute field is copied verbatim and the hour is not range checked,
// so "25:00" becomes "13:00 PM".
func To12Hour(s string) string {
	hh, mm, ok := Split(s)
	if !ok {
		return s
	}
	h, ok := parseHour(hh)
	if !ok {
		return s
	}

	display, suffix := twelveHour(h)

	var b strings.Builder
	b.Grow(len(s) + 3)
	b.WriteString(strconv.Itoa(display))
	b.WriteByte(':')
	b.WriteString(mm)
	b.WriteByte(' ')
	b.WriteString(suffix)
	return b.String()
}

func parseHour(hh string) (int, bool) {
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, false
	}
	return h, true
}

func twelveHour(h int) (int, string) {
	switch {
	case h == 0:
		return 12, AM
	case h >= 1 && h <= 11:
		return h, AM
	case h == 12:
		return 12, PM
	default:
		return h - 12, PM
	}
}
