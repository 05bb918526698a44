package plan

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ParseClock converts a zero-padded 24-hour "HH:MM" string to minutes
// since midnight.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes since midnight as zero-padded "HH:MM".
func FormatClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ShiftClock moves an "HH:MM" time by offset minutes on the 1440-minute
// clock, wrapping at midnight in both directions. "23:30" + 60 is "00:30";
// "00:20" - 60 is "23:20".
func ShiftClock(s string, offset int) (string, error) {
	m, err := ParseClock(s)
	if err != nil {
		return "", err
	}
	m = ((m+offset)%minutesPerDay + minutesPerDay) % minutesPerDay
	return FormatClock(m), nil
}
