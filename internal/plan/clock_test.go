package plan

import "testing"

// TestShiftClockForward verifies the +60 minute shift including the
// midnight wrap: 23:30 plus an hour lands on 00:30.
func TestShiftClockForward(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"06:00", "07:00"},
		{"18:30", "19:30"},
		{"23:00", "00:00"},
		{"23:30", "00:30"},
		{"23:59", "00:59"},
	}
	for _, tc := range cases {
		got, err := ShiftClock(tc.in, 60)
		if err != nil {
			t.Fatalf("ShiftClock(%q, 60): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ShiftClock(%q, 60) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// TestShiftClockBackward verifies the -60 minute shift wraps backwards
// across midnight: 00:20 minus an hour lands on 23:20.
func TestShiftClockBackward(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"07:00", "06:00"},
		{"01:00", "00:00"},
		{"00:59", "23:59"},
		{"00:20", "23:20"},
		{"00:00", "23:00"},
	}
	for _, tc := range cases {
		got, err := ShiftClock(tc.in, -60)
		if err != nil {
			t.Fatalf("ShiftClock(%q, -60): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ShiftClock(%q, -60) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// TestShiftClockInvalid verifies malformed inputs are rejected rather than
// silently producing a time.
func TestShiftClockInvalid(t *testing.T) {
	for _, in := range []string{"", "7am", "24:00", "12:60", "12", "ab:cd"} {
		if _, err := ShiftClock(in, 60); err == nil {
			t.Errorf("ShiftClock(%q, 60): expected error", in)
		}
	}
}

// TestFormatClockZeroPads verifies single-digit hours and minutes come out
// zero-padded so string comparison stays a valid time ordering.
func TestFormatClockZeroPads(t *testing.T) {
	if got := FormatClock(65); got != "01:05" {
		t.Errorf("FormatClock(65) = %q, want %q", got, "01:05")
	}
	if got := FormatClock(0); got != "00:00" {
		t.Errorf("FormatClock(0) = %q, want %q", got, "00:00")
	}
}

// TestDayStepping verifies the week cycle wraps in both directions:
// next from Sunday is Monday, previous from Monday is Sunday.
func TestDayStepping(t *testing.T) {
	if got := Sunday.Next(); got != Monday {
		t.Errorf("Sunday.Next() = %q, want Monday", got)
	}
	if got := Monday.Previous(); got != Sunday {
		t.Errorf("Monday.Previous() = %q, want Sunday", got)
	}
	if got := Wednesday.Next(); got != Thursday {
		t.Errorf("Wednesday.Next() = %q, want Thursday", got)
	}
	if got := Thursday.Previous(); got != Wednesday {
		t.Errorf("Thursday.Previous() = %q, want Wednesday", got)
	}
}

// TestParseDay verifies exact label matching and rejection of anything else.
func TestParseDay(t *testing.T) {
	if d, ok := ParseDay("Friday"); !ok || d != Friday {
		t.Errorf("ParseDay(Friday) = %q, %v", d, ok)
	}
	for _, s := range []string{"friday", "Fri", "", "Someday"} {
		if _, ok := ParseDay(s); ok {
			t.Errorf("ParseDay(%q): expected failure", s)
		}
	}
}
