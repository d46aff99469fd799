package domain

import "testing"

func TestNormalizeTimeInput(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"07:15", "07:15"},
		{"00:00", "00:00"},
		{"23:59", "23:59"},
		{"25:61", "07:00"},
		{"12:60", "07:00"},
		{"7:15", "07:00"}, // single-digit hour is not corrected
		{"0715", "07:00"},
		{"", "07:00"},
		{"noon", "07:00"},
	}
	for _, tc := range tests {
		if got := NormalizeTimeInput(tc.raw, "07:00"); got != tc.want {
			t.Errorf("NormalizeTimeInput(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeInterval(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"2.5", 2.5},
		{"3", 3},
		{"0.25", 0.25},
		{"-2", 3},
		{"0", 3},
		{"", 3},
		{"abc", 3},
		{"Inf", 3},
		{"NaN", 3},
	}
	for _, tc := range tests {
		if got := NormalizeInterval(tc.raw); got != tc.want {
			t.Errorf("NormalizeInterval(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("08:45")
	if err != nil {
		t.Fatalf("parse 08:45: %v", err)
	}
	if tod.Hour != 8 || tod.Minute != 45 {
		t.Errorf("want 8:45, got %d:%d", tod.Hour, tod.Minute)
	}
	if s := tod.String(); s != "08:45" {
		t.Errorf("String() = %q, want 08:45", s)
	}

	for _, bad := range []string{"24:00", "12:60", "1:30", "12-30", "+2:30", "ab:cd"} {
		if _, err := ParseTimeOfDay(bad); err == nil {
			t.Errorf("ParseTimeOfDay(%q): want error", bad)
		}
	}
}
