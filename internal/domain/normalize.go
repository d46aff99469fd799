package domain

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultName          = "Francis"
	DefaultFirstFeed     = "07:00"
	DefaultLastFeed      = "19:00"
	DefaultIntervalHours = 3
)

// NormalizeTimeInput returns raw when it is a strict 24-hour HH:MM string,
// otherwise the fallback unchanged. No partial correction is attempted:
// "25:99" falls back whole, it is not clamped.
func NormalizeTimeInput(raw, fallback string) string {
	if _, err := ParseTimeOfDay(raw); err != nil {
		return fallback
	}
	return raw
}

// NormalizeInterval parses raw as a number of hours and returns it when
// finite and strictly positive. Non-numeric strings, zero and negatives all
// fall back to DefaultIntervalHours; malformed input is never an error.
func NormalizeInterval(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return DefaultIntervalHours
	}
	return v
}
