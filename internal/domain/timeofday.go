package domain

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time (hour, minute) without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses strict 24-hour "HH:MM" (two digits each,
// hours 00-23, minutes 00-59). "7:00" and "25:61" are rejected.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return TimeOfDay{}, fmt.Errorf("invalid time format: %s", s)
	}
	for _, i := range [4]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return TimeOfDay{}, fmt.Errorf("invalid time format: %s", s)
		}
	}
	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	if hour > 23 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid time: %s", s)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// At anchors the time of day on d's calendar date, in d's location.
func (t TimeOfDay) At(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour, t.Minute, 0, 0, d.Location())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
