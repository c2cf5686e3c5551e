package availability

import (
	"fmt"
	"strings"
)

// Weekday indexes a WeeklySchedule. Values match time.Weekday (Sunday = 0).
type Weekday int

// Days of the week.
const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

const daysInWeek = 7

var weekdayNames = [daysInWeek]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// String returns the three-letter abbreviation used as the schedule key.
func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// Valid reports whether d is one of the seven days.
func (d Weekday) Valid() bool {
	return d >= Sunday && d <= Saturday
}

// Add returns the day n days after d; n may be negative.
func (d Weekday) Add(n int) Weekday {
	return Weekday(((int(d)+n)%daysInWeek + daysInWeek) % daysInWeek)
}

// ParseWeekday parses a case-insensitive three-letter abbreviation.
func ParseWeekday(s string) (Weekday, error) {
	s = strings.TrimSpace(s)
	for i, name := range weekdayNames {
		if strings.EqualFold(s, name) {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}
