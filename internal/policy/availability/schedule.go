package availability

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNoSchedule is returned by ParseSchedule for empty or null input.
var ErrNoSchedule = errors.New("schedule is empty")

const timezoneKey = "timezone"

// DayWindow is one weekday's open flag with its open and close times.
// Opens and Closes are meaningful only when Open is true.
type DayWindow struct {
	Open   bool
	Opens  Clock
	Closes Clock
}

// Overnight reports whether the window crosses midnight.
func (w DayWindow) Overnight() bool {
	return w.Closes < w.Opens
}

// Contains reports whether minute c falls inside the window.
// Same-day windows are half-open [Opens, Closes); an overnight window covers
// c >= Opens or c < Closes.
func (w DayWindow) Contains(c Clock) bool {
	if !w.Open {
		return false
	}
	if w.Overnight() {
		return c >= w.Opens || c < w.Closes
	}
	return c >= w.Opens && c < w.Closes
}

// Schedule is a weekly operating-hours schedule. A nil entry means the day
// has no configuration and is treated as closed.
type Schedule struct {
	Days     [daysInWeek]*DayWindow
	Location *time.Location
}

// Window returns the configured window for d.
func (s *Schedule) Window(d Weekday) (DayWindow, bool) {
	if s == nil || !d.Valid() || s.Days[d] == nil {
		return DayWindow{}, false
	}
	return *s.Days[d], true
}

// Set configures the window for d.
func (s *Schedule) Set(d Weekday, w DayWindow) {
	if !d.Valid() {
		return
	}
	s.Days[d] = &w
}

// AnyOpen reports whether at least one day is open.
func (s *Schedule) AnyOpen() bool {
	for d := Sunday; d <= Saturday; d++ {
		if w, ok := s.Window(d); ok && w.Open {
			return true
		}
	}
	return false
}

type dayWindowJSON struct {
	IsOpen bool   `json:"isOpen"`
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
}

// ParseSchedule decodes the serialized schedule form:
//
//	{"Mon": {"isOpen": true, "open": "09:00", "close": "22:00"}, "timezone": "Europe/Helsinki"}
//
// Any subset of the seven day keys may be present. Unknown keys, malformed
// times and unknown time zones are errors.
func ParseSchedule(data []byte) (*Schedule, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, ErrNoSchedule
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("decode schedule: %w", err)
	}

	s := &Schedule{}
	for key, value := range raw {
		if strings.EqualFold(key, timezoneKey) {
			loc, err := parseLocation(value)
			if err != nil {
				return nil, err
			}
			s.Location = loc
			continue
		}

		day, err := ParseWeekday(key)
		if err != nil {
			return nil, err
		}
		if s.Days[day] != nil {
			return nil, fmt.Errorf("duplicate weekday %s", day)
		}
		w, err := parseWindow(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", day, err)
		}
		s.Days[day] = w
	}
	return s, nil
}

func parseLocation(value json.RawMessage) (*time.Location, error) {
	var name string
	if err := json.Unmarshal(value, &name); err != nil {
		return nil, fmt.Errorf("decode timezone: %w", err)
	}
	if strings.TrimSpace(name) == "" {
		return nil, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}

func parseWindow(value json.RawMessage) (*DayWindow, error) {
	if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
		return nil, nil
	}
	var dto dayWindowJSON
	if err := json.Unmarshal(value, &dto); err != nil {
		return nil, fmt.Errorf("decode day window: %w", err)
	}
	if !dto.IsOpen {
		return &DayWindow{}, nil
	}
	opens, err := ParseClock(dto.Open)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	closes, err := ParseClock(dto.Close)
	if err != nil {
		return nil, fmt.Errorf("close: %w", err)
	}
	return &DayWindow{Open: true, Opens: opens, Closes: closes}, nil
}

// MarshalJSON encodes s in the form accepted by ParseSchedule.
func (s *Schedule) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	out := make(map[string]any, daysInWeek+1)
	for d := Sunday; d <= Saturday; d++ {
		w, ok := s.Window(d)
		if !ok {
			continue
		}
		dto := dayWindowJSON{IsOpen: w.Open}
		if w.Open {
			dto.Open = w.Opens.String()
			dto.Close = w.Closes.String()
		}
		out[d.String()] = dto
	}
	if s.Location != nil {
		out[timezoneKey] = s.Location.String()
	}
	return json.Marshal(out)
}
