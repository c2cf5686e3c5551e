package quote

import "time"

// SetClock replaces the time source.
func (s *Service) SetClock(now func() time.Time) { s.now = now }

// SetIDGenerator replaces the quote id generator.
func (s *Service) SetIDGenerator(fn func() string) { s.newID = fn }
