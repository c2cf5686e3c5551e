package location

import "time"

func (r *Reporter) SetClock(now func() time.Time) { r.now = now }

func (r *Reporter) SetIDGenerator(f func() string) { r.newID = f }
