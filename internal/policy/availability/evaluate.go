package availability

import (
	"fmt"
	"time"

	"order-policy-service/internal/logx"
)

// Result is the outcome of an availability check. NextOpenHint is set only
// when the merchant is closed and reopens within the next seven days.
type Result struct {
	Open         bool   `json:"isOpen"`
	NextOpenHint string `json:"nextOpenHint,omitempty"`
}

// Evaluate reports whether s is open at now. It is pure: the result depends
// only on its arguments. A nil schedule is closed with no hint.
func Evaluate(s *Schedule, now time.Time) Result {
	if s == nil {
		return Result{}
	}
	if s.Location != nil {
		now = now.In(s.Location)
	}
	today := Weekday(now.Weekday())
	cur := ClockOf(now)

	w, ok := s.Window(today)
	if ok && w.Contains(cur) {
		return Result{Open: true}
	}
	// the tail of yesterday's overnight window
	if prev, ok := s.Window(today.Add(-1)); ok && prev.Open && prev.Overnight() && cur < prev.Closes {
		return Result{Open: true}
	}
	if ok && w.Open && cur < w.Opens {
		return Result{NextOpenHint: "Opens today " + w.Opens.String()}
	}
	return Result{NextOpenHint: nextOpenDay(s, today)}
}

// nextOpenDay scans the seven days following today, today's weekday next week
// included, and formats the first open one as "<Day> <HH:MM>".
func nextOpenDay(s *Schedule, today Weekday) string {
	for i := 1; i <= daysInWeek; i++ {
		d := today.Add(i)
		if w, ok := s.Window(d); ok && w.Open {
			return fmt.Sprintf("%s %s", d, w.Opens)
		}
	}
	return ""
}

// Evaluator evaluates schedules that may be absent or arrive in serialized
// form, degrading to a default flag instead of failing.
type Evaluator struct {
	defaultOpen bool
	logger      logx.Logger
}

// NewEvaluator creates an Evaluator that answers defaultOpen whenever a
// schedule is missing or cannot be parsed.
func NewEvaluator(defaultOpen bool, logger logx.Logger) *Evaluator {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Evaluator{defaultOpen: defaultOpen, logger: logger}
}

// DefaultOpen returns the fallback flag.
func (e *Evaluator) DefaultOpen() bool { return e.defaultOpen }

// EvaluateRaw parses raw and evaluates it at now.
func (e *Evaluator) EvaluateRaw(raw string, now time.Time) Result {
	s, err := ParseSchedule([]byte(raw))
	if err != nil {
		e.logger.Warn("schedule unusable, using default availability",
			logx.Bool("default_open", e.defaultOpen),
			logx.Err(err),
		)
		return e.fallback()
	}
	return Evaluate(s, now)
}

// EvaluateSchedule evaluates s at now; a nil schedule yields the default.
func (e *Evaluator) EvaluateSchedule(s *Schedule, now time.Time) Result {
	if s == nil {
		e.logger.Warn("schedule missing, using default availability",
			logx.Bool("default_open", e.defaultOpen),
		)
		return e.fallback()
	}
	return Evaluate(s, now)
}

func (e *Evaluator) fallback() Result {
	return Result{Open: e.defaultOpen}
}
