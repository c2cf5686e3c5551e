package ratelimit

import (
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{now: t} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Add(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestKeyedLimiter_BurstThenBlocksThenRefills(t *testing.T) {
	t.Parallel()

	clk := newFakeClock(time.Unix(1_700_000_000, 0))
	l := NewKeyedLimiter(clk, Config{Rate: 1, Burst: 2})

	if !l.Allow("ip1") || !l.Allow("ip1") {
		t.Fatalf("expected full burst to pass")
	}
	if l.Allow("ip1") {
		t.Fatalf("expected block when bucket empty")
	}

	clk.Add(time.Second)
	if !l.Allow("ip1") {
		t.Fatalf("expected allow after refill")
	}
	if l.Allow("ip1") {
		t.Fatalf("expected block (no tokens left)")
	}

	clk.Add(10 * time.Second)
	if !l.Allow("ip1") || !l.Allow("ip1") {
		t.Fatalf("expected two allows after long refill")
	}
	if l.Allow("ip1") {
		t.Fatalf("expected refill capped at burst")
	}
}

func TestKeyedLimiter_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	clk := newFakeClock(time.Unix(1_700_000_000, 0))
	l := NewKeyedLimiter(clk, Config{Rate: 1, Burst: 1})

	if !l.Allow("a") {
		t.Fatalf("expected allow for a")
	}
	if l.Allow("a") {
		t.Fatalf("expected block for a")
	}
	if !l.Allow("b") {
		t.Fatalf("expected allow for b")
	}
}

func TestKeyedLimiter_MaxBuckets(t *testing.T) {
	t.Parallel()

	clk := newFakeClock(time.Unix(1_700_000_000, 0))
	l := NewKeyedLimiter(clk, Config{Rate: 10, Burst: 10, MaxBuckets: 1})

	if !l.Allow("a") {
		t.Fatalf("expected allow for a")
	}
	if l.Allow("b") {
		t.Fatalf("expected new key rejected at capacity")
	}
	if !l.Allow("a") {
		t.Fatalf("expected existing key still served")
	}
}

func TestKeyedLimiter_TTLCleanup(t *testing.T) {
	t.Parallel()

	clk := newFakeClock(time.Unix(1_700_000_000, 0))
	l := NewKeyedLimiter(clk, Config{Rate: 1, Burst: 1, TTL: time.Minute, MaxBuckets: 1})

	if !l.Allow("a") {
		t.Fatalf("expected allow for a")
	}
	clk.Add(2 * time.Minute)
	if !l.Allow("b") {
		t.Fatalf("expected idle key evicted and b admitted")
	}
	if got := l.Len(); got != 1 {
		t.Fatalf("expected 1 tracked key, got %d", got)
	}
}

func TestNewKeyedLimiter_Defaults(t *testing.T) {
	t.Parallel()

	l := NewKeyedLimiter(nil, Config{Rate: -1, Burst: 0, MaxBuckets: -5})
	if l.cfg.Rate != 1 || l.cfg.Burst != 1 || l.cfg.MaxBuckets != 0 {
		t.Fatalf("unexpected defaults: %+v", l.cfg)
	}
	if _, ok := l.clock.(RealClock); !ok {
		t.Fatalf("expected RealClock")
	}
}

func TestNopLimiter(t *testing.T) {
	t.Parallel()

	if !(NopLimiter{}).Allow("x") {
		t.Fatalf("nop limiter must allow")
	}
}
