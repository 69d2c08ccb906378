package ratelimit

import (
	"testing"
	"time"
)

func newFakeClockLimiter() (*SlidingWindow, *time.Time) {
	current := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	l := NewSlidingWindow()
	l.now = func() time.Time { return current }
	return l, &current
}

func TestCheckAdmitsUpToLimit(t *testing.T) {
	t.Parallel()

	l, _ := newFakeClockLimiter()

	for i := 0; i < 3; i++ {
		d := l.Check("1.2.3.4", 3, time.Minute)
		if !d.Allowed {
			t.Fatalf("request %d should be admitted", i)
		}
		if d.Remaining != 3-i-1 {
			t.Fatalf("request %d: remaining = %d", i, d.Remaining)
		}
	}

	d := l.Check("1.2.3.4", 3, time.Minute)
	if d.Allowed {
		t.Fatal("fourth request must be rejected")
	}
	if d.RetryAfter <= 0 || d.RetryAfter > time.Minute {
		t.Fatalf("implausible retry-after: %v", d.RetryAfter)
	}
}

func TestCheckWindowSlides(t *testing.T) {
	t.Parallel()

	l, clock := newFakeClockLimiter()

	if d := l.Check("k", 1, time.Minute); !d.Allowed {
		t.Fatal("first request should pass")
	}
	if d := l.Check("k", 1, time.Minute); d.Allowed {
		t.Fatal("second request inside window should fail")
	}

	*clock = clock.Add(61 * time.Second)
	if d := l.Check("k", 1, time.Minute); !d.Allowed {
		t.Fatal("request after window expiry should pass")
	}
}

func TestCheckKeysAreIndependent(t *testing.T) {
	t.Parallel()

	l, _ := newFakeClockLimiter()

	if d := l.Check("a", 1, time.Minute); !d.Allowed {
		t.Fatal("key a should pass")
	}
	if d := l.Check("b", 1, time.Minute); !d.Allowed {
		t.Fatal("key b must not be affected by key a")
	}
}

func TestSweepDropsIdleKeys(t *testing.T) {
	t.Parallel()

	l, clock := newFakeClockLimiter()

	l.Check("idle", 5, time.Minute)
	*clock = clock.Add(2 * time.Minute)
	l.Check("active", 5, time.Minute)

	l.sweep(time.Minute)

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.hits["idle"]; ok {
		t.Fatal("idle key should be swept")
	}
	if _, ok := l.hits["active"]; !ok {
		t.Fatal("active key must survive the sweep")
	}
}
