package httpx

import (
	"testing"
	"time"
)

func TestMemoryRateLimiterFixedWindow(t *testing.T) {
	rl := NewMemoryRateLimiter()
	defer rl.Close()

	for i := 1; i <= 3; i++ {
		decision := rl.Allow("ip:1.2.3.4", 3, time.Minute)
		if !decision.allowed {
			t.Fatalf("request %d unexpectedly denied", i)
		}
		if decision.count != i {
			t.Fatalf("request %d: count = %d", i, decision.count)
		}
	}

	decision := rl.Allow("ip:1.2.3.4", 3, time.Minute)
	if decision.allowed {
		t.Fatal("fourth request should be denied")
	}

	// A different key is unaffected.
	if d := rl.Allow("ip:5.6.7.8", 3, time.Minute); !d.allowed {
		t.Fatal("independent key was denied")
	}
}

func TestMemoryRateLimiterZeroLimitDisables(t *testing.T) {
	rl := NewMemoryRateLimiter()
	defer rl.Close()

	for i := 0; i < 100; i++ {
		if d := rl.Allow("any", 0, time.Minute); !d.allowed {
			t.Fatal("zero limit must disable limiting")
		}
	}
}

func TestMemoryRateLimiterWindowExpiry(t *testing.T) {
	rl := &memoryRateLimiter{entries: make(map[string]rateState), stopCh: make(chan struct{})}
	defer rl.Close()

	if d := rl.Allow("key", 1, 10*time.Millisecond); !d.allowed {
		t.Fatal("first request denied")
	}
	if d := rl.Allow("key", 1, 10*time.Millisecond); d.allowed {
		t.Fatal("second request within window should be denied")
	}
	time.Sleep(15 * time.Millisecond)
	if d := rl.Allow("key", 1, 10*time.Millisecond); !d.allowed {
		t.Fatal("request after window expiry should be allowed")
	}
}

func TestMemoryRateLimiterCloseIsIdempotent(t *testing.T) {
	rl := NewMemoryRateLimiter()
	rl.Close()
	rl.Close()
}

func TestRateMetricKeyStripsIdentifier(t *testing.T) {
	if got := rateMetricKey("user:abc-123"); got != "user" {
		t.Fatalf("got %q, want user", got)
	}
	if got := rateMetricKey("ip:1.2.3.4"); got != "ip" {
		t.Fatalf("got %q, want ip", got)
	}
	if got := rateMetricKey("plain"); got != "plain" {
		t.Fatalf("got %q, want plain", got)
	}
}
