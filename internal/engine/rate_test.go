package engine

import (
	"testing"
	"time"
)

func TestNetRate(t *testing.T) {
	now := time.Now()
	prev := OctetSample{InOctets: 1000, OutOctets: 500, Timestamp: now.Add(-10 * time.Second)}
	curr := OctetSample{InOctets: 2000, OutOctets: 1500, Timestamp: now}

	in, out, err := NetRate(prev, curr)
	if err != nil {
		t.Fatalf("NetRate() error: %v", err)
	}
	if in < 790 || in > 810 {
		t.Errorf("expected in rate ~800, got %f", in)
	}
	if out < 790 || out > 810 {
		t.Errorf("expected out rate ~800, got %f", out)
	}
}

func TestNetRateCounterWrap(t *testing.T) {
	now := time.Now()
	prev := OctetSample{InOctets: 100, OutOctets: 50, Timestamp: now.Add(-10 * time.Second)}
	curr := OctetSample{InOctets: 50, OutOctets: 50, Timestamp: now}

	if _, _, err := NetRate(prev, curr); err != ErrCounterWrap {
		t.Errorf("expected ErrCounterWrap, got %v", err)
	}
}

func TestNetRateZeroElapsed(t *testing.T) {
	now := time.Now()
	s := OctetSample{InOctets: 100, OutOctets: 50, Timestamp: now}
	if _, _, err := NetRate(s, s); err == nil {
		t.Error("expected an error for zero elapsed time")
	}
}

func TestUsedPct(t *testing.T) {
	if got := UsedPct(50, 100); got != 50 {
		t.Errorf("UsedPct(50, 100) = %f, want 50", got)
	}
	if got := UsedPct(10, 0); got != 0 {
		t.Errorf("UsedPct with zero total = %f, want 0", got)
	}
	if got := UsedPct(200, 100); got != 100 {
		t.Errorf("UsedPct must clamp to 100, got %f", got)
	}
}
