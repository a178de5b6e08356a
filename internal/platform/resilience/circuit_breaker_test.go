package resilience

import (
	"errors"
	"testing"
	"time"
)

var errUpstream = errors.New("upstream down")

func newTestBreaker(cfg BreakerConfig, now *time.Time) *Breaker {
	b := NewBreaker(cfg)
	b.now = func() time.Time { return *now }
	return b
}

func TestBreaker_BasicTransitions(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	b := newTestBreaker(BreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: 5 * time.Second, HalfOpenMaxReq: 1}, &now)

	fail := func() error { return errUpstream }
	ok := func() error { return nil }

	if err := b.Execute(fail); !errors.Is(err, errUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if state := b.State(); state != StateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	_ = b.Execute(fail)
	if state := b.State(); state != StateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	called := false
	err := b.Execute(func() error {
		called = true
		return nil
	})
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}
	if called {
		t.Fatalf("guarded call must not run while open")
	}

	now = now.Add(6 * time.Second)
	if state := b.State(); state != StateHalfOpen {
		t.Fatalf("expected half-open after timeout, got %s", state)
	}
	if err := b.Execute(ok); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if state := b.State(); state != StateClosed {
		t.Fatalf("expected closed after successful probe, got %s", state)
	}
}

func TestBreaker_HalfOpenFailureReopens(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	b := newTestBreaker(BreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Second}, &now)

	_ = b.Execute(func() error { return errUpstream })
	now = now.Add(2 * time.Second)

	_ = b.Execute(func() error { return errUpstream })
	if state := b.State(); state != StateOpen {
		t.Fatalf("expected open after failed probe, got %s", state)
	}
}

func TestBreaker_IgnoresErrorsNotClassifiedAsFailure(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	notFound := errors.New("not found")
	b := newTestBreaker(BreakerConfig{
		Enabled:          true,
		FailureThreshold: 1,
		IsFailure:        func(err error) bool { return err != nil && !errors.Is(err, notFound) },
	}, &now)

	for i := 0; i < 3; i++ {
		if err := b.Execute(func() error { return notFound }); !errors.Is(err, notFound) {
			t.Fatalf("expected passthrough error, got %v", err)
		}
	}
	if state := b.State(); state != StateClosed {
		t.Fatalf("expected closed, got %s", state)
	}
}

func TestBreaker_DisabledAlwaysRuns(t *testing.T) {
	b := NewBreaker(BreakerConfig{Enabled: false, FailureThreshold: 1})

	for i := 0; i < 3; i++ {
		_ = b.Execute(func() error { return errUpstream })
	}
	if err := b.Execute(func() error { return nil }); err != nil {
		t.Fatalf("disabled breaker must not reject, got %v", err)
	}
}
