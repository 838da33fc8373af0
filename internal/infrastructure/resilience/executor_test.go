package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastConfig() Config {
	return Config{
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     2 * time.Millisecond,
		Multiplier:     2.0,
	}
}

func retryAll(error) Classification {
	return Classification{Retryable: true, RecordFailure: true}
}

func TestExecuteRetriesUntilSuccess(t *testing.T) {
	e := NewExecutor("test.op", fastConfig(), retryAll)

	calls := 0
	err := e.Execute(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
}

func TestExecuteStopsAtMaxAttempts(t *testing.T) {
	e := NewExecutor("test.op", fastConfig(), retryAll)

	calls := 0
	wantErr := errors.New("still failing")
	err := e.Execute(context.Background(), func(context.Context) error {
		calls++
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Execute() error = %v, want %v", err, wantErr)
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want max attempts", calls)
	}
}

func TestExecuteDoesNotRetryNonRetryable(t *testing.T) {
	e := NewExecutor("test.op", fastConfig(), func(error) Classification {
		return Classification{Retryable: false, RecordFailure: true}
	})

	calls := 0
	err := e.Execute(context.Background(), func(context.Context) error {
		calls++
		return errors.New("fatal")
	})
	if err == nil {
		t.Fatal("Execute() error = nil, want error")
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestExecuteStopsOnContextCancel(t *testing.T) {
	e := NewExecutor("test.op", fastConfig(), retryAll)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := e.Execute(ctx, func(context.Context) error {
		calls++
		cancel()
		return errors.New("transient")
	})
	if err == nil {
		t.Fatal("Execute() error = nil, want error")
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1 after cancellation", calls)
	}
}

func TestBreakerOpensAfterFailureRun(t *testing.T) {
	cfg := fastConfig()
	cfg.MaxAttempts = 1
	cfg.BreakerEnabled = true
	cfg.BreakerMinRequests = 3
	cfg.BreakerFailureRatio = 0.5
	cfg.BreakerOpenTimeout = time.Minute
	e := NewExecutor("test.op", cfg, retryAll)

	for i := 0; i < 3; i++ {
		_ = e.Execute(context.Background(), func(context.Context) error {
			return errors.New("down")
		})
	}

	err := e.Execute(context.Background(), func(context.Context) error { return nil })
	if !IsCircuitOpen(err) {
		t.Fatalf("Execute() error = %v, want open circuit", err)
	}
}
