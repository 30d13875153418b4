package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestClassifyStoreError(t *testing.T) {
	transient := []struct {
		name string
		err  error
	}{
		{"connection exception", &pgconn.PgError{Code: "08006"}},
		{"too many connections", &pgconn.PgError{Code: "53300"}},
		{"serialization failure", &pgconn.PgError{Code: "40001"}},
		{"deadlock detected", &pgconn.PgError{Code: "40P01"}},
		{"statement timeout", &pgconn.PgError{Code: "57014"}},
		{"context deadline", context.DeadlineExceeded},
	}
	for _, tc := range transient {
		t.Run(tc.name, func(t *testing.T) {
			var te *TransientStoreError
			if !errors.As(classifyStoreError(tc.err), &te) {
				t.Errorf("%v should classify as transient", tc.err)
			}
		})
	}

	// Logic failures must come back untouched.
	fatal := []error{
		&pgconn.PgError{Code: "23505"},
		&pgconn.PgError{Code: "42703"},
		gorm.ErrRecordNotFound,
		NewValidationError("score out of range"),
		&SchemaError{Table: tableOrgResponses, Logical: colSurvey},
	}
	for _, err := range fatal {
		got := classifyStoreError(err)
		var te *TransientStoreError
		if errors.As(got, &te) {
			t.Errorf("%v wrongly classified as transient", err)
		}
		if !errors.Is(got, err) && got != err {
			t.Errorf("classify(%v) rewrote the error to %v", err, got)
		}
	}

	if classifyStoreError(nil) != nil {
		t.Error("classify(nil) must stay nil")
	}
}

func TestWithRetryRetriesTransientOnly(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), func() error {
		calls++
		if calls < 3 {
			return &TransientStoreError{Err: errors.New("deadlock")}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("want success after retries, got %v", err)
	}
	if calls != 3 {
		t.Errorf("op ran %d times, want 3", calls)
	}
}

func TestWithRetryGivesUpAfterMaxAttempts(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), func() error {
		calls++
		return &TransientStoreError{Err: errors.New("connection refused")}
	})
	var te *TransientStoreError
	if !errors.As(err, &te) {
		t.Fatalf("want TransientStoreError after exhaustion, got %v", err)
	}
	if calls != maxStoreAttempts {
		t.Errorf("op ran %d times, want %d", calls, maxStoreAttempts)
	}
}

func TestWithRetryDoesNotRetryLogicErrors(t *testing.T) {
	calls := 0
	want := NewValidationError("answer text must not be empty")
	err := withRetry(context.Background(), func() error {
		calls++
		return want
	})
	if !errors.Is(err, want) && err != want {
		t.Fatalf("got %v, want the original validation error", err)
	}
	if calls != 1 {
		t.Errorf("validation error retried %d times", calls)
	}
}

func TestWithRetryStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := withRetry(ctx, func() error {
		return &TransientStoreError{Err: errors.New("busy")}
	})
	var te *TransientStoreError
	if !errors.As(err, &te) {
		t.Fatalf("want TransientStoreError wrapping context error, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled in the chain, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("canceled context must short-circuit the backoff wait")
	}
}
