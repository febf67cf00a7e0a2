package boundedloop

import (
	"errors"
	"testing"
)

func TestRunSucceedsImmediately(t *testing.T) {
	calls := 0
	err := Run(func(step int) (bool, error) {
		calls++
		return true, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestRunStopsAfterNSteps(t *testing.T) {
	calls := 0
	err := Run(func(step int) (bool, error) {
		calls++
		return calls == 3, nil
	}, WithMaxSteps(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestRunExceedsLimit(t *testing.T) {
	calls := 0
	err := Run(func(step int) (bool, error) {
		calls++
		return false, nil
	}, WithMaxSteps(5))
	if !errors.Is(err, ErrExceeded) {
		t.Fatalf("expected ErrExceeded, got: %v", err)
	}
	if calls != 5 {
		t.Fatalf("expected 5 calls, got %d", calls)
	}
}

func TestRunPropagatesError(t *testing.T) {
	sentinel := errors.New("boom")
	err := Run(func(step int) (bool, error) {
		if step == 2 {
			return false, sentinel
		}
		return false, nil
	}, WithMaxSteps(10))
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}
}
