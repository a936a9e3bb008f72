package types

import (
	"errors"
	"testing"
)

func TestExecutedScalar(t *testing.T) {
	cases := []struct {
		name        string
		planned     int
		kExec       int
		optionLen   int
		interrupted bool
		policy      PartialDurationPolicy
		expected    int
	}{
		{"uninterrupted", 9, 3, 3, false, Proportional, 9},
		{"proportional floors", 9, 2, 3, true, Proportional, 6},
		{"proportional one of three", 10, 1, 3, true, Proportional, 3},
		{"proportional zero executed", 9, 0, 3, true, Proportional, 0},
		{"full keeps plan", 9, 2, 3, true, Full, 9},
		{"zero drops plan", 9, 2, 3, true, Zero, 0},
		{"unknown length falls back to plan", 9, 2, 0, true, Proportional, 9},
	}
	for _, c := range cases {
		spec := TotalTicks(c.planned)
		got := spec.Executed(c.kExec, c.optionLen, c.interrupted, c.policy)
		if got != c.expected {
			t.Errorf("%s: expected %d ticks, got %d", c.name, c.expected, got)
		}
	}
}

func TestExecutedPerStep(t *testing.T) {
	spec := PerStepTicks([]int{2, 3, 4})
	if planned := spec.Planned(); planned != 9 {
		t.Errorf("expected planned 9, got %d", planned)
	}
	// per-step plans ignore the policy, the executed prefix decides
	for _, policy := range []PartialDurationPolicy{Proportional, Full, Zero} {
		if got := spec.Executed(2, 3, true, policy); got != 5 {
			t.Errorf("policy %s: expected executed 5, got %d", policy, got)
		}
	}
	if got := spec.Executed(3, 3, false, Proportional); got != 9 {
		t.Errorf("expected full prefix 9, got %d", got)
	}
	if got := spec.Executed(0, 3, true, Proportional); got != 0 {
		t.Errorf("expected empty prefix 0, got %d", got)
	}
}

func TestDurationSpecValidate(t *testing.T) {
	if err := TotalTicks(5).validate(3); err != nil {
		t.Errorf("unexpected error for a valid scalar plan: %v", err)
	}
	if err := TotalTicks(-1).validate(3); err == nil {
		t.Errorf("expected error for a negative scalar plan")
	}
	if err := PerStepTicks([]int{1, 2, 3}).validate(3); err != nil {
		t.Errorf("unexpected error for a matching per-step plan: %v", err)
	}

	err := PerStepTicks([]int{1, 2}).validate(3)
	var confErr *ConfigurationError
	if !errors.As(err, &confErr) {
		t.Errorf("expected ConfigurationError for a length mismatch, got %v", err)
	}
	if err := PerStepTicks([]int{1, -2, 3}).validate(3); err == nil {
		t.Errorf("expected error for a negative per-step duration")
	}
	if err := PerStepTicks([]int{1, 2}).validate(0); err == nil {
		t.Errorf("expected error for a per-step plan on an unbounded option")
	}
}
