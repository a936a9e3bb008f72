package strategies

import (
	"testing"

	"github.com/optrl/smdp/types"
)

func TestConstantOptionDuration(t *testing.T) {
	fn := ConstantOptionDuration(5)
	option := types.MustSeqOption([]interface{}{0, 1}, "walk")
	spec, err := fn(option, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.PerStep() || spec.Planned() != 5 {
		t.Errorf("expected a scalar plan of 5, got %d (per-step %v)", spec.Planned(), spec.PerStep())
	}
}

func TestRandomOptionDurationDeterministic(t *testing.T) {
	fn := RandomOptionDuration(1, 8, 42)
	option := types.MustSeqOption([]interface{}{0, 1, 2}, "walk")

	first, err := fn(option, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := fn(option, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Planned() != second.Planned() {
		t.Errorf("seeded plans differ for the same option: %d vs %d", first.Planned(), second.Planned())
	}
	if first.Planned() < 1 || first.Planned() > 8 {
		t.Errorf("planned duration %d out of [1, 8]", first.Planned())
	}

	if _, err := RandomOptionDuration(5, 2, 42)(option, nil, nil); err == nil {
		t.Errorf("expected an error for an inverted range")
	}
}

func TestConstantActionDuration(t *testing.T) {
	fn := ConstantActionDuration(2)
	option := types.MustSeqOption([]interface{}{0, 1, 2}, "walk")
	spec, err := fn(option, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !spec.PerStep() {
		t.Errorf("expected a per-step plan")
	}
	if spec.Planned() != 6 {
		t.Errorf("expected planned 6, got %d", spec.Planned())
	}
}

func TestRandomActionDurationDeterministic(t *testing.T) {
	fn := RandomActionDuration(1, 4, 42)
	option := types.MustSeqOption([]interface{}{0, 1, 2}, "walk")

	first, err := fn(option, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := fn(option, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Planned() != second.Planned() {
		t.Errorf("seeded plans differ for the same option")
	}
	if first.Planned() < 3 || first.Planned() > 12 {
		t.Errorf("planned duration %d out of [3, 12] for 3 actions", first.Planned())
	}
}

func TestActionDurationMap(t *testing.T) {
	fn := ActionDurationMap(func(action interface{}) int {
		return action.(int) + 1
	})
	option := types.MustSeqOption([]interface{}{0, 2, 4}, "walk")
	spec, err := fn(option, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Planned() != 9 {
		t.Errorf("expected planned 1+3+5=9, got %d", spec.Planned())
	}
	if got := spec.Executed(2, 3, true, types.Proportional); got != 4 {
		t.Errorf("expected executed prefix 4, got %d", got)
	}
}
