package types

import "fmt"

// PartialDurationPolicy fixes how a scalar planned duration is reported
// when the option is interrupted before its natural end.
type PartialDurationPolicy string

const (
	// Proportional scales the plan by the executed fraction, floored.
	Proportional PartialDurationPolicy = "proportional"
	// Full reports the planned duration regardless of truncation.
	Full PartialDurationPolicy = "full"
	// Zero reports no duration for interrupted execution.
	Zero PartialDurationPolicy = "zero"
)

func (p PartialDurationPolicy) valid() bool {
	return p == Proportional || p == Full || p == Zero
}

// DurationFn plans the duration of an option about to run in the given
// state. It must not touch the simulator.
type DurationFn func(option Option, obs interface{}, info Info) (DurationSpec, error)

// DurationSpec is the planned duration of one macro step: either one
// total tick count or one tick count per primitive action. Produced
// fresh per macro step, never mutated.
type DurationSpec struct {
	total   int
	perStep []int
	listed  bool
}

// TotalTicks plans one total duration for the whole option.
func TotalTicks(ticks int) DurationSpec {
	return DurationSpec{total: ticks}
}

// PerStepTicks plans one duration per primitive action.
func PerStepTicks(ticks []int) DurationSpec {
	copied := make([]int, len(ticks))
	copy(copied, ticks)
	return DurationSpec{perStep: copied, listed: true}
}

// PerStep reports whether the plan carries per-action durations.
func (d DurationSpec) PerStep() bool { return d.listed }

// Planned is the total planned duration in ticks.
func (d DurationSpec) Planned() int {
	if !d.listed {
		return d.total
	}
	total := 0
	for _, t := range d.perStep {
		total += t
	}
	return total
}

// validate checks the plan shape against the length of the option it
// was produced for (0 for unbounded options).
func (d DurationSpec) validate(optionLen int) error {
	if d.listed {
		if optionLen == 0 {
			return &ConfigurationError{Reason: "per-step duration plan for an option without a fixed action sequence"}
		}
		if len(d.perStep) != optionLen {
			return &ConfigurationError{Reason: fmt.Sprintf(
				"duration list length %d does not match option length %d", len(d.perStep), optionLen)}
		}
		for i, t := range d.perStep {
			if t < 0 {
				return &ConfigurationError{Reason: fmt.Sprintf("negative duration %d at step %d", t, i)}
			}
		}
		return nil
	}
	if d.total < 0 {
		return &ConfigurationError{Reason: fmt.Sprintf("negative planned duration %d", d.total)}
	}
	return nil
}

// Executed computes the duration actually spent after kExec of
// optionLen primitives ran. Per-step plans sum the executed prefix and
// need no policy. Scalar plans apply the policy only when interrupted;
// with an unknown option length the proportional fraction is undefined
// and the full plan is reported.
func (d DurationSpec) Executed(kExec, optionLen int, interrupted bool, policy PartialDurationPolicy) int {
	if d.listed {
		total := 0
		for _, t := range d.perStep[:kExec] {
			total += t
		}
		return total
	}
	if !interrupted {
		return d.total
	}
	switch policy {
	case Full:
		return d.total
	case Zero:
		return 0
	default:
		if optionLen == 0 {
			return d.total
		}
		return d.total * kExec / optionLen
	}
}
