package strategies

import (
	"fmt"
	"hash/fnv"
	"time"

	"golang.org/x/exp/rand"

	"github.com/optrl/smdp/types"
)

// ConstantOptionDuration plans the same total duration for every option.
func ConstantOptionDuration(ticks int) types.DurationFn {
	return func(types.Option, interface{}, types.Info) (types.DurationSpec, error) {
		return types.TotalTicks(ticks), nil
	}
}

// RandomOptionDuration samples one total duration in [min, max]. With a
// non-negative seed the sample is deterministic per option identity:
// the same option always plans the same duration, different options may
// plan different ones.
func RandomOptionDuration(min, max int, seed int64) types.DurationFn {
	return func(option types.Option, _ interface{}, _ types.Info) (types.DurationSpec, error) {
		if min < 0 || max < min {
			return types.DurationSpec{}, fmt.Errorf("invalid duration range [%d, %d]", min, max)
		}
		rng := optionRNG(seed, option)
		return types.TotalTicks(min + rng.Intn(max-min+1)), nil
	}
}

// ConstantActionDuration plans the same duration for every primitive
// action of the option. Requires a fixed-sequence option.
func ConstantActionDuration(ticksPerAction int) types.DurationFn {
	return func(option types.Option, _ interface{}, _ types.Info) (types.DurationSpec, error) {
		length := types.OptionLen(option)
		if length == 0 {
			return types.DurationSpec{}, fmt.Errorf("per-action duration requires a fixed-sequence option")
		}
		ticks := make([]int, length)
		for i := range ticks {
			ticks[i] = ticksPerAction
		}
		return types.PerStepTicks(ticks), nil
	}
}

// RandomActionDuration samples one duration in [min, max] per primitive
// action, deterministic per option identity when seeded.
func RandomActionDuration(min, max int, seed int64) types.DurationFn {
	return func(option types.Option, _ interface{}, _ types.Info) (types.DurationSpec, error) {
		if min < 0 || max < min {
			return types.DurationSpec{}, fmt.Errorf("invalid duration range [%d, %d]", min, max)
		}
		length := types.OptionLen(option)
		if length == 0 {
			return types.DurationSpec{}, fmt.Errorf("per-action duration requires a fixed-sequence option")
		}
		rng := optionRNG(seed, option)
		ticks := make([]int, length)
		for i := range ticks {
			ticks[i] = min + rng.Intn(max-min+1)
		}
		return types.PerStepTicks(ticks), nil
	}
}

// ActionDurationMap plans each primitive's duration by applying fn to
// the action. Requires a fixed-sequence option.
func ActionDurationMap(fn func(action interface{}) int) types.DurationFn {
	return func(option types.Option, _ interface{}, _ types.Info) (types.DurationSpec, error) {
		seq, ok := option.(types.Sequenced)
		if !ok {
			return types.DurationSpec{}, fmt.Errorf("per-action duration requires a fixed-sequence option")
		}
		actions := seq.Actions()
		ticks := make([]int, len(actions))
		for i, action := range actions {
			ticks[i] = fn(action)
		}
		return types.PerStepTicks(ticks), nil
	}
}

// optionRNG derives a generator from the base seed and the option's
// identity, so seeded strategies are reproducible per option.
func optionRNG(seed int64, option types.Option) *rand.Rand {
	if seed < 0 {
		return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	h := fnv.New64a()
	h.Write([]byte(types.OptionID(option)))
	return rand.New(rand.NewSource(uint64(seed) ^ h.Sum64()))
}
