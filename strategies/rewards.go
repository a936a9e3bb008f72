package strategies

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/optrl/smdp/types"
)

// Sum adds all per-primitive rewards, the default aggregation. Returns
// 0 for an empty macro step.
func Sum(rewards []float64) float64 {
	total := 0.0
	for _, r := range rewards {
		total += r
	}
	return total
}

// Mean averages the per-primitive rewards, normalising across options
// of different lengths. Returns 0 for an empty macro step.
func Mean(rewards []float64) float64 {
	if len(rewards) == 0 {
		return 0
	}
	return stat.Mean(rewards, nil)
}

// DiscountedSum weights earlier primitives more, with factor gamma in
// (0, 1]. This is not SMDP discounting, which uses gamma^ticks.
func DiscountedSum(gamma float64) types.RewardAgg {
	if gamma <= 0 || gamma > 1 {
		panic(fmt.Sprintf("gamma must be in (0, 1], got %v", gamma))
	}
	return func(rewards []float64) float64 {
		total := 0.0
		factor := 1.0
		for _, r := range rewards {
			total += factor * r
			factor *= gamma
		}
		return total
	}
}
