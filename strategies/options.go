package strategies

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/optrl/smdp/types"
)

// RandomStaticLen generates num random options of fixed length over the
// currently legal primitive actions. With a non-negative seed the same
// state context yields the same catalog.
func RandomStaticLen(length, num int, seed int64) types.OptionsFn {
	return func(obs interface{}, info types.Info) ([]types.Option, error) {
		if length < 1 {
			return nil, fmt.Errorf("option length must be at least 1, got %d", length)
		}
		actions, err := legalActions(info)
		if err != nil {
			return nil, err
		}
		if len(actions) == 0 {
			return nil, nil
		}
		rng := catalogRNG(seed)
		options := make([]types.Option, 0, num)
		for i := 0; i < num; i++ {
			seq := make([]interface{}, length)
			for j := range seq {
				seq[j] = actions[rng.Intn(len(actions))]
			}
			option, err := types.NewSeqOption(seq, fmt.Sprintf("random_static_%d_%d", length, i), nil)
			if err != nil {
				return nil, err
			}
			options = append(options, option)
		}
		return options, nil
	}
}

// RandomVarLen generates num random options with lengths sampled in
// [minLen, maxLen] over the currently legal primitive actions.
func RandomVarLen(minLen, maxLen, num int, seed int64) types.OptionsFn {
	return func(obs interface{}, info types.Info) ([]types.Option, error) {
		if minLen < 1 {
			return nil, fmt.Errorf("min length must be at least 1, got %d", minLen)
		}
		if maxLen < minLen {
			return nil, fmt.Errorf("max length %d must be >= min length %d", maxLen, minLen)
		}
		actions, err := legalActions(info)
		if err != nil {
			return nil, err
		}
		if len(actions) == 0 {
			return nil, nil
		}
		rng := catalogRNG(seed)
		options := make([]types.Option, 0, num)
		for i := 0; i < num; i++ {
			length := minLen + rng.Intn(maxLen-minLen+1)
			seq := make([]interface{}, length)
			for j := range seq {
				seq[j] = actions[rng.Intn(len(actions))]
			}
			option, err := types.NewSeqOption(seq, fmt.Sprintf("random_var_%d_%d", length, i), nil)
			if err != nil {
				return nil, err
			}
			options = append(options, option)
		}
		return options, nil
	}
}

// legalActions reads the availability mask injected by the engine,
// falling back to the full discrete action space when no mask is set.
func legalActions(info types.Info) ([]int, error) {
	if mask, ok := info[types.InfoKeyActionMask].(types.Mask); ok {
		actions := make([]int, 0, len(mask))
		for id, legal := range mask {
			if legal {
				actions = append(actions, id)
			}
		}
		return actions, nil
	}
	space, ok := info[types.InfoKeyActionSpace].(types.ActionSpace)
	if !ok || !space.Discrete {
		return nil, fmt.Errorf("no discrete action space in context")
	}
	actions := make([]int, space.N)
	for i := range actions {
		actions[i] = i
	}
	return actions, nil
}

func catalogRNG(seed int64) *rand.Rand {
	if seed < 0 {
		return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return rand.New(rand.NewSource(uint64(seed)))
}
