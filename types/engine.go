package types

import (
	"fmt"
	"math/rand"

	"github.com/optrl/smdp/util"
)

// ControlMode selects how the controller addresses options.
type ControlMode string

const (
	// IndexMode selects options by index into the current catalog.
	IndexMode ControlMode = "index"
	// DirectMode passes Option values to Step directly.
	DirectMode ControlMode = "direct"
)

// RewardAgg reduces the per-primitive rewards of one macro step into a
// scalar. It must accept the empty sequence.
type RewardAgg func(rewards []float64) float64

func sumRewards(rewards []float64) float64 {
	total := 0.0
	for _, r := range rewards {
		total += r
	}
	return total
}

// EngineConfig carries the construction-time configuration of an Engine.
type EngineConfig struct {
	Environment Environment
	Options     OptionsProvider
	Duration    DurationFn
	// RewardAgg aggregates primitive rewards, nil means summation.
	RewardAgg RewardAgg
	// Mode defaults to IndexMode.
	Mode ControlMode
	// MaxOptions caps the catalog in index mode. Required for a dynamic
	// provider; defaults to the catalog size for a static one.
	MaxOptions   int
	Availability AvailabilityFn
	// Precheck enables validation of options before execution.
	Precheck bool
	// PartialDuration defaults to Proportional.
	PartialDuration PartialDurationPolicy
	// Seed makes unseeded Reset calls reproducible. Negative means none.
	Seed int64
}

// Engine executes options as single macro steps against the underlying
// environment. Not safe for concurrent use: each instance exclusively
// owns its environment and its cached last observation.
type Engine struct {
	env          Environment
	provider     OptionsProvider
	durationFn   DurationFn
	rewardAgg    RewardAgg
	mode         ControlMode
	maxOptions   int
	availability AvailabilityFn
	precheck     bool
	partial      PartialDurationPolicy
	rng          *rand.Rand

	started  bool
	lastObs  interface{}
	lastInfo Info
}

// NewEngine validates the configuration and builds an engine.
// Invalid combinations fail fast with a ConfigurationError.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	if cfg.Environment == nil {
		return nil, &ConfigurationError{Reason: "environment is required"}
	}
	if !cfg.Options.configured() {
		return nil, &ConfigurationError{Reason: "options provider is required"}
	}
	if cfg.Duration == nil {
		return nil, &ConfigurationError{Reason: "duration function is required"}
	}
	mode := cfg.Mode
	if mode == "" {
		mode = IndexMode
	}
	if mode != IndexMode && mode != DirectMode {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("unknown control mode %q", cfg.Mode)}
	}
	partial := cfg.PartialDuration
	if partial == "" {
		partial = Proportional
	}
	if !partial.valid() {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("unknown partial duration policy %q", cfg.PartialDuration)}
	}
	if cfg.MaxOptions < 0 {
		return nil, &ConfigurationError{Reason: "max options must not be negative"}
	}
	maxOptions := cfg.MaxOptions
	if mode == IndexMode {
		if cfg.Options.Dynamic() && maxOptions == 0 {
			return nil, &ConfigurationError{Reason: "max options is required for index mode with a dynamic provider"}
		}
		if !cfg.Options.Dynamic() && maxOptions == 0 {
			maxOptions = cfg.Options.Size()
		}
	}
	rewardAgg := cfg.RewardAgg
	if rewardAgg == nil {
		rewardAgg = sumRewards
	}
	var rng *rand.Rand
	if cfg.Seed >= 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	return &Engine{
		env:          cfg.Environment,
		provider:     cfg.Options,
		durationFn:   cfg.Duration,
		rewardAgg:    rewardAgg,
		mode:         mode,
		maxOptions:   maxOptions,
		availability: cfg.Availability,
		precheck:     cfg.Precheck,
		partial:      partial,
		rng:          rng,
	}, nil
}

// Mode of the engine.
func (e *Engine) Mode() ControlMode { return e.mode }

// MaxOptions is the catalog cap in index mode, 0 otherwise.
func (e *Engine) MaxOptions() int { return e.maxOptions }

// LastObservation is the observation cached after the last Reset or Step.
func (e *Engine) LastObservation() interface{} { return e.lastObs }

// Reset starts a new episode on the underlying environment and captures
// its state. In index mode the result carries the initial option mask
// and drop count.
func (e *Engine) Reset(seed int64) (*ResetResult, error) {
	if seed < 0 && e.rng != nil {
		seed = e.rng.Int63()
	}
	obs, info, err := e.env.Reset(seed)
	if err != nil {
		return nil, fmt.Errorf("environment reset: %w", err)
	}
	if info == nil {
		info = Info{}
	}
	e.lastObs = obs
	e.lastInfo = info
	e.started = true

	result := &ResetResult{Observation: obs, Info: info}
	if e.mode == IndexMode {
		options, dropped, err := e.availableOptions(obs, info)
		if err != nil {
			return nil, err
		}
		result.OptionMask = e.optionMask(len(options))
		result.NumDropped = dropped
	}
	return result, nil
}

// AvailableOptions is the catalog at the current state, truncated in
// index mode.
func (e *Engine) AvailableOptions() ([]Option, error) {
	if !e.started {
		return nil, &ConfigurationError{Reason: "engine used before Reset"}
	}
	options, _, err := e.availableOptions(e.lastObs, e.lastInfo)
	return options, err
}

// Step executes one full option as a macro step: resolve, optionally
// validate, plan the duration, run the primitives, aggregate. The macro
// step either fully succeeds with a result or fails with a typed error;
// primitives already applied to the environment are never rolled back.
func (e *Engine) Step(selector interface{}) (*StepResult, error) {
	if !e.started {
		return nil, &ConfigurationError{Reason: "Step called before Reset"}
	}

	option, err := e.resolve(selector)
	if err != nil {
		return nil, err
	}

	if e.precheck {
		if err := e.validate(option, e.lastObs, e.lastInfo); err != nil {
			return nil, err
		}
	}

	plan, err := e.plan(option)
	if err != nil {
		return nil, err
	}

	exec, err := e.execute(option)
	if err != nil {
		return nil, err
	}

	interrupted := !exec.done
	optionLen := OptionLen(option)
	record := OptionRecord{
		OptionID:        OptionID(option),
		OptionName:      option.Name(),
		OptionLen:       optionLen,
		Meta:            option.Meta(),
		KExec:           exec.kExec,
		Rewards:         exec.rewards,
		PlannedTicks:    plan.Planned(),
		ExecutedTicks:   plan.Executed(exec.kExec, optionLen, interrupted, e.partial),
		TerminatedEarly: interrupted,
	}
	if e.mode == IndexMode {
		options, dropped, err := e.availableOptions(exec.obs, exec.info)
		if err != nil {
			return nil, err
		}
		record.OptionMask = e.optionMask(len(options))
		record.NumDropped = dropped
	}

	e.lastObs = exec.obs
	e.lastInfo = exec.info

	return &StepResult{
		Observation: exec.obs,
		Reward:      e.rewardAgg(exec.rewards),
		Terminated:  exec.terminated,
		Truncated:   exec.truncated,
		Info:        exec.info,
		Record:      record,
	}, nil
}

// resolve maps the selector to an option according to the control mode.
func (e *Engine) resolve(selector interface{}) (Option, error) {
	if e.mode == DirectMode {
		option, ok := selector.(Option)
		if !ok {
			return nil, &InvalidActionError{Mode: DirectMode, Selector: selector}
		}
		return option, nil
	}
	catalog, _, err := e.availableOptions(e.lastObs, e.lastInfo)
	if err != nil {
		return nil, err
	}
	index, ok := asInt(selector)
	if !ok || index < 0 || index >= len(catalog) {
		return nil, &InvalidActionError{Mode: IndexMode, Selector: selector, CatalogSize: len(catalog)}
	}
	return catalog[index], nil
}

// availableOptions queries the provider with the enriched context and
// applies index-mode truncation. The drop count is deterministic:
// max(0, candidates-maxOptions).
func (e *Engine) availableOptions(obs interface{}, info Info) ([]Option, int, error) {
	enhanced := make(Info, len(info)+2)
	for k, v := range info {
		enhanced[k] = v
	}
	space := e.env.ActionSpace()
	enhanced[InfoKeyActionSpace] = space
	if e.availability != nil && space.Discrete {
		// availability is advisory: failures degrade to no mask
		if available, err := e.availability(obs); err == nil {
			enhanced[InfoKeyActionMask] = NewMask(available, space.N)
		}
	}
	options, err := e.provider.options(obs, enhanced)
	if err != nil {
		return nil, 0, err
	}
	if e.mode == IndexMode {
		kept, dropped := truncateOptions(options, e.maxOptions)
		return kept, dropped, nil
	}
	return options, 0, nil
}

// optionMask marks the selectable slots of the index action space.
func (e *Engine) optionMask(numAvailable int) Mask {
	if e.maxOptions <= 0 {
		return nil
	}
	mask := make(Mask, e.maxOptions)
	for i := 0; i < numAvailable && i < e.maxOptions; i++ {
		mask[i] = true
	}
	return mask
}

// validate prechecks the option's primitives against the availability
// set. Trivially passes without an availability function, with a
// non-discrete space, or for options without a fixed sequence.
func (e *Engine) validate(option Option, obs interface{}, info Info) error {
	if e.availability == nil || !e.env.ActionSpace().Discrete {
		return nil
	}
	seq, ok := option.(Sequenced)
	if !ok {
		return nil
	}
	available, err := e.availability(obs)
	if err != nil {
		return &ValidationError{
			OptionName: option.Name(),
			OptionID:   OptionID(option),
			StepIndex:  -1,
			ObsSummary: util.SummarizeObservation(obs),
			Cause:      err,
		}
	}
	set := make(map[int]bool, len(available))
	for _, id := range available {
		set[id] = true
	}
	for i, action := range seq.Actions() {
		id, ok := asInt(action)
		if !ok {
			continue
		}
		if !set[id] {
			return &ValidationError{
				OptionName: option.Name(),
				OptionID:   OptionID(option),
				StepIndex:  i,
				ActionRepr: fmt.Sprintf("%v", action),
				ObsSummary: util.SummarizeObservation(obs),
			}
		}
	}
	return nil
}

// plan invokes the duration strategy and validates the plan shape.
func (e *Engine) plan(option Option) (DurationSpec, error) {
	spec, err := e.durationFn(option, e.lastObs, e.lastInfo)
	if err != nil {
		return DurationSpec{}, &ProviderError{Provider: "duration", Cause: err}
	}
	if err := spec.validate(OptionLen(option)); err != nil {
		return DurationSpec{}, err
	}
	return spec, nil
}

type execOutcome struct {
	rewards    []float64
	kExec      int
	terminated bool
	truncated  bool
	// done is set when the option reported its natural end.
	done bool
	obs  interface{}
	info Info
}

// execute runs the option's primitives in order against the
// environment, stopping at the option's natural end or when the episode
// terminates or truncates. Every attempted primitive is applied exactly
// once, no retries.
func (e *Engine) execute(option Option) (*execOutcome, error) {
	out := &execOutcome{
		rewards: make([]float64, 0),
		obs:     e.lastObs,
		info:    e.lastInfo,
	}
	option.Begin(e.lastObs, e.lastInfo)
	for {
		action, last := option.Act(out.obs, out.info)
		step, err := e.env.Step(action)
		if err != nil {
			return nil, &ExecutionError{
				OptionName: option.Name(),
				OptionID:   OptionID(option),
				StepIndex:  out.kExec,
				ActionRepr: fmt.Sprintf("%v", action),
				ObsSummary: util.SummarizeObservation(out.obs),
				Cause:      err,
			}
		}
		out.rewards = append(out.rewards, step.Reward)
		out.kExec++
		out.obs = step.Observation
		if step.Info != nil {
			out.info = step.Info
		} else {
			out.info = Info{}
		}
		option.OnStep(step)
		if step.Terminated || step.Truncated {
			out.terminated = step.Terminated
			out.truncated = step.Truncated
			out.done = last
			return out, nil
		}
		if last {
			out.done = true
			return out, nil
		}
	}
}

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	}
	return 0, false
}
