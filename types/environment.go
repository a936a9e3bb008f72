package types

// Info is the diagnostic context that accompanies an observation.
type Info map[string]interface{}

// Keys the engine injects into the Info handed to dynamic option providers.
const (
	InfoKeyActionSpace = "action_space"
	InfoKeyActionMask  = "action_mask"
)

// ActionSpace describes the primitive actions an environment accepts.
type ActionSpace struct {
	Discrete bool
	// Number of discrete primitive actions, valid only when Discrete.
	N int
}

// StepOutcome is the result of applying one primitive action.
type StepOutcome struct {
	Observation interface{}
	Reward      float64
	Terminated  bool
	Truncated   bool
	Info        Info
}

// Environment is the underlying step-wise simulator the engine drives.
// It is single-owner: the engine mutates it in place and never invokes
// it concurrently.
type Environment interface {
	// Reset starts a new episode. A negative seed means unseeded.
	Reset(seed int64) (interface{}, Info, error)
	// Step applies one primitive action
	Step(action interface{}) (StepOutcome, error)
	// ActionSpace of the primitive actions
	ActionSpace() ActionSpace
}
