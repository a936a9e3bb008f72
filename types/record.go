package types

// OptionRecord is the macro-step record assembled for every executed
// option. It is rebuilt per macro step and surfaced to the controller.
type OptionRecord struct {
	OptionID   string `json:"option_id"`
	OptionName string `json:"option_name"`
	// OptionLen is the planned primitive count, 0 for unbounded options.
	OptionLen int  `json:"option_len"`
	Meta      Info `json:"meta,omitempty"`

	// KExec counts the primitives actually executed.
	KExec   int       `json:"k_exec"`
	Rewards []float64 `json:"rewards"`

	PlannedTicks  int `json:"duration_planned"`
	ExecutedTicks int `json:"duration_exec"`
	// TerminatedEarly is set when execution stopped before the option's
	// natural end.
	TerminatedEarly bool `json:"terminated_early"`

	// Index mode only: the selectable catalog slots at the next state
	// and the candidates dropped by truncation there.
	OptionMask Mask `json:"option_mask,omitempty"`
	NumDropped int  `json:"num_dropped"`
}

// ResetResult is returned by Engine.Reset.
type ResetResult struct {
	Observation interface{}
	Info        Info
	// Index mode only.
	OptionMask Mask
	NumDropped int
}

// StepResult is returned by Engine.Step for a completed macro step.
type StepResult struct {
	Observation interface{}
	// Reward is the aggregated macro reward.
	Reward     float64
	Terminated bool
	Truncated  bool
	Info       Info
	Record     OptionRecord
}
