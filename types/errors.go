package types

import "fmt"

// ConfigurationError reports invalid construction-time arguments or
// malformed provider output. Never retried.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

// InvalidActionError reports a selector that does not fit the
// configured control mode. Raised before any simulator interaction.
type InvalidActionError struct {
	Mode        ControlMode
	Selector    interface{}
	CatalogSize int
}

func (e *InvalidActionError) Error() string {
	if e.Mode == IndexMode {
		return fmt.Sprintf("invalid selector %v: index mode expects an integer in [0, %d)", e.Selector, e.CatalogSize)
	}
	return fmt.Sprintf("invalid selector of type %T: direct mode expects an Option", e.Selector)
}

// ValidationError reports that precheck determined the option is
// currently illegal. Raised before any primitive step executes.
type ValidationError struct {
	OptionName string
	OptionID   string
	// StepIndex is the failing primitive index, -1 when the failure is
	// not tied to a single step.
	StepIndex  int
	ActionRepr string
	ObsSummary string
	Cause      error
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("option %q (id: %s) failed validation", e.OptionName, e.OptionID)
	if e.StepIndex >= 0 {
		msg = fmt.Sprintf("%s at step %d with action %s", msg, e.StepIndex, e.ActionRepr)
	}
	if e.ObsSummary != "" {
		msg = fmt.Sprintf("%s, state: %s", msg, e.ObsSummary)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ValidationError) Unwrap() error { return e.Cause }

// ExecutionError reports that the simulator failed while executing a
// primitive step. Raised after partial side effects have occurred.
type ExecutionError struct {
	OptionName string
	OptionID   string
	StepIndex  int
	ActionRepr string
	ObsSummary string
	Cause      error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("option %q (id: %s) failed at step %d with action %s, state: %s: %v",
		e.OptionName, e.OptionID, e.StepIndex, e.ActionRepr, e.ObsSummary, e.Cause)
}

func (e *ExecutionError) Unwrap() error { return e.Cause }

// ProviderError reports an unexpected failure of a dynamic options or
// duration provider. Propagated with the original cause, not masked.
type ProviderError struct {
	Provider string
	Cause    error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider failed: %v", e.Provider, e.Cause)
}

func (e *ProviderError) Unwrap() error { return e.Cause }
