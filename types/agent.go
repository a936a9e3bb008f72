package types

import "fmt"

type AgentConfig struct {
	Episodes int
	// Horizon is the maximum number of macro steps per episode.
	Horizon int
	Policy  Policy
	Engine  *Engine
	// Seed for episode resets, negative means unseeded.
	Seed int64
}

// Agent drives an index-mode engine with a policy for a fixed number of
// episodes, collecting one trace of macro-step records per episode.
type Agent struct {
	config *AgentConfig
	// Only populated if the Run function is invoked
	traces []*Trace
	policy Policy
	engine *Engine
}

// Instantiates a new Agent
func NewAgent(config *AgentConfig) *Agent {
	return &Agent{
		config: config,
		traces: make([]*Trace, config.Episodes),
		policy: config.Policy,
		engine: config.Engine,
	}
}

// Run the agent for the specified number of episodes and horizon
func (a *Agent) Run() error {
	for i := 0; i < a.config.Episodes; i++ {
		trace, err := a.runEpisode(i)
		if err != nil {
			return fmt.Errorf("episode %d: %w", i, err)
		}
		a.traces[i] = trace
	}
	return nil
}

// Traces collected by Run, one per episode.
func (a *Agent) Traces() []*Trace {
	return a.traces
}

// run a single episode and return the resulting trace
func (a *Agent) runEpisode(episode int) (*Trace, error) {
	if _, err := a.engine.Reset(a.config.Seed); err != nil {
		return nil, err
	}
	trace := NewTrace()

	for step := 0; step < a.config.Horizon; step++ {
		options, err := a.engine.AvailableOptions()
		if err != nil {
			return nil, err
		}
		if len(options) == 0 {
			break
		}
		choice, ok := a.policy.NextOption(step, a.engine.LastObservation(), options)
		if !ok {
			break
		}
		result, err := a.engine.Step(choice)
		if err != nil {
			return nil, err
		}
		a.policy.Update(step, a.engine.LastObservation(), choice, result)

		trace.Append(&result.Record)
		if result.Terminated || result.Truncated {
			break
		}
	}
	a.policy.UpdateIteration(episode, trace)

	return trace, nil
}
