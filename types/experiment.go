package types

import "fmt"

// TraceStore persists episode traces of an experiment run.
type TraceStore interface {
	Append(experiment string, run int, trace *Trace) error
}

// ExperimentRunConfig is the shared execution configuration of a run.
type ExperimentRunConfig struct {
	Episodes int
	Horizon  int
	// Seed for episode resets, negative means unseeded.
	Seed int64
	// Store receives every trace when set.
	Store TraceStore
}

// Experiment pairs a named policy with an engine constructor so every
// run starts from a fresh engine and environment.
type Experiment struct {
	Name   string
	policy Policy
	engine func() (*Engine, error)
}

// NewExperiment creates a new experiment instance
func NewExperiment(name string, policy Policy, engine func() (*Engine, error)) *Experiment {
	return &Experiment{
		Name:   name,
		policy: policy,
		engine: engine,
	}
}

// Run the experiment for the configured number of episodes and return
// the collected traces.
func (e *Experiment) Run(rConfig *ExperimentRunConfig, run int) ([]*Trace, error) {
	engine, err := e.engine()
	if err != nil {
		return nil, fmt.Errorf("experiment %s: %w", e.Name, err)
	}
	e.policy.Reset()

	agent := NewAgent(&AgentConfig{
		Episodes: rConfig.Episodes,
		Horizon:  rConfig.Horizon,
		Policy:   e.policy,
		Engine:   engine,
		Seed:     rConfig.Seed,
	})
	if err := agent.Run(); err != nil {
		return nil, fmt.Errorf("experiment %s: %w", e.Name, err)
	}

	traces := agent.Traces()
	if rConfig.Store != nil {
		for _, trace := range traces {
			if err := rConfig.Store.Append(e.Name, run, trace); err != nil {
				return nil, fmt.Errorf("experiment %s: recording trace: %w", e.Name, err)
			}
		}
	}
	return traces, nil
}

type DataSet interface{}

// Analyzer reduces the traces of one experiment run to a data set.
type Analyzer func(run int, name string, traces []*Trace) DataSet

// Comparator consumes the data sets of all experiments of one run.
type Comparator func(run int, names []string, datasets []DataSet)

// Comparison runs experiments side by side and feeds the analyzer
// outputs to the comparator.
type Comparison struct {
	analyzer    Analyzer
	comparator  Comparator
	experiments []*Experiment
}

func NewComparison(analyzer Analyzer, comparator Comparator) *Comparison {
	return &Comparison{
		analyzer:    analyzer,
		comparator:  comparator,
		experiments: make([]*Experiment, 0),
	}
}

func (c *Comparison) AddExperiment(e *Experiment) {
	c.experiments = append(c.experiments, e)
}

// Run all the experiments for the specified number of runs.
func (c *Comparison) Run(rConfig *ExperimentRunConfig, runs int) error {
	for run := 0; run < runs; run++ {
		names := make([]string, 0, len(c.experiments))
		datasets := make([]DataSet, 0, len(c.experiments))
		for _, e := range c.experiments {
			traces, err := e.Run(rConfig, run)
			if err != nil {
				return err
			}
			fmt.Printf("Exp:%s, Run:%d, Episodes:%d\n", e.Name, run, len(traces))
			names = append(names, e.Name)
			datasets = append(datasets, c.analyzer(run, e.Name, traces))
		}
		if c.comparator != nil {
			c.comparator(run, names, datasets)
		}
	}
	return nil
}
