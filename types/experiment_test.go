package types

import "testing"

type memoryStore struct {
	appended map[string][]*Trace
}

var _ TraceStore = &memoryStore{}

func (m *memoryStore) Append(experiment string, run int, trace *Trace) error {
	if m.appended == nil {
		m.appended = make(map[string][]*Trace)
	}
	m.appended[experiment] = append(m.appended[experiment], trace)
	return nil
}

func testExperiment(name string) *Experiment {
	return NewExperiment(name, NewSeededRandomPolicy(7), func() (*Engine, error) {
		return NewEngine(EngineConfig{
			Environment: &fakeEnv{n: 4, terminateAt: 4},
			Options:     StaticOptions(testCatalog(2)...),
			Duration:    constantDuration(1),
			Seed:        -1,
		})
	})
}

func TestExperimentRun(t *testing.T) {
	store := &memoryStore{}
	experiment := testExperiment("fake")

	traces, err := experiment.Run(&ExperimentRunConfig{
		Episodes: 2,
		Horizon:  10,
		Seed:     -1,
		Store:    store,
	}, 0)
	if err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
	if len(traces) != 2 {
		t.Fatalf("expected 2 traces, got %d", len(traces))
	}
	if len(store.appended["fake"]) != 2 {
		t.Errorf("expected 2 stored traces, got %d", len(store.appended["fake"]))
	}
	for i, trace := range traces {
		if trace.Len() != 4 {
			t.Errorf("trace %d: expected 4 macro steps, got %d", i, trace.Len())
		}
	}
}

func TestComparisonRun(t *testing.T) {
	analyzed := make(map[string]int)
	var comparedNames []string

	comparison := NewComparison(
		func(run int, name string, traces []*Trace) DataSet {
			analyzed[name] = len(traces)
			return len(traces)
		},
		func(run int, names []string, datasets []DataSet) {
			comparedNames = names
		},
	)
	comparison.AddExperiment(testExperiment("first"))
	comparison.AddExperiment(testExperiment("second"))

	err := comparison.Run(&ExperimentRunConfig{Episodes: 2, Horizon: 10, Seed: -1}, 1)
	if err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
	if analyzed["first"] != 2 || analyzed["second"] != 2 {
		t.Errorf("expected both experiments analyzed with 2 traces, got %v", analyzed)
	}
	if len(comparedNames) != 2 {
		t.Errorf("expected the comparator to see both experiments, got %v", comparedNames)
	}
}
