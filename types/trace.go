package types

// Trace of an episode as an ordered list of macro-step records.
type Trace struct {
	Records []*OptionRecord `json:"records"`
}

func NewTrace() *Trace {
	return &Trace{
		Records: make([]*OptionRecord, 0),
	}
}

func (t *Trace) Append(record *OptionRecord) {
	t.Records = append(t.Records, record)
}

func (t *Trace) Len() int {
	return len(t.Records)
}

func (t *Trace) Get(i int) (*OptionRecord, bool) {
	if i >= len(t.Records) {
		return nil, false
	}
	return t.Records[i], true
}

func (t *Trace) Last() (*OptionRecord, bool) {
	if len(t.Records) < 1 {
		return nil, false
	}
	return t.Records[len(t.Records)-1], true
}

// TotalReward is the sum of the aggregated rewards of all macro steps.
func (t *Trace) TotalReward() float64 {
	total := 0.0
	for _, r := range t.Records {
		for _, reward := range r.Rewards {
			total += reward
		}
	}
	return total
}

// TotalExecutedTicks is the executed duration of the whole episode.
func (t *Trace) TotalExecutedTicks() int {
	total := 0
	for _, r := range t.Records {
		total += r.ExecutedTicks
	}
	return total
}
