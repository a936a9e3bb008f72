package types

import (
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/stat/sampleuv"
)

// Policy chooses which option of the current catalog to run next.
// Policies address options by catalog index, matching the engine's
// index mode.
type Policy interface {
	UpdateIteration(episode int, trace *Trace)
	NextOption(step int, obs interface{}, options []Option) (int, bool)
	Update(step int, obs interface{}, choice int, result *StepResult)
	Reset()
}

// SoftmaxPolicy keeps one value per option identity and samples options
// proportionally to exp(value). Updates discount the macro reward by
// gamma^ticks of executed duration, the SMDP discounting the duration
// bookkeeping exists for.
type SoftmaxPolicy struct {
	QTable map[string]float64
	alpha  float64
	gamma  float64
}

func NewSoftmaxPolicy(alpha, gamma float64) *SoftmaxPolicy {
	return &SoftmaxPolicy{
		QTable: make(map[string]float64),
		alpha:  alpha,
		gamma:  gamma,
	}
}

var _ Policy = &SoftmaxPolicy{}

func (s *SoftmaxPolicy) Reset() {
	s.QTable = make(map[string]float64)
}

func (s *SoftmaxPolicy) UpdateIteration(_ int, _ *Trace) {

}

func (s *SoftmaxPolicy) NextOption(step int, obs interface{}, options []Option) (int, bool) {
	if len(options) == 0 {
		return 0, false
	}

	sum := float64(0)
	vals := make([]float64, len(options))
	for i, option := range options {
		id := OptionID(option)
		if _, ok := s.QTable[id]; !ok {
			s.QTable[id] = 0
		}
		exp := math.Exp(s.QTable[id])
		vals[i] = exp
		sum += exp
	}

	weights := make([]float64, len(options))
	for i, v := range vals {
		weights[i] = v / sum
	}
	i, ok := sampleuv.NewWeighted(weights, nil).Take()
	if !ok {
		return 0, false
	}
	return i, true
}

func (s *SoftmaxPolicy) Update(step int, obs interface{}, choice int, result *StepResult) {
	id := result.Record.OptionID
	curVal := s.QTable[id]
	discounted := math.Pow(s.gamma, float64(result.Record.ExecutedTicks)) * result.Reward
	s.QTable[id] = (1-s.alpha)*curVal + s.alpha*discounted
}

// RandomPolicy picks options uniformly at random.
type RandomPolicy struct {
	rand *rand.Rand
}

var _ Policy = &RandomPolicy{}

func NewRandomPolicy() *RandomPolicy {
	return &RandomPolicy{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSeededRandomPolicy is a reproducible RandomPolicy.
func NewSeededRandomPolicy(seed int64) *RandomPolicy {
	return &RandomPolicy{
		rand: rand.New(rand.NewSource(seed)),
	}
}

func (r *RandomPolicy) Reset() {

}

func (r *RandomPolicy) UpdateIteration(_ int, _ *Trace) {

}

func (r *RandomPolicy) NextOption(step int, obs interface{}, options []Option) (int, bool) {
	if len(options) == 0 {
		return 0, false
	}
	return r.rand.Intn(len(options)), true
}

func (r *RandomPolicy) Update(_ int, _ interface{}, _ int, _ *StepResult) {}
