package types

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"reflect"
	"strings"
)

// Option is one temporally extended action: a policy over a sequence of
// primitive actions that the engine executes as a single macro step.
//
// The execution lifecycle is Begin, then a loop of Act / env step /
// OnStep until Act reports completion or the episode ends.
type Option interface {
	// Name is the human readable label of the option.
	Name() string
	// Meta returns optional metadata, nil when none.
	Meta() Info
	// Identity returns the parts of the stable content identity.
	// Options built from the same content must return equal parts.
	Identity() []string

	// Begin initializes per-execution state.
	Begin(obs interface{}, info Info)
	// Act returns the next primitive action and whether the option
	// finishes after executing it.
	Act(obs interface{}, info Info) (interface{}, bool)
	// OnStep observes the outcome of the primitive just executed.
	OnStep(out StepOutcome)
	// Preview returns the first primitive action without executing,
	// nil when the option cannot tell.
	Preview(obs interface{}, info Info) interface{}
}

// Sequenced is implemented by options with a fixed primitive sequence.
// The engine uses it for per-step duration plans and precheck.
type Sequenced interface {
	Actions() []interface{}
}

// OptionID derives the stable identity of an option: a 16 hex character
// truncated sha256 digest of its identity parts.
func OptionID(o Option) string {
	content := strings.Join(o.Identity(), "|")
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])[:16]
}

// OptionLen returns the number of planned primitives, 0 when unbounded.
func OptionLen(o Option) int {
	if s, ok := o.(Sequenced); ok {
		return len(s.Actions())
	}
	return 0
}

// SeqOption executes a fixed list of primitive actions. The action
// sequence is treated as immutable after construction so the identity
// stays stable for the lifetime of the value.
type SeqOption struct {
	actions []interface{}
	name    string
	meta    Info

	cursor int
}

var _ Option = &SeqOption{}
var _ Sequenced = &SeqOption{}

// NewSeqOption builds a fixed-sequence option from a non-empty list of
// primitive actions and a name.
func NewSeqOption(actions []interface{}, name string, meta Info) (*SeqOption, error) {
	if len(actions) == 0 {
		return nil, &ConfigurationError{Reason: "option action sequence is empty"}
	}
	if name == "" {
		return nil, &ConfigurationError{Reason: "option name is empty"}
	}
	copied := make([]interface{}, len(actions))
	copy(copied, actions)
	return &SeqOption{actions: copied, name: name, meta: meta}, nil
}

// MustSeqOption is NewSeqOption for static catalogs, panics on invalid input.
func MustSeqOption(actions []interface{}, name string) *SeqOption {
	o, err := NewSeqOption(actions, name, nil)
	if err != nil {
		panic(err)
	}
	return o
}

func (o *SeqOption) Actions() []interface{} { return o.actions }

func (o *SeqOption) Name() string { return o.name }

func (o *SeqOption) Meta() Info { return o.meta }

func (o *SeqOption) Identity() []string {
	return []string{"SeqOption", serializeActions(o.actions), o.name}
}

func (o *SeqOption) Begin(interface{}, Info) { o.cursor = 0 }

func (o *SeqOption) Act(interface{}, Info) (interface{}, bool) {
	if o.cursor >= len(o.actions) {
		return o.actions[len(o.actions)-1], true
	}
	return o.actions[o.cursor], o.cursor == len(o.actions)-1
}

func (o *SeqOption) OnStep(StepOutcome) { o.cursor++ }

func (o *SeqOption) Preview(interface{}, Info) interface{} { return o.actions[0] }

func (o *SeqOption) Len() int { return len(o.actions) }

// serializeAction renders one primitive action canonically, recursing
// into slices and arrays so nested structures hash deterministically.
func serializeAction(action interface{}) string {
	if action == nil {
		return "nil"
	}
	v := reflect.ValueOf(action)
	if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
		parts := make([]string, v.Len())
		for i := 0; i < v.Len(); i++ {
			parts[i] = serializeAction(v.Index(i).Interface())
		}
		return "[" + strings.Join(parts, ",") + "]"
	}
	return fmt.Sprintf("%v", action)
}

func serializeActions(actions []interface{}) string {
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = serializeAction(a)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
