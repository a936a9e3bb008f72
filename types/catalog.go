package types

// OptionsFn produces the catalog of currently available options for a state.
type OptionsFn func(obs interface{}, info Info) ([]Option, error)

// AvailabilityFn reports the currently legal discrete primitive action ids.
// Failures are tolerated: the engine degrades to "no mask".
type AvailabilityFn func(obs interface{}) ([]int, error)

const (
	providerStatic = iota + 1
	providerDynamic
)

// OptionsProvider is the catalog source, either a fixed list or a
// state-dependent generator. The variant is fixed at construction so
// the engine never branches on the raw input again.
type OptionsProvider struct {
	kind   int
	static []Option
	fn     OptionsFn
}

// StaticOptions wraps a catalog that is fixed for the session.
func StaticOptions(options ...Option) OptionsProvider {
	copied := make([]Option, len(options))
	copy(copied, options)
	return OptionsProvider{kind: providerStatic, static: copied}
}

// DynamicOptions wraps a generator queried at every state.
func DynamicOptions(fn OptionsFn) OptionsProvider {
	return OptionsProvider{kind: providerDynamic, fn: fn}
}

// Dynamic reports whether the catalog is recomputed per state.
func (p OptionsProvider) Dynamic() bool { return p.kind == providerDynamic }

func (p OptionsProvider) configured() bool {
	return p.kind == providerStatic || (p.kind == providerDynamic && p.fn != nil)
}

// Size of the static catalog, 0 for dynamic providers.
func (p OptionsProvider) Size() int { return len(p.static) }

func (p OptionsProvider) options(obs interface{}, info Info) ([]Option, error) {
	if p.kind == providerStatic {
		return p.static, nil
	}
	options, err := p.fn(obs, info)
	if err != nil {
		return nil, &ProviderError{Provider: "options", Cause: err}
	}
	return options, nil
}

// truncateOptions keeps a stable prefix of at most max options and
// reports how many candidates were dropped.
func truncateOptions(options []Option, max int) ([]Option, int) {
	if max <= 0 || len(options) <= max {
		return options, 0
	}
	return options[:max], len(options) - max
}

// Mask marks which slots of a discrete space are currently legal.
type Mask []bool

// NewMask builds a mask of size n with the given ids set. Ids outside
// [0, n) are ignored.
func NewMask(available []int, n int) Mask {
	m := make(Mask, n)
	for _, id := range available {
		if id >= 0 && id < n {
			m[id] = true
		}
	}
	return m
}

// Count of the set entries.
func (m Mask) Count() int {
	count := 0
	for _, set := range m {
		if set {
			count++
		}
	}
	return count
}
