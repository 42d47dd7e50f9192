// Package sampling holds the generation-control parameters passed to the
// inference engine and the per-request override resolution rules.
package sampling

// Legal ranges. Out-of-range inputs are silently clamped, not rejected.
const (
	MinTemperature = 0.0
	MaxTemperature = 2.0
	MinTopP        = 0.0
	MaxTopP        = 1.0
	MinMaxTokens   = 1
	MaxMaxTokens   = 8192
)

// Params is a sampling configuration. The process-wide base instance is
// immutable; per-request instances are derived copies that never mutate it.
type Params struct {
	Temperature         float64
	TopP                float64
	MaxTokens           int
	Stop                []string
	SkipSpecialTokens   bool
	IncludeStopInOutput bool
}

// Overrides carries the optional per-request sampling fields. A nil field
// means "use the base value".
type Overrides struct {
	Temperature *float64
	TopP        *float64
	MaxTokens   *int
}

// Default returns the canonical base configuration.
func Default() Params {
	return Params{
		Temperature:         0.1,
		TopP:                0.95,
		MaxTokens:           1500,
		SkipSpecialTokens:   false,
		IncludeStopInOutput: true,
	}
}

// Resolve merges overrides onto base and clamps the result to the legal
// ranges. When the clamped triple equals the base triple, base is returned
// unchanged so callers keep the shared instance; otherwise a copy with the
// base's stop sequences and flags carried over. It cannot fail: malformed
// numeric input must be rejected before reaching this point.
func Resolve(base Params, o Overrides) Params {
	temp := base.Temperature
	if o.Temperature != nil {
		temp = *o.Temperature
	}
	topP := base.TopP
	if o.TopP != nil {
		topP = *o.TopP
	}
	maxTokens := base.MaxTokens
	if o.MaxTokens != nil {
		maxTokens = *o.MaxTokens
	}

	temp = clampFloat(temp, MinTemperature, MaxTemperature)
	topP = clampFloat(topP, MinTopP, MaxTopP)
	maxTokens = clampInt(maxTokens, MinMaxTokens, MaxMaxTokens)

	if temp == base.Temperature && topP == base.TopP && maxTokens == base.MaxTokens {
		return base
	}

	derived := base
	derived.Temperature = temp
	derived.TopP = topP
	derived.MaxTokens = maxTokens
	return derived
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
