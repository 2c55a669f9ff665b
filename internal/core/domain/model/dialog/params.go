package dialog

import (
	"strconv"
)

// Params is the loosely typed parameter bag attached to intents and contexts.
// The interpreter fills the same slot as either a bare scalar or a sequence,
// so every accessor tolerates both shapes.
type Params map[string]any

// String returns the slot value as a string. A sequence yields its first
// string element. Missing slots and non-string scalars yield "".
func (p Params) String(key string) string {
	switch v := p[key].(type) {
	case string:
		return v
	case []any:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return s
			}
		}
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

// StringSlice returns the slot value as a sequence of strings. A bare scalar
// yields a one-element slice; a missing slot yields nil.
func (p Params) StringSlice(key string) []string {
	switch v := p[key].(type) {
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Quantity is the typed result of coercing a loosely typed quantity slot.
// Valid is false when the slot is absent, malformed, or not a positive
// integer; each operation decides how to branch on that (default to one on
// the add paths, ask for clarification on the requantify path).
type Quantity struct {
	Value int
	Valid bool
}

// OrDefault returns the coerced value, or def when coercion failed.
func (q Quantity) OrDefault(def int) int {
	if q.Valid {
		return q.Value
	}
	return def
}

// Quantity coerces the slot value to a positive integer. Accepts numbers,
// numeric strings, and one-element-or-more sequences of either; fractional
// values are truncated.
func (p Params) Quantity(key string) Quantity {
	return coerceQuantity(p[key])
}

// QuantitySlice coerces a sequence-valued quantity slot element by element.
// A bare scalar yields a one-element slice; a missing slot yields nil.
func (p Params) QuantitySlice(key string) []Quantity {
	switch v := p[key].(type) {
	case nil:
		return nil
	case []any:
		out := make([]Quantity, 0, len(v))
		for _, e := range v {
			out = append(out, coerceQuantity(e))
		}
		return out
	default:
		return []Quantity{coerceQuantity(v)}
	}
}

// PadQuantities extends qs until it covers n slots by repeating its last
// element, or a valid quantity of one when qs is empty.
func PadQuantities(qs []Quantity, n int) []Quantity {
	out := make([]Quantity, 0, n)
	out = append(out, qs...)
	for len(out) < n {
		if len(out) == 0 {
			out = append(out, Quantity{Value: 1, Valid: true})
			continue
		}
		out = append(out, out[len(out)-1])
	}
	return out
}

func coerceQuantity(v any) Quantity {
	switch n := v.(type) {
	case float64:
		return positive(int(n))
	case float32:
		return positive(int(n))
	case int:
		return positive(n)
	case int64:
		return positive(int(n))
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return Quantity{}
		}
		return positive(int(f))
	case []any:
		if len(n) > 0 {
			return coerceQuantity(n[0])
		}
	}
	return Quantity{}
}

func positive(n int) Quantity {
	if n < 1 {
		return Quantity{}
	}
	return Quantity{Value: n, Valid: true}
}
