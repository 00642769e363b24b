// Package capability probes a variant for optional capabilities beyond the
// one a caller holds.
//
// A caller holding a ports.Soundable may not walk it. It must first ask
// whether the same value is also a ports.Walkable, and only use the
// returned reference when present:
//
//	if w, ok := capability.As[ports.Walkable](animal); ok {
//		w.Walk()
//	}
//
// Require is the fail-fast variant for callers that cannot proceed without
// the optional capability.
package capability

import (
	"reflect"
	"sort"

	"github.com/aalvaropc/solidkit/internal/domain"
)

// As returns v as T when the dynamic value satisfies T.
func As[T any](v any) (T, bool) {
	t, ok := v.(T)
	return t, ok
}

// Require returns v as T or an UnsupportedCapability error naming the
// capability. op labels the error.
func Require[T any](op string, v any) (T, error) {
	t, ok := As[T](v)
	if !ok {
		return t, domain.UnsupportedCapability(op, NameOf[T](), v)
	}
	return t, nil
}

// NameOf returns the short type name of capability T (e.g. "Rechargeable").
func NameOf[T any]() string {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if rt.Name() != "" {
		return rt.Name()
	}
	return rt.String()
}

// Probe tests a value for one named capability.
type Probe struct {
	Name  string
	check func(any) bool
}

// Supports reports whether v satisfies the probed capability.
func (p Probe) Supports(v any) bool {
	if p.check == nil {
		return false
	}
	return p.check(v)
}

// ProbeFor builds a Probe for capability T.
func ProbeFor[T any]() Probe {
	return Probe{
		Name: NameOf[T](),
		check: func(v any) bool {
			_, ok := As[T](v)
			return ok
		},
	}
}

// Supported returns the sorted names of the probes v satisfies.
func Supported(v any, probes ...Probe) []string {
	out := make([]string, 0, len(probes))
	for _, p := range probes {
		if p.Supports(v) {
			out = append(out, p.Name)
		}
	}
	sort.Strings(out)
	return out
}
