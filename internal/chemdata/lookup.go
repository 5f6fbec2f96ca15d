package chemdata

// Binding ties a public method name to the lookup that serves it.
// Property packages declare an ordered slice of bindings per property,
// most preferred method first. Method ranking never depends on the
// compound, only on the slice order.
type Binding struct {
	Method string
	Lookup func(cas string) (float64, bool)
}

// Column adapts one column of a source into a Binding lookup.
func Column(s *Source, column string) func(string) (float64, bool) {
	return func(cas string) (float64, bool) {
		return s.Value(cas, column)
	}
}

// First returns the value from the highest priority binding that has
// one for cas.
func First(bindings []Binding, cas string) (float64, bool) {
	for _, b := range bindings {
		if v, ok := b.Lookup(cas); ok {
			return v, true
		}
	}
	return 0, false
}

// ByMethod returns the value served by the named method. Unknown
// compounds and unknown method names both report absence.
func ByMethod(bindings []Binding, cas, method string) (float64, bool) {
	for _, b := range bindings {
		if b.Method == method {
			return b.Lookup(cas)
		}
	}
	return 0, false
}

// MethodNames lists the methods able to serve cas, in priority order.
// The result is nil when none can, and a fresh slice otherwise.
func MethodNames(bindings []Binding, cas string) []string {
	var methods []string
	for _, b := range bindings {
		if _, ok := b.Lookup(cas); ok {
			methods = append(methods, b.Method)
		}
	}
	return methods
}
