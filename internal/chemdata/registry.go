package chemdata

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Global table registry. Property packages register their sources at
// package init; the CLI uses the registry to enumerate, preload and
// dump tables, including coefficient tables no lookup function models.
var (
	regMu    sync.RWMutex
	byName   = make(map[string]*Source)
	regOrder []string
)

// Register adds s to the global registry and returns it, so property
// packages can register in their var blocks. Two sources under one
// name is a programming error and panics.
func Register(s *Source) *Source {
	regMu.Lock()
	defer regMu.Unlock()
	if _, dup := byName[s.name]; dup {
		panic("chemdata: duplicate source " + s.name)
	}
	byName[s.name] = s
	regOrder = append(regOrder, s.name)
	return s
}

// Names returns every registered table name in registration order.
func Names() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	return append([]string(nil), regOrder...)
}

// All returns the registered sources in registration order.
func All() []*Source {
	regMu.RLock()
	defer regMu.RUnlock()
	out := make([]*Source, 0, len(regOrder))
	for _, name := range regOrder {
		out = append(out, byName[name])
	}
	return out
}

// ByName returns the registered source called name.
func ByName(name string) (*Source, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	s, ok := byName[name]
	return s, ok
}

// TableByName loads and returns the registered table called name.
func TableByName(name string) (*Table, error) {
	s, ok := ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, name)
	}
	return s.Table()
}

// Preload eagerly loads every registered table and joins the errors of
// the ones that failed to parse. Lookups stay usable either way; a
// failed table only ever reports absence.
func Preload() error {
	var errs []error
	for _, s := range All() {
		if _, err := s.Table(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ResolveName finds the CAS number for a chemical name, matched case
// insensitively across every registered table in registration order.
func ResolveName(name string) (string, bool) {
	for _, s := range All() {
		tbl, err := s.Table()
		if err != nil {
			continue
		}
		for _, cas := range tbl.order {
			if strings.EqualFold(tbl.names[cas], name) {
				return cas, true
			}
		}
	}
	return "", false
}
