// Package estimate names the vaporization correlations so the CLI can
// list them and evaluate them from key=value parameters.
package estimate

import (
	"fmt"

	"chemprop/internal/phasechange"
)

// Correlation describes one estimation method: its required parameters
// in display order, the defaulted optional ones and the evaluator.
// Eval reads defaults for optional parameters the caller left out.
type Correlation struct {
	Name        string
	Description string
	Params      []string
	Optional    map[string]float64
	Eval        func(p map[string]float64) float64
}

// Missing reports the required parameters absent from p, in the
// correlation's display order.
func (c Correlation) Missing(p map[string]float64) []string {
	var missing []string
	for _, name := range c.Params {
		if _, ok := p[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

type Registry struct {
	correlations map[string]Correlation
	order        []string
}

// orDefault reads p[name], falling back to def when the caller left
// the parameter out.
func orDefault(p map[string]float64, name string, def float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	return def
}

func NewRegistry() *Registry {
	r := &Registry{correlations: make(map[string]Correlation)}

	r.add(Correlation{
		Name:        "clapeyron",
		Description: "Hvap at T from Tc and Pc by Clausius-Clapeyron [J/mol]",
		Params:      []string{"T", "Tc", "Pc"},
		Optional:    map[string]float64{"dZ": 1.0, "Psat": 101325},
		Eval: func(p map[string]float64) float64 {
			return phasechange.ClapeyronDZ(p["T"], p["Tc"], p["Pc"],
				orDefault(p, "dZ", 1.0), orDefault(p, "Psat", 101325))
		},
	})
	r.add(Correlation{
		Name:        "pitzer",
		Description: "Hvap at T from Tc and the acentric factor [J/mol]",
		Params:      []string{"T", "Tc", "omega"},
		Eval: func(p map[string]float64) float64 {
			return phasechange.Pitzer(p["T"], p["Tc"], p["omega"])
		},
	})
	r.add(Correlation{
		Name:        "riedel",
		Description: "Hvap at the normal boiling point, Riedel 1954 [J/mol]",
		Params:      []string{"Tb", "Tc", "Pc"},
		Eval: func(p map[string]float64) float64 {
			return phasechange.Riedel(p["Tb"], p["Tc"], p["Pc"])
		},
	})
	r.add(Correlation{
		Name:        "chen",
		Description: "Hvap at the normal boiling point, Chen 1965 [J/mol]",
		Params:      []string{"Tb", "Tc", "Pc"},
		Eval: func(p map[string]float64) float64 {
			return phasechange.Chen(p["Tb"], p["Tc"], p["Pc"])
		},
	})
	r.add(Correlation{
		Name:        "liu",
		Description: "Hvap at the normal boiling point, Liu 2001 [J/mol]",
		Params:      []string{"Tb", "Tc", "Pc"},
		Eval: func(p map[string]float64) float64 {
			return phasechange.Liu(p["Tb"], p["Tc"], p["Pc"])
		},
	})
	r.add(Correlation{
		Name:        "vetere",
		Description: "Hvap at the normal boiling point, Vetere 1995 [J/mol]",
		Params:      []string{"Tb", "Tc", "Pc"},
		Optional:    map[string]float64{"F": 1.0},
		Eval: func(p map[string]float64) float64 {
			return phasechange.VetereF(p["Tb"], p["Tc"], p["Pc"], orDefault(p, "F", 1.0))
		},
	})
	r.add(Correlation{
		Name:        "watson",
		Description: "Hvap at T extrapolated from a known point [J/mol]",
		Params:      []string{"T", "Hvap_ref", "T_ref", "Tc"},
		Optional:    map[string]float64{"n": 0.38},
		Eval: func(p map[string]float64) float64 {
			return phasechange.WatsonN(p["T"], p["Hvap_ref"], p["T_ref"], p["Tc"],
				orDefault(p, "n", 0.38))
		},
	})

	return r
}

func (r *Registry) add(c Correlation) {
	r.correlations[c.Name] = c
	r.order = append(r.order, c.Name)
}

// Get returns the named correlation.
func (r *Registry) Get(name string) (Correlation, error) {
	c, ok := r.correlations[name]
	if !ok {
		return Correlation{}, fmt.Errorf("unknown correlation: %s", name)
	}
	return c, nil
}

// Names returns the correlation names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// All returns every correlation in registration order.
func (r *Registry) All() []Correlation {
	out := make([]Correlation, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.correlations[name])
	}
	return out
}
