package main

import (
	"fmt"
	"strconv"

	"chemprop/internal/casrn"
	"chemprop/internal/chemdata"
	"chemprop/internal/critical"
	"chemprop/internal/environ"
	"chemprop/internal/phasechange"
	"chemprop/internal/triple"
)

// property wires one CLI property key to its lookup triple. The
// temperature flag marks values the units setting may convert.
type property struct {
	key         string
	label       string
	unit        string
	temperature bool
	value       func(string) (float64, bool)
	using       func(string, string) (float64, bool)
	methods     func(string) []string
}

var properties = []property{
	{"tb", "Boiling point", "K", true, phasechange.Tb, phasechange.TbUsing, phasechange.TbMethods},
	{"tm", "Melting point", "K", true, phasechange.Tm, phasechange.TmUsing, phasechange.TmMethods},
	{"hfus", "Enthalpy of fusion", "J/mol", false, phasechange.Hfus, phasechange.HfusUsing, phasechange.HfusMethods},
	{"tt", "Triple point temperature", "K", true, triple.Tt, triple.TtUsing, triple.TtMethods},
	{"pt", "Triple point pressure", "Pa", false, triple.Pt, triple.PtUsing, triple.PtMethods},
	{"tc", "Critical temperature", "K", true, critical.Tc, critical.TcUsing, critical.TcMethods},
	{"pc", "Critical pressure", "Pa", false, critical.Pc, critical.PcUsing, critical.PcMethods},
	{"omega", "Acentric factor", "", false, critical.Omega, critical.OmegaUsing, critical.OmegaMethods},
	{"gwp", "Global warming potential", "", false, environ.GWP, environ.GWPUsing, environ.GWPMethods},
	{"odp", "Ozone depletion potential", "", false, environ.ODP, environ.ODPUsing, environ.ODPMethods},
	{"logp", "Octanol-water log P", "", false, environ.LogP, environ.LogPUsing, environ.LogPMethods},
}

func propertyByKey(key string) (property, error) {
	for _, p := range properties {
		if p.key == key {
			return p, nil
		}
	}
	return property{}, fmt.Errorf("unknown property %q (try one of %s)", key, propertyKeys())
}

func propertyKeys() string {
	s := ""
	for i, p := range properties {
		if i > 0 {
			s += ", "
		}
		s += p.key
	}
	return s
}

// resolveCompound turns a CLI compound argument into a CAS number: a
// syntactically valid CAS passes through untouched, anything else is
// treated as a chemical name.
func resolveCompound(arg string) (string, error) {
	if casrn.Valid(arg) {
		return arg, nil
	}
	if cas, ok := chemdata.ResolveName(arg); ok {
		return cas, nil
	}
	return "", fmt.Errorf("unknown compound %q: not a valid CAS number and no table knows the name", arg)
}

// chemicalName finds a display name for cas in any registered table.
func chemicalName(cas string) string {
	for _, src := range chemdata.All() {
		tbl, err := src.Table()
		if err != nil {
			continue
		}
		if name, ok := tbl.Chemical(cas); ok {
			return name
		}
	}
	return ""
}

// displayValue renders v in the configured units. Only temperatures
// are ever converted; everything else keeps its native unit.
func displayValue(p property, v float64) (string, string) {
	unit := p.unit
	if p.temperature && cfg.Units == "C" {
		v -= 273.15
		unit = "C"
	}
	return strconv.FormatFloat(v, 'g', -1, 64), unit
}
