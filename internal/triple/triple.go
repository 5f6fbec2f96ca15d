// Package triple looks up triple point temperatures and pressures by
// CAS number.
package triple

import (
	"chemprop/internal/assets"
	"chemprop/internal/chemdata"
	"chemprop/internal/phasechange"
)

// Method names accepted by TtUsing and PtUsing.
const (
	// Staveley is the Staveley compilation of measured triple points.
	Staveley = "STAVELEY"
	// Melting approximates the triple point temperature with the
	// melting point. The two differ by hundredths of a kelvin for most
	// compounds.
	Melting = "MELTING"
)

var staveley = chemdata.Register(chemdata.NewSource("Triple Staveley", assets.FS, "data/triple/staveley.tsv"))

var (
	ttBindings = []chemdata.Binding{
		{Method: Staveley, Lookup: chemdata.Column(staveley, "Tt")},
		{Method: Melting, Lookup: phasechange.Tm},
	}
	ptBindings = []chemdata.Binding{
		{Method: Staveley, Lookup: chemdata.Column(staveley, "Pt")},
	}
)

// Tt returns the triple point temperature in K, preferring measured
// data over the melting point approximation.
func Tt(cas string) (float64, bool) {
	return chemdata.First(ttBindings, cas)
}

// TtUsing returns the triple point temperature served by one named
// method.
func TtUsing(cas, method string) (float64, bool) {
	return chemdata.ByMethod(ttBindings, cas, method)
}

// TtMethods lists the methods able to report a triple point
// temperature for cas.
func TtMethods(cas string) []string {
	return chemdata.MethodNames(ttBindings, cas)
}

// Pt returns the triple point pressure in Pa.
func Pt(cas string) (float64, bool) {
	return chemdata.First(ptBindings, cas)
}

// PtUsing returns the triple point pressure served by one named method.
func PtUsing(cas, method string) (float64, bool) {
	return chemdata.ByMethod(ptBindings, cas, method)
}

// PtMethods lists the methods able to report a triple point pressure
// for cas.
func PtMethods(cas string) []string {
	return chemdata.MethodNames(ptBindings, cas)
}
