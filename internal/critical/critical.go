// Package critical looks up critical constants and acentric factors by
// CAS number. These feed the vaporization correlations in package
// phasechange. The critical volume and compressibility columns are not
// function modeled; they stay reachable through the chemdata registry.
package critical

import (
	"chemprop/internal/assets"
	"chemprop/internal/chemdata"
)

// Method names accepted by TcUsing, PcUsing and OmegaUsing.
const (
	// IUPAC is the IUPAC critical property compilation.
	IUPAC = "IUPAC"
	// Yaws is the Yaws collection of critical property data.
	Yaws = "YAWS"
	// PSRK are the acentric factors of the PSRK equation of state
	// parameterization.
	PSRK = "PSRK"
)

var (
	critIUPAC    = chemdata.Register(chemdata.NewSource("Critical IUPAC", assets.FS, "data/critical/iupac.tsv"))
	critYaws     = chemdata.Register(chemdata.NewSource("Critical Yaws", assets.FS, "data/critical/yaws.tsv"))
	acentricPSRK = chemdata.Register(chemdata.NewSource("Acentric PSRK", assets.FS, "data/critical/acentric_psrk.tsv"))
	acentricYaws = chemdata.Register(chemdata.NewSource("Acentric Yaws", assets.FS, "data/critical/acentric_yaws.tsv"))
)

var (
	tcBindings = []chemdata.Binding{
		{Method: IUPAC, Lookup: chemdata.Column(critIUPAC, "Tc")},
		{Method: Yaws, Lookup: chemdata.Column(critYaws, "Tc")},
	}
	pcBindings = []chemdata.Binding{
		{Method: IUPAC, Lookup: chemdata.Column(critIUPAC, "Pc")},
		{Method: Yaws, Lookup: chemdata.Column(critYaws, "Pc")},
	}
	omegaBindings = []chemdata.Binding{
		{Method: PSRK, Lookup: chemdata.Column(acentricPSRK, "omega")},
		{Method: Yaws, Lookup: chemdata.Column(acentricYaws, "omega")},
	}
)

// Tc returns the critical temperature in K.
func Tc(cas string) (float64, bool) {
	return chemdata.First(tcBindings, cas)
}

// TcUsing returns the critical temperature from one named source.
func TcUsing(cas, method string) (float64, bool) {
	return chemdata.ByMethod(tcBindings, cas, method)
}

// TcMethods lists the sources reporting a critical temperature for cas.
func TcMethods(cas string) []string {
	return chemdata.MethodNames(tcBindings, cas)
}

// Pc returns the critical pressure in Pa.
func Pc(cas string) (float64, bool) {
	return chemdata.First(pcBindings, cas)
}

// PcUsing returns the critical pressure from one named source.
func PcUsing(cas, method string) (float64, bool) {
	return chemdata.ByMethod(pcBindings, cas, method)
}

// PcMethods lists the sources reporting a critical pressure for cas.
func PcMethods(cas string) []string {
	return chemdata.MethodNames(pcBindings, cas)
}

// Omega returns the acentric factor.
func Omega(cas string) (float64, bool) {
	return chemdata.First(omegaBindings, cas)
}

// OmegaUsing returns the acentric factor from one named source.
func OmegaUsing(cas, method string) (float64, bool) {
	return chemdata.ByMethod(omegaBindings, cas, method)
}

// OmegaMethods lists the sources reporting an acentric factor for cas.
func OmegaMethods(cas string) []string {
	return chemdata.MethodNames(omegaBindings, cas)
}
