// Package environ looks up environmental impact metrics by CAS number:
// global warming potential, ozone depletion potential and the
// octanol-water partition coefficient.
package environ

import (
	"chemprop/internal/assets"
	"chemprop/internal/chemdata"
)

// Method names accepted by GWPUsing, ODPUsing and LogPUsing. GWP
// methods are the IPCC assessment horizons, over CO2 = 1. ODP methods
// are the WMO ranges relative to CFC-11 = 1, with the conservative
// maxima ranked first.
const (
	IPCC100    = "IPCC (2007) 100yr"
	IPCC100SAR = "IPCC (2007) 100yr-SAR"
	IPCC20     = "IPCC (2007) 20yr"
	IPCC500    = "IPCC (2007) 500yr"

	ODP2Max    = "ODP2 Max"
	ODP1Max    = "ODP1 Max"
	ODP2Design = "ODP2 Design"
	ODP1Design = "ODP1 Design"
	ODP2Min    = "ODP2 Min"
	ODP1Min    = "ODP1 Min"

	CRC    = "CRC"
	Syrres = "SYRRES"
)

var (
	gwpTable   = chemdata.Register(chemdata.NewSource("GWP IPCC 2007", assets.FS, "data/environment/gwp_ipcc_2007.tsv"))
	odpTable   = chemdata.Register(chemdata.NewSource("ODP WMO", assets.FS, "data/environment/odp_wmo.tsv"))
	logpCRC    = chemdata.Register(chemdata.NewSource("logP CRC", assets.FS, "data/environment/logp_crc.tsv"))
	logpSyrres = chemdata.Register(chemdata.NewSource("logP Syrres", assets.FS, "data/environment/logp_syrres.tsv"))
)

var (
	gwpBindings = []chemdata.Binding{
		{Method: IPCC100, Lookup: chemdata.Column(gwpTable, "100yr GWP")},
		{Method: IPCC100SAR, Lookup: chemdata.Column(gwpTable, "SAR 100yr")},
		{Method: IPCC20, Lookup: chemdata.Column(gwpTable, "20yr GWP")},
		{Method: IPCC500, Lookup: chemdata.Column(gwpTable, "500yr GWP")},
	}

	odpBindings = []chemdata.Binding{
		{Method: ODP2Max, Lookup: chemdata.Column(odpTable, "ODP2 Max")},
		{Method: ODP1Max, Lookup: chemdata.Column(odpTable, "ODP1 Max")},
		{Method: ODP2Design, Lookup: chemdata.Column(odpTable, "ODP2 Design")},
		{Method: ODP1Design, Lookup: chemdata.Column(odpTable, "ODP1 Design")},
		{Method: ODP2Min, Lookup: chemdata.Column(odpTable, "ODP2 Min")},
		{Method: ODP1Min, Lookup: chemdata.Column(odpTable, "ODP1 Min")},
	}

	logpBindings = []chemdata.Binding{
		{Method: CRC, Lookup: chemdata.Column(logpCRC, "logP")},
		{Method: Syrres, Lookup: chemdata.Column(logpSyrres, "logP")},
	}
)

// GWP returns the global warming potential of cas on the most
// preferred assessment horizon reporting one.
func GWP(cas string) (float64, bool) {
	return chemdata.First(gwpBindings, cas)
}

// GWPUsing returns the global warming potential on one named horizon.
func GWPUsing(cas, method string) (float64, bool) {
	return chemdata.ByMethod(gwpBindings, cas, method)
}

// GWPMethods lists the horizons reporting a value for cas.
func GWPMethods(cas string) []string {
	return chemdata.MethodNames(gwpBindings, cas)
}

// ODP returns the ozone depletion potential of cas from the most
// preferred WMO range bound.
func ODP(cas string) (float64, bool) {
	return chemdata.First(odpBindings, cas)
}

// ODPUsing returns the ozone depletion potential from one named bound.
func ODPUsing(cas, method string) (float64, bool) {
	return chemdata.ByMethod(odpBindings, cas, method)
}

// ODPMethods lists the bounds reporting a value for cas.
func ODPMethods(cas string) []string {
	return chemdata.MethodNames(odpBindings, cas)
}

// LogP returns the base 10 logarithm of the octanol-water partition
// coefficient of cas.
func LogP(cas string) (float64, bool) {
	return chemdata.First(logpBindings, cas)
}

// LogPUsing returns the partition coefficient from one named source.
func LogPUsing(cas, method string) (float64, bool) {
	return chemdata.ByMethod(logpBindings, cas, method)
}

// LogPMethods lists the sources reporting a value for cas.
func LogPMethods(cas string) []string {
	return chemdata.MethodNames(logpBindings, cas)
}
