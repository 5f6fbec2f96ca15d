package phasechange

import "math"

// R is the molar gas constant in J/(mol*K).
const R = 8.31446261815324

// Clapeyron estimates the enthalpy of vaporization at T, in J/mol,
// from the Clausius-Clapeyron equation integrated between Psat and Pc,
// taking dZ = 1 and Psat = 1 atm. T, Tc in K, Pc in Pa.
func Clapeyron(T, Tc, Pc float64) float64 {
	return ClapeyronDZ(T, Tc, Pc, 1.0, 101325.0)
}

// ClapeyronDZ is Clapeyron with an explicit compressibility difference
// dZ between the phases and an explicit saturation pressure Psat in Pa.
//
//	Hvap = R*T*dZ*ln(Pc/Psat) / (1 - T/Tc)
func ClapeyronDZ(T, Tc, Pc, dZ, Psat float64) float64 {
	return R * T * dZ * math.Log(Pc/Psat) / (1.0 - T/Tc)
}

// Pitzer estimates the enthalpy of vaporization at T, in J/mol, from
// the critical temperature and the acentric factor, after Pitzer's
// corresponding states expansion.
func Pitzer(T, Tc, omega float64) float64 {
	Tr := T / Tc
	return R * Tc * (7.08*math.Pow(1.0-Tr, 0.354) + 10.95*omega*math.Pow(1.0-Tr, 0.456))
}

// Riedel estimates the enthalpy of vaporization at the normal boiling
// point, in J/mol, after Riedel (1954). Tb, Tc in K, Pc in Pa.
func Riedel(Tb, Tc, Pc float64) float64 {
	Tbr := Tb / Tc
	// Pc enters in bar.
	return 1.093 * R * Tb * (math.Log(Pc/1e5) - 1.013) / (0.93 - Tbr)
}

// Chen estimates the enthalpy of vaporization at the normal boiling
// point, in J/mol, after Chen (1965). Tb, Tc in K, Pc in Pa.
func Chen(Tb, Tc, Pc float64) float64 {
	Tbr := Tb / Tc
	return R * Tb * (3.978*Tbr - 3.958 + 1.555*math.Log(Pc/1e5)) / (1.07 - Tbr)
}

// Liu estimates the enthalpy of vaporization at the normal boiling
// point, in J/mol, after Liu (2001). Tb, Tc in K, Pc in Pa.
func Liu(Tb, Tc, Pc float64) float64 {
	Tbr := Tb / Tc
	return R * Tb * math.Pow(Tb/220.0, 0.0627) * math.Pow(1.0-Tbr, 0.38) *
		math.Log(Pc/101325.0) / (1.0 - Tbr + 0.38*Tbr*math.Log(Tbr))
}

// Vetere estimates the enthalpy of vaporization at the normal boiling
// point, in J/mol, after Vetere (1995), with the recommended F = 1.
// Tb, Tc in K, Pc in Pa.
func Vetere(Tb, Tc, Pc float64) float64 {
	return VetereF(Tb, Tc, Pc, 1.0)
}

// VetereF is Vetere with an explicit F constant.
func VetereF(Tb, Tc, Pc, F float64) float64 {
	Tbr := Tb / Tc
	// Pc enters in bar.
	Pcb := Pc / 1e5
	num := math.Pow(1.0-Tbr, 0.38) * (math.Log(Pcb) - 0.513 + 0.5066/(Pcb*Tbr*Tbr))
	den := 1.0 - Tbr + F*(1.0-math.Pow(1.0-Tbr, 0.38))*math.Log(Tbr)
	return R * Tb * num / den
}

// Watson extrapolates a known enthalpy of vaporization HvapRef at Tref
// to another temperature T, with the customary exponent 0.38. All
// temperatures in K, enthalpies in J/mol.
func Watson(T, HvapRef, Tref, Tc float64) float64 {
	return WatsonN(T, HvapRef, Tref, Tc, 0.38)
}

// WatsonN is Watson with an explicit exponent.
//
//	Hvap = HvapRef * ((1 - T/Tc)/(1 - Tref/Tc))^n
func WatsonN(T, HvapRef, Tref, Tc, n float64) float64 {
	return HvapRef * math.Pow((1.0-T/Tc)/(1.0-Tref/Tc), n)
}
