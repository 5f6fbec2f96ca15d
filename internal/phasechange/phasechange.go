package phasechange

import "chemprop/internal/chemdata"

// Tb returns the normal boiling point of the compound with the given
// CAS number, in K, from the most preferred source reporting one.
func Tb(cas string) (float64, bool) {
	return chemdata.First(tbBindings, cas)
}

// TbUsing returns the boiling point reported by one named method.
func TbUsing(cas, method string) (float64, bool) {
	return chemdata.ByMethod(tbBindings, cas, method)
}

// TbMethods lists the methods able to report a boiling point for cas.
func TbMethods(cas string) []string {
	return chemdata.MethodNames(tbBindings, cas)
}

// Tm returns the melting point in K.
func Tm(cas string) (float64, bool) {
	return chemdata.First(tmBindings, cas)
}

// TmUsing returns the melting point reported by one named method.
func TmUsing(cas, method string) (float64, bool) {
	return chemdata.ByMethod(tmBindings, cas, method)
}

// TmMethods lists the methods able to report a melting point for cas.
func TmMethods(cas string) []string {
	return chemdata.MethodNames(tmBindings, cas)
}

// Hfus returns the enthalpy of fusion at the melting point, in J/mol.
func Hfus(cas string) (float64, bool) {
	return chemdata.First(hfusBindings, cas)
}

// HfusUsing returns the enthalpy of fusion reported by one named method.
func HfusUsing(cas, method string) (float64, bool) {
	return chemdata.ByMethod(hfusBindings, cas, method)
}

// HfusMethods lists the methods able to report an enthalpy of fusion
// for cas.
func HfusMethods(cas string) []string {
	return chemdata.MethodNames(hfusBindings, cas)
}

// FitCoefficients holds the fitted Watson constants for one compound:
// critical temperature, a reference temperature, the enthalpy of
// vaporization measured there and the Watson exponent.
type FitCoefficients struct {
	Tc      float64
	Tref    float64
	HvapRef float64
	N       float64
}

// HvapFit returns the fitted vaporization constants for cas.
func HvapFit(cas string) (FitCoefficients, bool) {
	var c FitCoefficients
	var ok bool
	if c.Tc, ok = hvapFits.Value(cas, "Tc"); !ok {
		return FitCoefficients{}, false
	}
	if c.Tref, ok = hvapFits.Value(cas, "Tref"); !ok {
		return FitCoefficients{}, false
	}
	if c.HvapRef, ok = hvapFits.Value(cas, "HvapRef"); !ok {
		return FitCoefficients{}, false
	}
	if c.N, ok = hvapFits.Value(cas, "n"); !ok {
		return FitCoefficients{}, false
	}
	return c, true
}

// HvapFromFit evaluates the fitted Watson extrapolation for cas at
// temperature T, in J/mol.
func HvapFromFit(cas string, T float64) (float64, bool) {
	c, ok := HvapFit(cas)
	if !ok {
		return 0, false
	}
	return WatsonN(T, c.HvapRef, c.Tref, c.Tc, c.N), true
}
