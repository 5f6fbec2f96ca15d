// Package phasechange covers phase transition properties of pure
// compounds:
//
//   - [Tb], [Tm], [Hfus]: boiling point, melting point and enthalpy of
//     fusion looked up by CAS number across ranked data sources
//   - [HvapFit], [HvapFromFit]: per-compound fitted Watson constants
//     for the enthalpy of vaporization
//   - [Clapeyron], [Pitzer], [Riedel], [Chen], [Liu], [Vetere],
//     [Watson]: estimation correlations as pure functions
//
// Every lookup comes in three forms: X(cas) picks the most preferred
// source, XUsing(cas, method) picks a named one, XMethods(cas) lists
// the sources able to answer, best first. Absence is (0, false);
// lookups never return errors. Correlations perform no range checking,
// so a temperature at or beyond Tc yields whatever IEEE 754 arithmetic
// produces.
//
// # Example
//
//	Tb, ok := phasechange.Tb("7732-18-5") // 373.124 K for water
//	hv := phasechange.Chen(329.2, 508.1, 4.7e6)
package phasechange
