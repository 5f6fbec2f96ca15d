package phasechange_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"chemprop/internal/casrn"
	"chemprop/internal/chemdata"
	"chemprop/internal/critical"
	"chemprop/internal/environ"
	"chemprop/internal/phasechange"
	"chemprop/internal/triple"
)

// property bundles the three lookup forms of one property so the same
// consistency checks can sweep every family and every embedded table.
type property struct {
	name    string
	tables  []string
	value   func(string) (float64, bool)
	using   func(string, string) (float64, bool)
	methods func(string) []string
}

var properties = []property{
	{"Tb", []string{"Tb CRC Organics", "Tb CRC Inorganics", "Tb Yaws"},
		phasechange.Tb, phasechange.TbUsing, phasechange.TbMethods},
	{"Tm", []string{"Tm Open Notebook", "Tm CRC Inorganics"},
		phasechange.Tm, phasechange.TmUsing, phasechange.TmMethods},
	{"Hfus", []string{"Hfus CRC", "Hfus WebBook"},
		phasechange.Hfus, phasechange.HfusUsing, phasechange.HfusMethods},
	{"Tt", []string{"Triple Staveley"},
		triple.Tt, triple.TtUsing, triple.TtMethods},
	{"Pt", []string{"Triple Staveley"},
		triple.Pt, triple.PtUsing, triple.PtMethods},
	{"GWP", []string{"GWP IPCC 2007"},
		environ.GWP, environ.GWPUsing, environ.GWPMethods},
	{"ODP", []string{"ODP WMO"},
		environ.ODP, environ.ODPUsing, environ.ODPMethods},
	{"logP", []string{"logP CRC", "logP Syrres"},
		environ.LogP, environ.LogPUsing, environ.LogPMethods},
	{"Tc", []string{"Critical IUPAC", "Critical Yaws"},
		critical.Tc, critical.TcUsing, critical.TcMethods},
	{"Pc", []string{"Critical IUPAC", "Critical Yaws"},
		critical.Pc, critical.PcUsing, critical.PcMethods},
	{"omega", []string{"Acentric PSRK", "Acentric Yaws"},
		critical.Omega, critical.OmegaUsing, critical.OmegaMethods},
}

var _ = Describe("embedded tables", func() {
	It("all parse", func() {
		Expect(chemdata.Preload()).To(Succeed())
	})

	It("carry only valid CAS registry numbers", func() {
		for _, src := range chemdata.All() {
			tbl, err := src.Table()
			Expect(err).NotTo(HaveOccurred())
			for _, cas := range tbl.CAS() {
				Expect(casrn.Valid(cas)).To(BeTrue(),
					"table %q carries invalid CAS %q", tbl.Name(), cas)
			}
		}
	})

	It("name every compound", func() {
		for _, src := range chemdata.All() {
			tbl, err := src.Table()
			Expect(err).NotTo(HaveOccurred())
			for _, cas := range tbl.CAS() {
				name, ok := tbl.Chemical(cas)
				Expect(ok).To(BeTrue())
				Expect(name).NotTo(BeEmpty(), "table %q row %s", tbl.Name(), cas)
			}
		}
	})
})

var _ = Describe("lookup consistency", func() {
	for _, p := range properties {
		p := p
		It("holds for "+p.name, func() {
			for _, tname := range p.tables {
				tbl, err := chemdata.TableByName(tname)
				Expect(err).NotTo(HaveOccurred())
				for _, cas := range tbl.CAS() {
					methods := p.methods(cas)
					Expect(methods).NotTo(BeEmpty(),
						"%s methods of %s from %q", p.name, cas, tname)

					// Every advertised method answers, and the plain
					// lookup agrees with the best advertised method.
					for _, m := range methods {
						v, ok := p.using(cas, m)
						Expect(ok).To(BeTrue(), "%s(%s) via %s", p.name, cas, m)
						Expect(math.IsNaN(v)).To(BeFalse())
					}
					best, ok := p.value(cas)
					Expect(ok).To(BeTrue())
					first, _ := p.using(cas, methods[0])
					Expect(best).To(Equal(first))
				}
			}
		})
	}

	It("reports absence for an unregistered compound", func() {
		for _, p := range properties {
			_, ok := p.value("0000-00-0")
			Expect(ok).To(BeFalse(), "%s of the null CAS", p.name)
			Expect(p.methods("0000-00-0")).To(BeEmpty())
		}
	})

	It("repeats lookups unchanged after the first load", func() {
		a, okA := phasechange.Tb("7732-18-5")
		b, okB := phasechange.Tb("7732-18-5")
		Expect(okA).To(BeTrue())
		Expect(okB).To(BeTrue())
		Expect(a).To(Equal(b))
	})
})

var _ = Describe("vaporization fits", func() {
	It("return the anchor value at the reference temperature", func() {
		tbl, err := chemdata.TableByName("Hvap Watson Fits")
		Expect(err).NotTo(HaveOccurred())
		for _, cas := range tbl.CAS() {
			fit, ok := phasechange.HvapFit(cas)
			Expect(ok).To(BeTrue(), "fit row %s", cas)
			Expect(fit.Tref).To(BeNumerically("<", fit.Tc))

			v, ok := phasechange.HvapFromFit(cas, fit.Tref)
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal(fit.HvapRef))
		}
	})
})
