package environ

import "testing"

func TestGWP(t *testing.T) {
	// The default horizon is the AR4 100 year assessment.
	v, ok := GWP("74-82-8")
	if !ok || v != 25 {
		t.Fatalf("GWP(methane) = %v, %v; want 25", v, ok)
	}

	v, ok = GWPUsing("74-82-8", IPCC20)
	if !ok || v != 72 {
		t.Fatalf("GWPUsing(methane, 20yr) = %v, %v; want 72", v, ok)
	}
	v, ok = GWPUsing("74-82-8", IPCC100SAR)
	if !ok || v != 21 {
		t.Fatalf("GWPUsing(methane, SAR) = %v, %v; want 21", v, ok)
	}
	v, ok = GWPUsing("74-82-8", IPCC500)
	if !ok || v != 7.6 {
		t.Fatalf("GWPUsing(methane, 500yr) = %v, %v; want 7.6", v, ok)
	}
}

func TestGWPBlankCell(t *testing.T) {
	// Nitrogen trifluoride was not assessed in the SAR; the blank cell
	// must drop the SAR method, not zero it.
	methods := GWPMethods("7783-54-2")
	want := []string{IPCC100, IPCC20, IPCC500}
	if len(methods) != len(want) {
		t.Fatalf("GWPMethods(NF3) = %v, want %v", methods, want)
	}
	for i := range want {
		if methods[i] != want[i] {
			t.Fatalf("GWPMethods(NF3) = %v, want %v", methods, want)
		}
	}

	if _, ok := GWPUsing("7783-54-2", IPCC100SAR); ok {
		t.Error("NF3 SAR value must be absent")
	}
	if v, _ := GWP("7783-54-2"); v != 17200 {
		t.Errorf("GWP(NF3) = %v, want 17200", v)
	}
}

func TestODP(t *testing.T) {
	// CFC-11 defines the scale.
	v, ok := ODP("75-69-4")
	if !ok || v != 1.0 {
		t.Fatalf("ODP(CFC-11) = %v, %v; want 1.0", v, ok)
	}

	// Halon-1301 far exceeds it; the conservative maximum leads.
	v, ok = ODP("75-63-8")
	if !ok || v != 15.9 {
		t.Fatalf("ODP(halon-1301) = %v, %v; want 15.9", v, ok)
	}
	v, ok = ODPUsing("75-63-8", ODP2Min)
	if !ok || v != 12.0 {
		t.Fatalf("ODPUsing(halon-1301, ODP2 Min) = %v, %v; want 12.0", v, ok)
	}

	if methods := ODPMethods("75-63-8"); len(methods) != 6 {
		t.Errorf("ODPMethods(halon-1301) = %v, want all six bounds", methods)
	}
}

func TestLogP(t *testing.T) {
	// CRC outranks Syrres where both report.
	v, ok := LogP("67-56-1")
	if !ok || v != -0.74 {
		t.Fatalf("LogP(methanol) = %v, %v; want -0.74", v, ok)
	}
	v, ok = LogPUsing("67-56-1", Syrres)
	if !ok || v != -0.77 {
		t.Fatalf("LogPUsing(methanol, SYRRES) = %v, %v; want -0.77", v, ok)
	}

	// Aniline is Syrres only.
	v, ok = LogP("62-53-3")
	if !ok || v != 0.9 {
		t.Fatalf("LogP(aniline) = %v, %v; want 0.9", v, ok)
	}
	methods := LogPMethods("62-53-3")
	if len(methods) != 1 || methods[0] != Syrres {
		t.Fatalf("LogPMethods(aniline) = %v, want [SYRRES]", methods)
	}
}

func TestAbsence(t *testing.T) {
	if _, ok := GWP("7732-18-5"); ok {
		t.Error("water has no GWP entry")
	}
	if _, ok := ODP("74-82-8"); ok {
		t.Error("methane has no ODP entry")
	}
	if _, ok := LogP("0000-00-0"); ok {
		t.Error("the null CAS has no logP")
	}
	if methods := ODPMethods("0000-00-0"); len(methods) != 0 {
		t.Errorf("ODPMethods of the null CAS = %v", methods)
	}
}
