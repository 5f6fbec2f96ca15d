package estimate

import (
	"testing"

	"chemprop/internal/phasechange"
)

func TestGet(t *testing.T) {
	r := NewRegistry()

	c, err := r.Get("chen")
	if err != nil {
		t.Fatal(err)
	}
	if c.Name != "chen" {
		t.Errorf("Get(chen).Name = %q", c.Name)
	}

	if _, err := r.Get("antoine"); err == nil {
		t.Error("unknown correlation must error")
	}
}

func TestNamesOrder(t *testing.T) {
	r := NewRegistry()
	names := r.Names()
	want := []string{"clapeyron", "pitzer", "riedel", "chen", "liu", "vetere", "watson"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}
	if len(r.All()) != len(want) {
		t.Errorf("All() returned %d correlations", len(r.All()))
	}
}

func TestEvalMatchesDirectCall(t *testing.T) {
	r := NewRegistry()
	p := map[string]float64{"Tb": 294, "Tc": 466, "Pc": 5.55e6}

	for name, want := range map[string]float64{
		"riedel": phasechange.Riedel(294, 466, 5.55e6),
		"chen":   phasechange.Chen(294, 466, 5.55e6),
		"liu":    phasechange.Liu(294, 466, 5.55e6),
		"vetere": phasechange.Vetere(294, 466, 5.55e6),
	} {
		c, err := r.Get(name)
		if err != nil {
			t.Fatal(err)
		}
		if got := c.Eval(p); got != want {
			t.Errorf("%s.Eval = %v, want %v", name, got, want)
		}
	}
}

func TestOptionalDefaults(t *testing.T) {
	r := NewRegistry()

	watson, _ := r.Get("watson")
	p := map[string]float64{"T": 320, "Hvap_ref": 43908, "T_ref": 300, "Tc": 647.14}
	if got, want := watson.Eval(p), phasechange.Watson(320, 43908, 300, 647.14); got != want {
		t.Errorf("watson default n: got %v, want %v", got, want)
	}

	p["n"] = 0.8
	if got, want := watson.Eval(p), phasechange.WatsonN(320, 43908, 300, 647.14, 0.8); got != want {
		t.Errorf("watson explicit n: got %v, want %v", got, want)
	}

	clap, _ := r.Get("clapeyron")
	q := map[string]float64{"T": 294, "Tc": 466, "Pc": 5.55e6}
	if got, want := clap.Eval(q), phasechange.Clapeyron(294, 466, 5.55e6); got != want {
		t.Errorf("clapeyron defaults: got %v, want %v", got, want)
	}
}

func TestMissing(t *testing.T) {
	r := NewRegistry()
	watson, _ := r.Get("watson")

	missing := watson.Missing(map[string]float64{"T": 320, "Tc": 647.14})
	if len(missing) != 2 || missing[0] != "Hvap_ref" || missing[1] != "T_ref" {
		t.Errorf("Missing = %v, want [Hvap_ref T_ref]", missing)
	}

	if m := watson.Missing(map[string]float64{
		"T": 320, "Hvap_ref": 43908, "T_ref": 300, "Tc": 647.14,
	}); len(m) != 0 {
		t.Errorf("Missing on complete params = %v", m)
	}
}
