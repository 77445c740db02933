package dict

import "testing"

func TestLookupExact(t *testing.T) {
	d := New("currency", false, []Entry{
		{Canonical: "USD", Surfaces: []string{"$", "usd", "долларов"}},
		{Canonical: "RUB", Surfaces: []string{"руб", "рублей", "₽"}},
	})

	cases := []struct {
		span, want string
	}{
		{"$", "USD"},
		{"USD", "USD"},
		{"Рублей", "RUB"},
		{"₽", "RUB"},
	}
	for _, c := range cases {
		got, ok := d.Lookup(c.span)
		if !ok || got != c.want {
			t.Errorf("Lookup(%q) = %q, %v; want %q", c.span, got, ok, c.want)
		}
	}

	if _, ok := d.Lookup("евро"); ok {
		t.Error("Lookup should miss on unregistered surface")
	}
}

func TestLookupCollapsesWhitespace(t *testing.T) {
	d := New("city", false, []Entry{
		{Canonical: "Нижний Новгород", Surfaces: []string{"нижний новгород"}},
	})
	got, ok := d.Lookup("Нижний   Новгород")
	if !ok || got != "Нижний Новгород" {
		t.Errorf("Lookup = %q, %v", got, ok)
	}
}

func TestLookupMorphVariants(t *testing.T) {
	d := New("city", true, []Entry{
		{Canonical: "Москва", Surfaces: []string{"москва"}},
		{Canonical: "Сокольники", Surfaces: []string{"сокольники"}},
	})
	for _, span := range []string{"Москва", "Москве", "москву", "Сокольниках"} {
		if _, ok := d.Lookup(span); !ok {
			t.Errorf("morph Lookup missed %q", span)
		}
	}
}

func TestLookupDeterministic(t *testing.T) {
	d := New("grade", true, []Entry{
		{Canonical: "senior", Surfaces: []string{"senior", "сеньор", "старший"}},
	})
	for i := 0; i < 3; i++ {
		got, ok := d.Lookup("старшего")
		if !ok || got != "senior" {
			t.Fatalf("Lookup(старшего) = %q, %v", got, ok)
		}
	}
}

func TestMaxRunCountsTokens(t *testing.T) {
	d := New("scale", false, []Entry{
		{Canonical: "1000", Surfaces: []string{"к", "тыс", "т.р."}},
	})
	// "т.р." tokenizes to 4 tokens: т . р .
	if d.MaxRun() != 4 {
		t.Errorf("MaxRun = %d, want 4", d.MaxRun())
	}
}

func TestSurfacesIncludeStems(t *testing.T) {
	d := New("city", true, []Entry{
		{Canonical: "Москва", Surfaces: []string{"москва"}},
	})
	var hasStem bool
	for _, s := range d.Surfaces() {
		if s == "москв" {
			hasStem = true
		}
	}
	if !hasStem {
		t.Errorf("Surfaces() = %v, want stem москв included", d.Surfaces())
	}
}
