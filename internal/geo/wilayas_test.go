package geo

import (
	"testing"

	"smart-routing-service/internal/domain"
)

func TestResolveKnownWilaya(t *testing.T) {
	got := Resolve("Oran")
	want := domain.Coordinates{Lat: 35.70, Lng: -0.65}
	if got != want {
		t.Fatalf("Resolve(Oran) = %v, want %v", got, want)
	}
}

func TestResolveUnknownWilayaFallsBack(t *testing.T) {
	// Fallback is idempotent: every unknown name resolves to the same
	// capital coordinate, never an error.
	for i := 0; i < 3; i++ {
		got := Resolve("Atlantis")
		if got != DefaultCoordinates {
			t.Fatalf("Resolve(Atlantis) = %v, want %v", got, DefaultCoordinates)
		}
	}

	if DefaultCoordinates != (domain.Coordinates{Lat: 36.75, Lng: 3.04}) {
		t.Fatalf("default coordinate = %v, want Algiers centre", DefaultCoordinates)
	}
}

func TestResolveIsExactMatch(t *testing.T) {
	// Lookup is case and diacritic sensitive; near-misses fall back.
	if _, ok := Lookup("oran"); ok {
		t.Error("lowercase name should not match")
	}
	if _, ok := Lookup(" Oran"); ok {
		t.Error("padded name should not match")
	}
}

func TestAliasesResolveToCanonicalCoordinates(t *testing.T) {
	cases := map[string]string{
		"Algiers": "Alger",
		"Bejaia":  "Béjaïa",
		"Setif":   "Sétif",
	}

	for alias, canonical := range cases {
		a, ok := Lookup(alias)
		if !ok {
			t.Errorf("alias %q not found", alias)
			continue
		}
		c, ok := Lookup(canonical)
		if !ok {
			t.Errorf("canonical %q not found", canonical)
			continue
		}
		if a != c {
			t.Errorf("alias %q = %v, canonical %q = %v", alias, a, canonical, c)
		}
	}
}

func TestTableHas58Wilayas(t *testing.T) {
	table := All()
	if len(table) != 58 {
		t.Fatalf("table has %d wilayas, want 58", len(table))
	}

	seen := make(map[int]bool, len(table))
	for i, w := range table {
		if w.Code != i+1 {
			t.Errorf("row %d has code %d, want %d", i, w.Code, i+1)
		}
		if seen[w.Code] {
			t.Errorf("duplicate code %d", w.Code)
		}
		seen[w.Code] = true
	}
}

func TestSouthernClassification(t *testing.T) {
	southern := []string{"Adrar", "Tamanrasset", "Tindouf", "Djanet", "In Guezzam"}
	northern := []string{"Alger", "Oran", "Constantine", "Annaba", "Tizi Ouzou"}

	for _, name := range southern {
		if !IsSouthern(name) {
			t.Errorf("IsSouthern(%q) = false, want true", name)
		}
	}
	for _, name := range northern {
		if IsSouthern(name) {
			t.Errorf("IsSouthern(%q) = true, want false", name)
		}
	}

	if IsSouthern("Atlantis") {
		t.Error("unknown wilaya should not be southern")
	}
}
