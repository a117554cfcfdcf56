package lexicon

import (
	"reflect"
	"testing"
)

func TestConsonantVariants(t *testing.T) {
	tests := []struct {
		in   Atom
		want []Atom
	}{
		{"k", []Atom{"k", "k'", "g"}},
		{"k'", []Atom{"k'", "k", "g'"}},
		{"w", []Atom{"w"}},
	}
	for _, tt := range tests {
		if got := ConsonantVariants(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ConsonantVariants(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestVowelVariants(t *testing.T) {
	if got := VowelVariants("a"); !reflect.DeepEqual(got, []Atom{"a"}) {
		t.Errorf("VowelVariants(a) = %v", got)
	}
	got := VowelVariants("n")
	if got[0] != "n" || len(got) != 6 {
		t.Errorf("VowelVariants(n) = %v", got)
	}
}

func TestAssimilateNasal(t *testing.T) {
	tests := []struct {
		next Atom
		want Atom
	}{
		{"t", "n"},
		{"4", "n"},
		{"p", "m"},
		{"k", "N"},
		{"J", "J"},
		{"k'", "N'"},
		{"s", Moraic},
		{"h", Moraic},
	}
	for _, tt := range tests {
		if got := AssimilateNasal(tt.next); got != tt.want {
			t.Errorf("AssimilateNasal(%q) = %q, want %q", tt.next, got, tt.want)
		}
	}
}

func TestRequiredSets(t *testing.T) {
	vc := RequiredVC()
	if len(vc) != (len(Vowels)+1)*len(Consonants) {
		t.Fatalf("len(RequiredVC) = %d", len(vc))
	}
	seen := make(map[Pair]bool)
	for _, p := range vc {
		if seen[p] {
			t.Errorf("duplicate pair %v", p)
		}
		seen[p] = true
	}
	if !seen[Pair{"m", "p"}] || !seen[Pair{Moraic, "s"}] {
		t.Error("nasal pairs missing from RequiredVC")
	}

	vr := RequiredVR()
	if len(vr) != 6 || vr[5].Vowel != Moraic || vr[0].Next != Sil {
		t.Errorf("RequiredVR = %v", vr)
	}
}
