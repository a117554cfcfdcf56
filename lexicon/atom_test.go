package lexicon

import "testing"

func TestAtomSets(t *testing.T) {
	tests := []struct {
		atom    Atom
		vowel   bool
		plosive bool
		voiced  bool
	}{
		{"a", true, false, true},
		{`N\`, true, false, true},
		{"k", false, true, false},
		{"g'", false, true, true},
		{"s", false, false, false},
		{`p\'`, false, false, false},
		{"m", false, false, true},
		{Sil, false, false, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.atom), func(t *testing.T) {
			if got := IsVowel(tt.atom); got != tt.vowel {
				t.Errorf("IsVowel(%q) = %v, want %v", tt.atom, got, tt.vowel)
			}
			if got := IsPlosive(tt.atom); got != tt.plosive {
				t.Errorf("IsPlosive(%q) = %v, want %v", tt.atom, got, tt.plosive)
			}
			if got := IsVoiced(tt.atom); got != tt.voiced {
				t.Errorf("IsVoiced(%q) = %v, want %v", tt.atom, got, tt.voiced)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	if got := Join([]Atom{"a", `N\`, "k'"}); got != `a N\ k'` {
		t.Errorf("Join = %q", got)
	}
	if got := Join(nil); got != "" {
		t.Errorf("Join(nil) = %q", got)
	}
}
