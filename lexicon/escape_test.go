package lexicon

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		atom Atom
		want string
	}{
		{Sil, "sil"},
		{"a", "a"},
		{"M", "m#"},
		{`N\`, "n#-"},
		{"tS", "ts#"},
		{`p\'`, "p-'"},
		{"?", "!"},
		{"a:", "a;"},
	}
	for _, tt := range tests {
		if got := Escape(tt.atom); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.atom, got, tt.want)
		}
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	atoms := append(Default().Atoms(), Sil, "N", "N'", "z", "Z", "?", "<a>", "a/b:c")
	for _, a := range atoms {
		if got := Unescape(Escape(a)); got != a {
			t.Errorf("Unescape(Escape(%q)) = %q", a, got)
		}
	}
}
