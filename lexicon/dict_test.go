package lexicon

import (
	"strings"
	"testing"
)

const testDict = `# kana	romaji	atoms
か	ka	k a
-	k	k
ん	n	N\
-	n	n
`

func TestLoadDict(t *testing.T) {
	d, err := Load(strings.NewReader(testDict))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	u, ok := d.Kana("か")
	if !ok {
		t.Fatal("か not found")
	}
	if u.Romaji != "ka" || len(u.Atoms) != 2 {
		t.Errorf("か = %+v", u)
	}

	if _, ok := d.Kana("き"); ok {
		t.Error("き should not be in a custom dictionary")
	}

	u, ok = d.Romaji("k")
	if !ok || u.Kana != "" || u.Category != Consonant {
		t.Errorf("k = %+v, ok=%v", u, ok)
	}
}

func TestLoadDictErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"missing field", "か\tka\n"},
		{"too many atoms", "きゃ\tkya\tk j a\n"},
		{"empty", "# nothing\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(tt.in)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRomajiAsPrefersCategory(t *testing.T) {
	d := Default()

	u, ok := d.RomajiAs("n", Vowel, NasalCoda)
	if !ok || u.Atoms[0] != Moraic {
		t.Errorf("vowel-position n = %+v, want moraic nasal", u)
	}

	u, ok = d.RomajiAs("n", Consonant)
	if !ok || u.Atoms[0] != "n" {
		t.Errorf("consonant-position n = %+v, want consonant n", u)
	}

	if _, ok := d.RomajiAs("xyz", Consonant); ok {
		t.Error("unknown key should not resolve")
	}
}

func TestSuggest(t *testing.T) {
	d := Default()
	tests := []struct {
		key  string
		want string
	}{
		{"kax", "ka"},
		{"shya", "sha"},
		{"qqqqqq", ""},
	}
	for _, tt := range tests {
		if got := d.Suggest(tt.key); got != tt.want {
			t.Errorf("Suggest(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestAtomsCoversGrid(t *testing.T) {
	d := Default()
	have := make(map[Atom]bool)
	for _, a := range d.Atoms() {
		have[a] = true
	}
	for _, a := range append(append([]Atom{}, Vowels...), Consonants...) {
		if !have[a] {
			t.Errorf("atom %q of the coverage grid is not produced by the default dictionary", a)
		}
	}
}

func TestWriteLoad(t *testing.T) {
	var sb strings.Builder
	if err := Default().Write(&sb); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	d, err := Load(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want, got := Default().Units(), d.Units()
	if len(got) != len(want) {
		t.Fatalf("got %d units, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Kana != want[i].Kana || got[i].Romaji != want[i].Romaji ||
			Join(got[i].Atoms) != Join(want[i].Atoms) || got[i].Category != want[i].Category {
			t.Errorf("unit %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestNew(t *testing.T) {
	d := New(
		Unit{Kana: "カ", Romaji: "ka", Atoms: []Atom{"k", "a"}},
		Unit{Kana: "か", Romaji: "ka2", Atoms: []Atom{"g", "a"}},
	)
	u, ok := d.Kana("か")
	if !ok || u.Romaji != "ka" {
		t.Errorf("か = %+v, ok=%v; first unit should win", u, ok)
	}
	if u.Category != Consonant {
		t.Errorf("category = %v, want Consonant", u.Category)
	}
}
