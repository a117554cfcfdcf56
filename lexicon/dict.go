package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/unicode/norm"
)

// Unit is one dictionary entry: a syllabary form, its romaji transliteration
// and the atoms it decomposes into.
type Unit struct {
	Kana     string
	Romaji   string
	Atoms    []Atom // read-only
	Category Category
}

// Dictionary maps kana and romaji keys to units. It is immutable once built
// and safe to share.
type Dictionary struct {
	units  []Unit
	kana   map[string]int
	romaji map[string][]int // a romaji key may name a nasal coda and a consonant
}

// Default builds the dictionary from the built-in table.
func Default() *Dictionary {
	d := newDictionary()
	for _, e := range builtinUnits {
		d.add(e.kana, e.romaji, e.atoms)
	}
	return d
}

// New builds a dictionary from units. When two units share a kana key the
// first wins; units sharing a romaji key are all kept, in order.
func New(units ...Unit) *Dictionary {
	d := newDictionary()
	for _, u := range units {
		d.add(u.Kana, u.Romaji, append([]Atom(nil), u.Atoms...))
	}
	return d
}

func newDictionary() *Dictionary {
	return &Dictionary{
		kana:   make(map[string]int),
		romaji: make(map[string][]int),
	}
}

func (d *Dictionary) add(kana, romaji string, atoms []Atom) {
	kana = foldKana(norm.NFC.String(kana))
	u := Unit{Kana: kana, Romaji: romaji, Atoms: atoms, Category: categorize(atoms)}
	idx := len(d.units)
	d.units = append(d.units, u)
	if kana != "" {
		if _, dup := d.kana[kana]; !dup {
			d.kana[kana] = idx
		}
	}
	if romaji != "" {
		d.romaji[romaji] = append(d.romaji[romaji], idx)
	}
}

func categorize(atoms []Atom) Category {
	switch {
	case len(atoms) == 1 && atoms[0] == Moraic:
		return NasalCoda
	case len(atoms) == 1 && IsVowel(atoms[0]):
		return Vowel
	}
	return Consonant
}

// Load reads a dictionary from a tab-separated file.
// Format: kana<TAB>romaji<TAB>atom1 atom2
// A "-" in the kana or romaji column leaves that key empty.
func Load(r io.Reader) (*Dictionary, error) {
	d := newDictionary()
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "\t", 3)
		if len(parts) < 3 {
			return nil, fmt.Errorf("line %d: expected 3 tab-separated fields, got %d", lineNum, len(parts))
		}

		kana, romaji := parts[0], parts[1]
		if kana == "-" {
			kana = ""
		}
		if romaji == "-" {
			romaji = ""
		}
		fields := strings.Fields(parts[2])
		if len(fields) == 0 || len(fields) > 2 {
			return nil, fmt.Errorf("line %d: expected 1 or 2 atoms, got %d", lineNum, len(fields))
		}
		atoms := make([]Atom, len(fields))
		for i, f := range fields {
			atoms[i] = Atom(f)
		}

		d.add(kana, romaji, atoms)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(d.units) == 0 {
		return nil, fmt.Errorf("dictionary is empty")
	}

	return d, nil
}

// Write serialises the dictionary in the format Load reads.
func (d *Dictionary) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, u := range d.units {
		kana, romaji := u.Kana, u.Romaji
		if kana == "" {
			kana = "-"
		}
		if romaji == "" {
			romaji = "-"
		}
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\n", kana, romaji, Join(u.Atoms)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Kana looks up a syllabary unit. Katakana is accepted.
func (d *Dictionary) Kana(kana string) (Unit, bool) {
	idx, ok := d.kana[foldKana(norm.NFC.String(kana))]
	if !ok {
		return Unit{}, false
	}
	return d.units[idx], true
}

// Romaji looks up a transliteration, returning the first unit registered
// under that key.
func (d *Dictionary) Romaji(romaji string) (Unit, bool) {
	idxs := d.romaji[romaji]
	if len(idxs) == 0 {
		return Unit{}, false
	}
	return d.units[idxs[0]], true
}

// RomajiAs looks up a transliteration preferring units of the given
// categories in order, falling back to the first registered unit.
func (d *Dictionary) RomajiAs(romaji string, prefer ...Category) (Unit, bool) {
	idxs := d.romaji[romaji]
	for _, c := range prefer {
		for _, idx := range idxs {
			if d.units[idx].Category == c {
				return d.units[idx], true
			}
		}
	}
	return d.Romaji(romaji)
}

// Units returns every unit in table order.
func (d *Dictionary) Units() []Unit {
	out := make([]Unit, len(d.units))
	copy(out, d.units)
	return out
}

// Atoms returns every distinct atom the dictionary can produce, in first-seen
// order.
func (d *Dictionary) Atoms() []Atom {
	seen := make(map[Atom]bool)
	var out []Atom
	for _, u := range d.units {
		for _, a := range u.Atoms {
			if !seen[a] {
				seen[a] = true
				out = append(out, a)
			}
		}
	}
	return out
}

// Suggest returns the romaji key closest to key by edit distance, or "" when
// nothing is within two edits.
func (d *Dictionary) Suggest(key string) string {
	best, bestDist := "", 3
	for _, u := range d.units {
		if u.Romaji == "" || u.Romaji == key {
			continue
		}
		if dist := levenshtein.ComputeDistance(key, u.Romaji); dist < bestDist {
			best, bestDist = u.Romaji, dist
		}
	}
	return best
}
