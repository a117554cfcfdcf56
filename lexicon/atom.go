package lexicon

// Atom is an indivisible phonetic unit of the articulation transcription
// scheme (X-SAMPA flavoured, e.g. "a", "k'", `N\`).
type Atom string

const (
	// Sil brackets every segment that starts or ends in silence.
	Sil Atom = "Sil"
	// Moraic is the nasal-coda placeholder ん before place assimilation.
	Moraic Atom = `N\`
)

// Category classifies a dictionary unit by its leading atom.
type Category int

const (
	Vowel Category = iota
	Consonant
	NasalCoda
)

func (c Category) String() string {
	switch c {
	case Vowel:
		return "vowel"
	case Consonant:
		return "consonant"
	case NasalCoda:
		return "nasal-coda"
	}
	return "unknown"
}

var vowelAtoms = set("a", "i", "M", "e", "o", `N\`)

var plosiveAtoms = set("k", "k'", "g", "g'", "t", "t'", "d", "d'", "p", "p'", "b", "b'")

var unvoicedAtoms = set("k", "k'", "s", "S", "t", "t'", "ts", "tS", "h", "C", `p\`, `p\'`, "p", "p'")

// IsVowel reports whether a is a vowel or the syllabic moraic nasal.
func IsVowel(a Atom) bool { return vowelAtoms[a] }

// IsPlosive reports whether a is a stop consonant. Plosive onsets are timed
// from the burst rather than the closure.
func IsPlosive(a Atom) bool { return plosiveAtoms[a] }

// IsVoiced reports whether a is voiced. Only consonants in the unvoiced set
// are false; Sil counts as voiced.
func IsVoiced(a Atom) bool { return !unvoicedAtoms[a] }

// nasalPlace maps a consonant to the nasal that ん assimilates to before it.
var nasalPlace = map[Atom]Atom{
	// 歯茎
	"n": "n", "d": "n", "d'": "n", "t": "n", "t'": "n", "4": "n", "4'": "n",
	"dz": "n", "dZ": "n", "ts": "n", "tS": "n",
	// 両唇
	"m": "m", "m'": "m", "p": "m", "p'": "m", "b": "m", "b'": "m",
	// 軟口蓋
	"g": "N", "k": "N",
	// 硬口蓋
	"J":  "J",
	"g'": "N'", "k'": "N'",
}

// AssimilateNasal returns the place-matched nasal for ん followed by next.
// Consonants outside the table leave the placeholder unchanged.
func AssimilateNasal(next Atom) Atom {
	if n, ok := nasalPlace[next]; ok {
		return n
	}
	return Moraic
}

func set(atoms ...Atom) map[Atom]bool {
	m := make(map[Atom]bool, len(atoms))
	for _, a := range atoms {
		m[a] = true
	}
	return m
}

// Join renders atoms separated by single spaces.
func Join(atoms []Atom) string {
	n := 0
	for _, a := range atoms {
		n += len(a) + 1
	}
	b := make([]byte, 0, n)
	for i, a := range atoms {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, a...)
	}
	return string(b)
}
