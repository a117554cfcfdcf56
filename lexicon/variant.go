package lexicon

// Vowels are the vowel atoms of the required coverage grid.
var Vowels = []Atom{"a", "i", "M", "e", "o"}

// Consonants are the consonant atoms of the required coverage grid, in the
// order missing combinations are reported.
var Consonants = []Atom{
	"k", "k'", "g", "g'",
	"s", "S", "dz", "dZ",
	"t", "t'", "ts", "tS", "d", "d'",
	"n", "J",
	"h", "C", `p\`, `p\'`,
	"b", "b'", "p", "p'",
	"m", "m'",
	"j", "4", "4'", "w",
}

// vowelVariantGroups lists vowels that may stand in for each other.
var vowelVariantGroups = [][]Atom{
	{"i", "e"},
	{"M", "o"},
	{`N\`, "n", "m", "N", "N'", "J"},
}

// consonantVariantGroups lists consonants that may stand in for each other:
// palatalised pairs first, then voicing pairs.
var consonantVariantGroups = [][]Atom{
	{"k", "k'"}, {"g", "g'"}, {"k", "g"}, {"k'", "g'"},
	{"s", "S"}, {"dz", "dZ"}, {"z", "Z"}, {"s", "dz"}, {"S", "dZ"}, {"z", "dz"}, {"Z", "dZ"},
	{"t", "t'"}, {"d", "d'"}, {"t", "d"}, {"t'", "d'"},
	{"ts", "tS"}, {"ts", "dz"}, {"tS", "dZ"},
	{"n", "J"}, {"N", "N'"},
	{"h", "C"}, {`p\`, `p\'`}, {"h", `p\`}, {"C", `p\'`},
	{"b", "b'"}, {"p", "p'"}, {"p", "b"}, {"p'", "b'"},
	{"m", "m'"}, {"4", "4'"},
}

// VowelVariants returns a followed by every vowel sharing a group with it.
func VowelVariants(a Atom) []Atom { return variants(a, vowelVariantGroups) }

// ConsonantVariants returns a followed by every consonant sharing a group
// with it.
func ConsonantVariants(a Atom) []Atom { return variants(a, consonantVariantGroups) }

func variants(a Atom, groups [][]Atom) []Atom {
	out := []Atom{a}
	seen := map[Atom]bool{a: true}
	for _, g := range groups {
		if !contains(g, a) {
			continue
		}
		for _, v := range g {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

func contains(as []Atom, a Atom) bool {
	for _, x := range as {
		if x == a {
			return true
		}
	}
	return false
}

// Pair is one vowel-consonant or vowel-silence transition.
type Pair struct {
	Vowel Atom
	Next  Atom // Sil for a VR pair
}

// RequiredVC returns the full vowel × consonant grid, followed by the nasal
// coda before every consonant with place assimilation applied.
func RequiredVC() []Pair {
	out := make([]Pair, 0, (len(Vowels)+1)*len(Consonants))
	for _, v := range Vowels {
		for _, c := range Consonants {
			out = append(out, Pair{Vowel: v, Next: c})
		}
	}
	for _, c := range Consonants {
		out = append(out, Pair{Vowel: AssimilateNasal(c), Next: c})
	}
	return out
}

// RequiredVR returns every vowel followed by silence.
func RequiredVR() []Pair {
	out := make([]Pair, 0, len(Vowels)+1)
	for _, v := range Vowels {
		out = append(out, Pair{Vowel: v, Next: Sil})
	}
	return append(out, Pair{Vowel: Moraic, Next: Sil})
}
