package coverage

import (
	"github.com/ieee0824/oto2seg/lexicon"
	"github.com/ieee0824/oto2seg/segment"
)

// Substitute is a stand-in for a missing transition.
type Substitute struct {
	Key   string       // missing key being filled
	Donor string       // key of the recorded transition it is made from
	Clip  string       // clip the donor was cut from
	Info  segment.Info // donor segment relabelled to Key
}

// Plan lists the missing transitions and how each can be filled.
type Plan struct {
	MissingVC   []string
	MissingVR   []string
	Substitutes []Substitute
	Unresolved  []string
}

// NewPlan compares m against the required transitions that dict can express
// and searches variant groups for a stand-in for every missing one. For a
// missing "v c", consonant variants are tried in the outer loop and vowel
// variants in the inner; a missing "v -" tries vowel variants only. m is not
// modified.
func NewPlan(m *Map, dict *lexicon.Dictionary) Plan {
	known := make(map[lexicon.Atom]bool)
	for _, a := range dict.Atoms() {
		known[a] = true
	}

	var p Plan
	for _, pair := range lexicon.RequiredVC() {
		if !expressible(known, pair) {
			continue
		}
		key := VCKey(pair.Vowel, pair.Next)
		if m.Has(key) {
			continue
		}
		p.MissingVC = append(p.MissingVC, key)
		if s, ok := findVC(m, pair); ok {
			p.Substitutes = append(p.Substitutes, s)
		} else {
			p.Unresolved = append(p.Unresolved, key)
		}
	}

	for _, pair := range lexicon.RequiredVR() {
		if !known[pair.Vowel] {
			continue
		}
		key := VRKey(pair.Vowel)
		if m.Has(key) {
			continue
		}
		p.MissingVR = append(p.MissingVR, key)
		if s, ok := findVR(m, pair.Vowel); ok {
			p.Substitutes = append(p.Substitutes, s)
		} else {
			p.Unresolved = append(p.Unresolved, key)
		}
	}
	return p
}

// expressible reports whether dict can produce both sides of a VC pair. An
// assimilated nasal counts as present when the dictionary has the nasal coda.
func expressible(known map[lexicon.Atom]bool, pair lexicon.Pair) bool {
	if !known[pair.Next] {
		return false
	}
	if known[lexicon.Moraic] && pair.Vowel == lexicon.AssimilateNasal(pair.Next) {
		return true
	}
	return known[pair.Vowel]
}

func findVC(m *Map, want lexicon.Pair) (Substitute, bool) {
	for _, c := range lexicon.ConsonantVariants(want.Next) {
		for _, v := range lexicon.VowelVariants(want.Vowel) {
			// Relabelling is by atom, so a donor like "m m" cannot become "m m'".
			if c == v && want.Vowel != want.Next {
				continue
			}
			donor := VCKey(v, c)
			e, ok := m.Lookup(donor)
			if !ok {
				continue
			}
			relabel := map[lexicon.Atom]lexicon.Atom{}
			if c != want.Next {
				relabel[c] = want.Next
			}
			if v != want.Vowel {
				relabel[v] = want.Vowel
			}
			return Substitute{
				Key:   VCKey(want.Vowel, want.Next),
				Donor: donor,
				Clip:  e.Clip,
				Info:  e.Info.Relabel(relabel),
			}, true
		}
	}
	return Substitute{}, false
}

func findVR(m *Map, want lexicon.Atom) (Substitute, bool) {
	for _, v := range lexicon.VowelVariants(want) {
		donor := VRKey(v)
		e, ok := m.Lookup(donor)
		if !ok {
			continue
		}
		relabel := map[lexicon.Atom]lexicon.Atom{}
		if v != want {
			relabel[v] = want
		}
		return Substitute{
			Key:   VRKey(want),
			Donor: donor,
			Clip:  e.Clip,
			Info:  e.Info.Relabel(relabel),
		}, true
	}
	return Substitute{}, false
}
