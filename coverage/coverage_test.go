package coverage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ieee0824/oto2seg/alias"
	"github.com/ieee0824/oto2seg/lexicon"
	"github.com/ieee0824/oto2seg/segment"
)

func vcSegment(v, c lexicon.Atom) segment.Info {
	return segment.Info{
		WavOffset: 100,
		WavCutoff: 300,
		Phonemes:  []segment.Mark{{Atom: v, Start: 100}, {Atom: c, Start: 150}},
		Articulations: []segment.Articulation{{
			Type:       alias.VC,
			Atoms:      []lexicon.Atom{v, c},
			Boundaries: []float64{100, 150, 250},
		}},
	}
}

func vrSegment(v lexicon.Atom) segment.Info {
	return segment.Info{
		WavOffset: 100,
		WavCutoff: 300,
		Phonemes:  []segment.Mark{{Atom: v, Start: 100}, {Atom: lexicon.Sil, Start: 150}},
		Articulations: []segment.Articulation{{
			Type:       alias.VR,
			Atoms:      []lexicon.Atom{v, lexicon.Sil},
			Boundaries: []float64{120, 150, 170},
		}},
	}
}

func TestRecord(t *testing.T) {
	m := NewMap()

	assert.Equal(t, []string{"a k"}, m.Record(vcSegment("a", "k"), "first.wav"))
	assert.Equal(t, []string{"a -"}, m.Record(vrSegment("a"), "first.wav"))
	assert.Nil(t, m.Record(vcSegment("a", "k"), "second.wav"), "duplicate key is ignored")

	cv := segment.Info{Articulations: []segment.Articulation{{Type: alias.CV, Atoms: []lexicon.Atom{"k", "a"}}}}
	assert.Nil(t, m.Record(cv, "cv.wav"), "cv articulations are not tracked")

	e, ok := m.Lookup("a k")
	require.True(t, ok)
	assert.Equal(t, "first.wav", e.Clip)
	assert.Equal(t, []string{"a k", "a -"}, m.Keys())
	assert.Equal(t, 2, m.Len())
}

func TestRecordCopies(t *testing.T) {
	m := NewMap()
	info := vcSegment("a", "k")
	m.Record(info, "a.wav")
	info.Phonemes[0].Atom = "o"

	e, _ := m.Lookup("a k")
	assert.Equal(t, lexicon.Atom("a"), e.Info.Phonemes[0].Atom)

	e.Info.Articulations[0].Atoms[1] = "g"
	again, _ := m.Lookup("a k")
	assert.Equal(t, lexicon.Atom("k"), again.Info.Articulations[0].Atoms[1])
}

func TestPlanConsonantVariant(t *testing.T) {
	m := NewMap()
	m.Record(vcSegment("a", "k'"), "a_ky.wav")

	p := NewPlan(m, lexicon.Default())

	assert.Contains(t, p.MissingVC, "a k")
	assert.NotContains(t, p.MissingVC, "a k'")

	var sub *Substitute
	for i := range p.Substitutes {
		if p.Substitutes[i].Key == "a k" {
			sub = &p.Substitutes[i]
		}
	}
	require.NotNil(t, sub, "a k must be filled")
	assert.Equal(t, "a k'", sub.Donor)
	assert.Equal(t, "a_ky.wav", sub.Clip)
	assert.Equal(t, []lexicon.Atom{"a", "k"}, sub.Info.Atoms())
	assert.Equal(t, []lexicon.Atom{"a", "k"}, sub.Info.Articulations[0].Atoms)
	assert.Equal(t, "vc_a_k", segment.FileName(sub.Info))

	donor, _ := m.Lookup("a k'")
	assert.Equal(t, []lexicon.Atom{"a", "k'"}, donor.Info.Atoms(), "donor is not modified")
	assert.Equal(t, []string{"a k'"}, m.Keys(), "plan does not record substitutes")

	// g has variants g, g' and k; none recorded after a.
	assert.Contains(t, p.Unresolved, "a g")
}

func TestPlanVowelVariant(t *testing.T) {
	m := NewMap()
	m.Record(vcSegment("e", "s"), "e_s.wav")
	m.Record(vrSegment("e"), "e_R.wav")

	p := NewPlan(m, lexicon.Default())

	subs := map[string]Substitute{}
	for _, s := range p.Substitutes {
		subs[s.Key] = s
	}

	require.Contains(t, subs, "i s")
	assert.Equal(t, "e s", subs["i s"].Donor)
	assert.Equal(t, []lexicon.Atom{"i", "s"}, subs["i s"].Info.Atoms())

	require.Contains(t, subs, "i S", "consonant and vowel both substituted")
	assert.Equal(t, "e s", subs["i S"].Donor)
	assert.Equal(t, []lexicon.Atom{"i", "S"}, subs["i S"].Info.Atoms())

	require.Contains(t, subs, "i -")
	assert.Equal(t, "e -", subs["i -"].Donor)
	assert.Equal(t, []lexicon.Atom{"i", lexicon.Sil}, subs["i -"].Info.Atoms())
	assert.Equal(t, "vr_i_sil", segment.FileName(subs["i -"].Info))

	assert.Contains(t, p.Unresolved, "a -")
	assert.Contains(t, p.Unresolved, "o -")
}

func TestPlanConsonantOuterLoop(t *testing.T) {
	m := NewMap()
	m.Record(vcSegment("e", "k"), "e_k.wav")
	m.Record(vcSegment("i", "k'"), "i_ky.wav")

	p := NewPlan(m, lexicon.Default())
	for _, s := range p.Substitutes {
		if s.Key == "i k" {
			assert.Equal(t, "e k", s.Donor, "same consonant with a vowel variant beats a consonant variant")
			return
		}
	}
	t.Fatal("i k not filled")
}

func TestPlanOnlyRequiredKeys(t *testing.T) {
	required := map[string]bool{}
	for _, p := range lexicon.RequiredVC() {
		required[VCKey(p.Vowel, p.Next)] = true
	}
	for _, p := range lexicon.RequiredVR() {
		required[VRKey(p.Vowel)] = true
	}

	m := NewMap()
	m.Record(vcSegment("a", "k"), "1.wav")
	m.Record(vcSegment("o", "t"), "2.wav")
	m.Record(vcSegment("n", "t"), "3.wav")
	m.Record(vrSegment("M"), "4.wav")
	before := m.Keys()

	p := NewPlan(m, lexicon.Default())

	for _, k := range append(append([]string{}, p.MissingVC...), p.MissingVR...) {
		assert.True(t, required[k], "missing key %q is not required", k)
		assert.False(t, m.Has(k), "missing key %q is recorded", k)
	}
	for _, s := range p.Substitutes {
		assert.True(t, required[s.Key], "substitute %q is not required", s.Key)
		assert.True(t, m.Has(s.Donor), "donor %q not recorded", s.Donor)
		assert.Equal(t, s.Key, strings.Join(atomsKey(s.Info), " "))
	}
	assert.Equal(t, len(p.MissingVC)+len(p.MissingVR), len(p.Substitutes)+len(p.Unresolved))
	assert.Equal(t, before, m.Keys())
}

// atomsKey renders a substitute's articulation the way its key is written.
func atomsKey(in segment.Info) []string {
	a := in.Articulations[0]
	if a.Type == alias.VR {
		return []string{string(a.Atoms[0]), "-"}
	}
	return []string{string(a.Atoms[0]), string(a.Atoms[1])}
}

func TestPlanIdenticalAtomsNotRelabelled(t *testing.T) {
	m := NewMap()
	m.Record(vcSegment("m", "m"), "m_m.wav")

	p := NewPlan(m, lexicon.Default())
	assert.Contains(t, p.Unresolved, "m m'")
	for _, s := range p.Substitutes {
		assert.NotEqual(t, "m m'", s.Key)
	}
}

func TestPlanCustomDictionary(t *testing.T) {
	dict, err := lexicon.Load(strings.NewReader("あ\ta\ta\nか\tka\tk a\n-\tk\tk\n"))
	require.NoError(t, err)

	p := NewPlan(NewMap(), dict)
	assert.Equal(t, []string{"a k"}, p.MissingVC)
	assert.Equal(t, []string{"a -"}, p.MissingVR)
	assert.Equal(t, []string{"a k", "a -"}, p.Unresolved)
	assert.Empty(t, p.Substitutes)
}
