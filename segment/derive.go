package segment

import (
	"errors"
	"fmt"

	"github.com/ieee0824/oto2seg/alias"
	"github.com/ieee0824/oto2seg/lexicon"
	"github.com/ieee0824/oto2seg/oto"
)

// SilenceLead is the silence placed before an utterance-initial phoneme and
// after an utterance-final one, in ms.
const SilenceLead = 20.0

// ErrUnknownType is returned for an articulation type Derive has no rule for.
var ErrUnknownType = errors.New("unknown articulation type")

// Derive computes the phoneme marks and the quantized articulation boundaries
// of one classified entry.
func Derive(e oto.Entry, c alias.Classification) (Info, error) {
	want := 2
	switch c.Type {
	case alias.RV, alias.RC, alias.VR:
		want = 1
	}
	if len(c.Atoms) < want {
		return Info{}, fmt.Errorf("derive %s: %d atoms, need %d", c.Type, len(c.Atoms), want)
	}

	info := Info{WavOffset: e.Offset, WavCutoff: e.Cutoff}
	a := c.Atoms

	switch c.Type {
	case alias.RCV:
		info.WavCutoff = e.Preutterance
		start := e.Offset - SilenceLead
		info.Phonemes = []Mark{{lexicon.Sil, start}, {a[0], e.Offset}}
		info.add(alias.RC, []lexicon.Atom{lexicon.Sil, a[0]}, start, e.Offset, e.Overlap)

	case alias.RV:
		start := e.Preutterance - SilenceLead
		info.Phonemes = []Mark{{lexicon.Sil, start}, {a[0], e.Preutterance}}
		info.add(alias.RV, []lexicon.Atom{lexicon.Sil, a[0]}, start, e.Preutterance, e.Consonant)

	case alias.RC:
		onset := e.Offset
		if lexicon.IsPlosive(a[0]) {
			onset = e.Consonant
		}
		info.Phonemes = []Mark{{lexicon.Sil, onset - SilenceLead}, {a[0], onset}}
		info.add(alias.RC, []lexicon.Atom{lexicon.Sil, a[0]}, onset-SilenceLead, onset, e.Cutoff)

	case alias.VV:
		info.Phonemes = []Mark{{a[0], e.Offset}, {a[1], e.Preutterance}}
		info.add(alias.VV, a[:2], e.Offset, e.Preutterance, e.Consonant)

	case alias.CV:
		onset := consonantOnset(a[0], e)
		info.Phonemes = []Mark{{a[0], onset}, {a[1], e.Preutterance}}
		info.add(alias.CV, a[:2], onset, e.Preutterance, e.Consonant)

	case alias.VC:
		end := e.Consonant + (e.Cutoff-e.Consonant)/2
		info.Phonemes = []Mark{{a[0], e.Offset}, {a[1], e.Preutterance}}
		info.add(alias.VC, a[:2], e.Offset, e.Preutterance, end)

	case alias.VR:
		info.Phonemes = []Mark{{a[0], e.Offset}, {lexicon.Sil, e.Preutterance}}
		info.add(alias.VR, []lexicon.Atom{a[0], lexicon.Sil}, e.Overlap, e.Preutterance, e.Preutterance+SilenceLead)

	default:
		return Info{}, fmt.Errorf("derive %q: %w", c.Type, ErrUnknownType)
	}
	return info, nil
}

// consonantOnset places the start of a CV consonant. Plosives start at the
// overlap; other consonants start halfway between offset and overlap.
func consonantOnset(c lexicon.Atom, e oto.Entry) float64 {
	switch {
	case lexicon.IsPlosive(c):
		return e.Overlap
	case e.Overlap > e.Offset:
		return e.Offset + (e.Overlap-e.Offset)/2
	}
	return e.Offset
}

func (in *Info) add(t alias.Type, atoms []lexicon.Atom, boundaries ...float64) {
	in.Articulations = append(in.Articulations, Articulation{
		Type:       t,
		Atoms:      append([]lexicon.Atom(nil), atoms...),
		Boundaries: Quantize(boundaries),
	})
}
