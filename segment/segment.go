// Package segment turns classified voicebank entries into articulation
// segments and renders them as segmentation artifacts.
//
// An Info is a value: Clone and Relabel return deep copies, so a segment
// recorded for one entry can be reused as a donor for any number of
// substitutes without the substitutes sharing state with it.
package segment

import (
	"github.com/ieee0824/oto2seg/alias"
	"github.com/ieee0824/oto2seg/lexicon"
)

// Mark is a phoneme and the time (ms, clip-relative) at which it begins.
// Each phoneme ends where the next one begins; the last ends at WavCutoff.
type Mark struct {
	Atom  lexicon.Atom
	Start float64
}

// Articulation is one articulation sub-segment with quantized boundaries.
type Articulation struct {
	Type       alias.Type
	Atoms      []lexicon.Atom
	Boundaries []float64 // ms
}

// Info is the derived segmentation of one recorded entry.
type Info struct {
	WavOffset     float64
	WavCutoff     float64
	Phonemes      []Mark
	Articulations []Articulation
}

// Atoms returns the phoneme sequence.
func (in Info) Atoms() []lexicon.Atom {
	out := make([]lexicon.Atom, len(in.Phonemes))
	for i, m := range in.Phonemes {
		out[i] = m.Atom
	}
	return out
}

// Clone returns a deep copy.
func (in Info) Clone() Info {
	out := Info{
		WavOffset:     in.WavOffset,
		WavCutoff:     in.WavCutoff,
		Phonemes:      append([]Mark(nil), in.Phonemes...),
		Articulations: make([]Articulation, len(in.Articulations)),
	}
	for i, a := range in.Articulations {
		out.Articulations[i] = Articulation{
			Type:       a.Type,
			Atoms:      append([]lexicon.Atom(nil), a.Atoms...),
			Boundaries: append([]float64(nil), a.Boundaries...),
		}
	}
	return out
}

// Relabel returns a copy in which every atom found in m is replaced by its
// mapped value, in the phoneme list and in every articulation.
func (in Info) Relabel(m map[lexicon.Atom]lexicon.Atom) Info {
	out := in.Clone()
	for i, p := range out.Phonemes {
		if to, ok := m[p.Atom]; ok {
			out.Phonemes[i].Atom = to
		}
	}
	for _, a := range out.Articulations {
		for i, atom := range a.Atoms {
			if to, ok := m[atom]; ok {
				a.Atoms[i] = to
			}
		}
	}
	return out
}

// shift returns a copy with every time moved by delta ms.
func (in Info) shift(delta float64) Info {
	out := in.Clone()
	out.WavOffset += delta
	out.WavCutoff += delta
	for i := range out.Phonemes {
		out.Phonemes[i].Start += delta
	}
	for _, a := range out.Articulations {
		for i := range a.Boundaries {
			a.Boundaries[i] += delta
		}
	}
	return out
}
