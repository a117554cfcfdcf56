package segment

import (
	"fmt"
	"strings"

	"github.com/ieee0824/oto2seg/alias"
	"github.com/ieee0824/oto2seg/lexicon"
)

// FileName derives the base name of a segment's artifacts from its
// articulation types and phoneme sequence.
func FileName(in Info) string {
	var prefix string
	switch {
	case len(in.Articulations) == 2 && in.Articulations[0].Type == alias.RC && in.Articulations[1].Type == alias.CV:
		prefix = "rcv_"
	case len(in.Articulations) == 1:
		prefix = string(in.Articulations[0].Type) + "_"
	default:
		prefix = "unknown_"
	}

	names := make([]string, len(in.Phonemes))
	for i, m := range in.Phonemes {
		names[i] = lexicon.Escape(m.Atom)
	}
	return prefix + strings.Join(names, "_")
}

// SegTable renders the phoneme table. The phonemes are bracketed by a
// leading silence from 0 and a trailing silence from cutoff to length.
// All times are ms relative to the written clip.
func SegTable(phonemes []Mark, cutoff, length float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "nPhonemes %d\n", len(phonemes)+2)
	b.WriteString("articulationsAreStationaries = 0\n")
	b.WriteString("phoneme\t\tBeginTime\t\tEndTime\n")
	b.WriteString(strings.Repeat("=", 51) + "\n")

	row := func(atom lexicon.Atom, begin, end float64) {
		fmt.Fprintf(&b, "%s\t\t%.6f\t\t%.6f\n", atom, begin/1000, end/1000)
	}
	if len(phonemes) == 0 {
		row(lexicon.Sil, 0, length)
		return b.String()
	}
	row(lexicon.Sil, 0, phonemes[0].Start)
	for i, m := range phonemes {
		end := cutoff
		if i < len(phonemes)-1 {
			end = phonemes[i+1].Start
		}
		row(m.Atom, m.Start, end)
	}
	row(lexicon.Sil, cutoff, length)
	return b.String()
}

// Transitions renders the transition list: the phoneme sequence on the first
// line, then one bracketed group per transition. Inside a sequence of four or
// more phonemes, a non-vowel between two others is grouped with both of its
// neighbours.
func Transitions(atoms []lexicon.Atom) string {
	lines := []string{lexicon.Join(atoms)}

	// rows are the atoms bracketed by the table's edge silences.
	rows := make([]lexicon.Atom, 0, len(atoms)+2)
	rows = append(rows, lexicon.Sil)
	rows = append(rows, atoms...)
	rows = append(rows, lexicon.Sil)

	n := len(rows)
	for i := 2; i < n-1; i++ {
		if i > 2 && i < n-2 && !lexicon.IsVowel(rows[i]) {
			lines = append(lines, "["+lexicon.Join(rows[i-1:i+2])+"]")
			i++
			continue
		}
		lines = append(lines, "["+lexicon.Join(rows[i-1:i+1])+"]")
	}
	return strings.Join(lines, "\n")
}

// Descriptor renders one articulation as an "nphone art segmentation" block.
// frames is the length of the written clip in sample frames.
func Descriptor(a Articulation, frames int) string {
	phns := make([]string, len(a.Atoms))
	voiced := make([]string, len(a.Atoms))
	for i, atom := range a.Atoms {
		phns[i] = `"` + string(atom) + `"`
		voiced[i] = fmt.Sprint(lexicon.IsVoiced(atom))
	}
	bounds := make([]string, len(a.Boundaries))
	for i, ms := range a.Boundaries {
		bounds[i] = fmt.Sprintf("%.9f", ms/1000)
	}

	var b strings.Builder
	b.WriteString("nphone art segmentation\n{\n")
	fmt.Fprintf(&b, "\tphns: [%s];\n", strings.Join(phns, ", "))
	b.WriteString("\tcut offset: 0;\n")
	fmt.Fprintf(&b, "\tcut length: %d;\n", frames)
	fmt.Fprintf(&b, "\tboundaries: [%s];\n", strings.Join(bounds, ", "))
	b.WriteString("\trevised: false;\n")
	fmt.Fprintf(&b, "\tvoiced: [%s];\n", strings.Join(voiced, ", "))
	b.WriteString("};\n")
	return b.String()
}
