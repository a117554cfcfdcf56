// Package coverage tracks which vowel-consonant and vowel-silence transitions
// a voicebank provides and fills the gaps with relabelled stand-ins.
package coverage

import (
	"github.com/ieee0824/oto2seg/alias"
	"github.com/ieee0824/oto2seg/lexicon"
	"github.com/ieee0824/oto2seg/segment"
)

// VCKey is the canonical key of a vowel-consonant transition, e.g. "a k".
func VCKey(v, c lexicon.Atom) string { return string(v) + " " + string(c) }

// VRKey is the canonical key of a vowel-silence transition, e.g. "a -".
func VRKey(v lexicon.Atom) string { return string(v) + " -" }

// Entry is the segment that first produced a key and the clip it was cut
// from.
type Entry struct {
	Info segment.Info
	Clip string
}

// Map records produced transitions. The first segment recorded for a key is
// kept; later ones are ignored.
type Map struct {
	entries map[string]Entry
	keys    []string
}

// NewMap returns an empty map.
func NewMap() *Map {
	return &Map{entries: make(map[string]Entry)}
}

// Record registers every vc and vr articulation of info under its key and
// returns the keys that were new.
func (m *Map) Record(info segment.Info, clip string) []string {
	var added []string
	for _, a := range info.Articulations {
		var key string
		switch {
		case a.Type == alias.VC && len(a.Atoms) == 2:
			key = VCKey(a.Atoms[0], a.Atoms[1])
		case a.Type == alias.VR && len(a.Atoms) >= 1:
			key = VRKey(a.Atoms[0])
		default:
			continue
		}
		if _, seen := m.entries[key]; seen {
			continue
		}
		m.entries[key] = Entry{Info: info.Clone(), Clip: clip}
		m.keys = append(m.keys, key)
		added = append(added, key)
	}
	return added
}

// Lookup returns a copy of the entry recorded for key.
func (m *Map) Lookup(key string) (Entry, bool) {
	e, ok := m.entries[key]
	if !ok {
		return Entry{}, false
	}
	return Entry{Info: e.Info.Clone(), Clip: e.Clip}, true
}

// Has reports whether key has been recorded.
func (m *Map) Has(key string) bool {
	_, ok := m.entries[key]
	return ok
}

// Len returns the number of recorded keys.
func (m *Map) Len() int { return len(m.keys) }

// Keys returns the recorded keys in recording order.
func (m *Map) Keys() []string {
	return append([]string(nil), m.keys...)
}
