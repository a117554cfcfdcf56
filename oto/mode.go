package oto

import "regexp"

// InitialMode is the way a CVVC bank voices utterance-initial syllables.
type InitialMode string

const (
	// ModeRCV banks record "- さ" style R-CV units.
	ModeRCV InitialMode = "rcv"
	// ModeRCCV banks record a bare R-C unit followed by CV.
	ModeRCCV InitialMode = "rccv"
)

func (m InitialMode) String() string {
	if m == ModeRCV {
		return "R-CV-VC-V-R"
	}
	return "R-C-CV-VC-V-R"
}

var rcvAlias = regexp.MustCompile(`^- (s ?a|さ)`)

// DetectInitialMode inspects the index for R-CV style aliases.
func DetectInitialMode(idx *Index) InitialMode {
	for _, c := range idx.Clips {
		for _, e := range c.Entries {
			if rcvAlias.MatchString(e.Alias) {
				return ModeRCV
			}
		}
	}
	return ModeRCCV
}
