package oto2seg

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ieee0824/oto2seg/alias"
	"github.com/ieee0824/oto2seg/oto"
)

// Failure kinds.
const (
	KindUnclassifiable = "unclassifiable"
	KindUnknownUnit    = "unknown-unit"
	KindInvalidUnit    = "invalid-phoneme-info"
	KindVCV            = "vcv-unsupported"
	KindMissingClip    = "missing-clip"
	KindIndex          = "index"
	KindClip           = "clip"
	KindDerive         = "derive"
	KindEmit           = "emit"
	KindDuplicate      = "duplicate"
)

// ErrDuplicate reports an entry whose segment was already written by an
// earlier entry, such as a second take of the same alias.
var ErrDuplicate = errors.New("segment already emitted")

// Failure is an index line or entry that produced no output.
type Failure struct {
	Clip       string `yaml:"clip,omitempty"`
	Line       int    `yaml:"line"`
	Alias      string `yaml:"alias,omitempty"`
	Kind       string `yaml:"kind"`
	Reason     string `yaml:"reason"`
	Suggestion string `yaml:"suggestion,omitempty"`
}

// Substitution is a missing transition filled from a recorded one.
type Substitution struct {
	Key   string `yaml:"key"`
	Donor string `yaml:"donor"`
	Clip  string `yaml:"clip"`
	Name  string `yaml:"name"`
}

// Report summarises one run.
type Report struct {
	RunID       string         `yaml:"run_id"`
	Started     time.Time      `yaml:"started"`
	Finished    time.Time      `yaml:"finished"`
	InitialMode string         `yaml:"initial_mode"`
	Entries     int            `yaml:"entries"`
	Emitted     int            `yaml:"emitted"`
	Covered     []string       `yaml:"covered,omitempty"`
	Failures    []Failure      `yaml:"failures,omitempty"`
	MissingVC   []string       `yaml:"missing_vc,omitempty"`
	MissingVR   []string       `yaml:"missing_vr,omitempty"`
	Substituted []Substitution `yaml:"substituted,omitempty"`
	Unresolved  []string       `yaml:"unresolved,omitempty"`
}

func (r *Report) fail(f Failure) {
	r.Failures = append(r.Failures, f)
}

// WriteReport writes r as YAML.
func WriteReport(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}

// WriteReportFile writes r as YAML to path.
func WriteReportFile(path string, r *Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteReport(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, alias.ErrVCVUnsupported):
		return KindVCV
	case errors.Is(err, alias.ErrInvalidPhonemeInfo):
		return KindInvalidUnit
	case errors.Is(err, alias.ErrUnknownUnit):
		return KindUnknownUnit
	case errors.Is(err, alias.ErrUnclassifiable):
		return KindUnclassifiable
	case errors.Is(err, oto.ErrMissingClip):
		return KindMissingClip
	}
	return KindIndex
}
