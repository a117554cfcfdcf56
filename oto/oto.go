// Package oto reads UTAU pronunciation indexes (oto.ini).
//
// Each line has the form
//
//	clip.wav=alias,offset,consonant,cutoff,preutterance,overlap
//
// where consonant, preutterance and overlap are relative to offset, and
// cutoff is either a distance from the clip end (positive) or a negated
// distance from offset (zero or negative). Read converts every anchor to an
// absolute, non-negative position in milliseconds.
package oto

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrMissingClip is reported for index lines whose clip cannot be found.
var ErrMissingClip = errors.New("missing audio clip")

// Encoding selects the text encoding of the index file.
type Encoding string

const (
	ShiftJIS Encoding = "shift-jis"
	UTF8     Encoding = "utf-8"
)

// Entry is one recorded unit with absolute anchors in milliseconds.
type Entry struct {
	Clip         string // clip name as written in the index
	Path         string // resolved clip path
	Line         int
	Alias        string
	Offset       float64
	Consonant    float64
	Cutoff       float64
	Preutterance float64
	Overlap      float64
}

// Clip groups the entries recorded in one audio file.
type Clip struct {
	Name    string
	Path    string
	Length  float64 // ms
	Entries []Entry // sorted by Preutterance
}

// Problem records an index line that was skipped.
type Problem struct {
	Line int
	Clip string
	Err  error
}

// Index is a parsed pronunciation index. Clips keep the order in which they
// first appear in the file.
type Index struct {
	Clips    []*Clip
	Problems []Problem
}

// Len returns the number of entries across all clips.
func (idx *Index) Len() int {
	n := 0
	for _, c := range idx.Clips {
		n += len(c.Entries)
	}
	return n
}

// Prober reports the length of an audio clip in milliseconds.
type Prober interface {
	Probe(path string) (float64, error)
}

// ProbeFunc adapts a function to Prober.
type ProbeFunc func(path string) (float64, error)

func (f ProbeFunc) Probe(path string) (float64, error) { return f(path) }

// Options configures Read.
type Options struct {
	Dir      string   // directory clip names are resolved against
	Encoding Encoding // defaults to ShiftJIS
	Prober   Prober   // required
	Logger   zerolog.Logger
}

// ReadFile reads an index file, resolving clips next to it.
func ReadFile(path string, opts Options) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if opts.Dir == "" {
		opts.Dir = filepath.Dir(path)
	}
	return Read(f, opts)
}

// Read parses an index. Malformed lines and lines naming a missing clip are
// logged, recorded in Index.Problems and skipped.
func Read(r io.Reader, opts Options) (*Index, error) {
	if opts.Prober == nil {
		return nil, errors.New("oto: no prober")
	}
	switch opts.Encoding {
	case "", ShiftJIS:
		r = transform.NewReader(r, japanese.ShiftJIS.NewDecoder())
	case UTF8:
	default:
		return nil, fmt.Errorf("oto: unsupported encoding %q", opts.Encoding)
	}

	idx := &Index{}
	clips := make(map[string]*Clip)
	missing := make(map[string]error)
	log := opts.Logger

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		line = norm.NFC.String(line)

		name, params, ok := strings.Cut(line, "=")
		if !ok {
			idx.skip(log, lineNum, "", errors.New("missing '='"))
			continue
		}
		if err, bad := missing[name]; bad {
			idx.Problems = append(idx.Problems, Problem{Line: lineNum, Clip: name, Err: err})
			continue
		}

		clip, ok := clips[name]
		if !ok {
			path := filepath.Join(opts.Dir, filepath.FromSlash(name))
			length, err := opts.Prober.Probe(path)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					err = fmt.Errorf("%w: %s", ErrMissingClip, path)
				} else {
					err = fmt.Errorf("probe %s: %w", path, err)
				}
				missing[name] = err
				idx.skip(log, lineNum, name, err)
				continue
			}
			clip = &Clip{Name: name, Path: path, Length: length}
			clips[name] = clip
			idx.Clips = append(idx.Clips, clip)
		}

		e, err := parseEntry(params, clip.Length)
		if err != nil {
			idx.skip(log, lineNum, name, err)
			continue
		}
		e.Clip, e.Path, e.Line = name, clip.Path, lineNum
		clip.Entries = append(clip.Entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("oto: read: %w", err)
	}

	for _, c := range idx.Clips {
		sort.SliceStable(c.Entries, func(i, j int) bool {
			return c.Entries[i].Preutterance < c.Entries[j].Preutterance
		})
	}
	return idx, nil
}

func (idx *Index) skip(log zerolog.Logger, line int, clip string, err error) {
	idx.Problems = append(idx.Problems, Problem{Line: line, Clip: clip, Err: err})
	log.Warn().Int("line", line).Str("clip", clip).Err(err).Msg("skip index line")
}

func parseEntry(params string, clipLen float64) (Entry, error) {
	fields := strings.Split(params, ",")
	if len(fields) != 6 {
		return Entry{}, fmt.Errorf("expected 6 comma-separated fields, got %d", len(fields))
	}
	var v [5]float64
	for i, f := range fields[1:] {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Entry{}, fmt.Errorf("field %d: %w", i+2, err)
		}
		v[i] = x
	}
	e := Normalize(v[0], v[1], v[2], v[3], v[4], clipLen)
	e.Alias = strings.TrimSpace(fields[0])
	return e, nil
}

// Normalize converts raw index anchors to absolute positions.
func Normalize(offset, consonant, cutoff, preutterance, overlap, clipLen float64) Entry {
	e := Entry{
		Offset:       math.Max(offset, 0),
		Consonant:    math.Max(offset+consonant, 0),
		Preutterance: math.Max(offset+preutterance, 0),
		Overlap:      math.Max(offset+overlap, 0),
	}
	if cutoff > 0 {
		e.Cutoff = math.Max(e.Consonant+0.1, clipLen-cutoff)
	} else {
		e.Cutoff = math.Min(clipLen, offset-cutoff)
	}
	return e
}
