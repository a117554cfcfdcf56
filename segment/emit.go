package segment

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ieee0824/oto2seg/audio"
)

// DefaultBleed is the audio context kept on each side of a segment, in ms.
const DefaultBleed = 100.0

// ErrEmptySegment is returned when asked to emit a segment with no phonemes.
var ErrEmptySegment = errors.New("segment has no phonemes")

// Sink receives emitted artifacts.
type Sink interface {
	WriteText(name, content string) error
	WriteClip(name string, clip *audio.Clip) error
}

// DirSink writes artifacts as files into a directory.
type DirSink struct {
	Dir string
}

// NewDirSink creates dir if needed and returns a sink writing into it.
func NewDirSink(dir string) (*DirSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &DirSink{Dir: dir}, nil
}

func (s *DirSink) WriteText(name, content string) error {
	return os.WriteFile(filepath.Join(s.Dir, name), []byte(content), 0o644)
}

func (s *DirSink) WriteClip(name string, clip *audio.Clip) error {
	return audio.WriteWAVFile(filepath.Join(s.Dir, name), clip)
}

// MemorySink keeps artifacts in memory. Later writes to a name replace
// earlier ones.
type MemorySink struct {
	mu    sync.Mutex
	Texts map[string]string
	Clips map[string]*audio.Clip
}

// NewMemorySink returns an empty memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{Texts: map[string]string{}, Clips: map[string]*audio.Clip{}}
}

func (s *MemorySink) WriteText(name, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Texts[name] = content
	return nil
}

func (s *MemorySink) WriteClip(name string, clip *audio.Clip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Clips[name] = clip
	return nil
}

// Emitted describes the artifacts written for one segment.
type Emitted struct {
	Name   string   // base name
	Files  []string // in write order
	Frames int      // length of the written clip
	Length float64  // ms
	Delta  float64  // shift applied to every time, ms
}

// Emitter cuts segments out of clips and writes their artifacts.
type Emitter struct {
	sink   Sink
	bleed  float64
	logger zerolog.Logger
}

// EmitterOption configures an Emitter.
type EmitterOption func(*Emitter)

// WithBleed overrides DefaultBleed.
func WithBleed(ms float64) EmitterOption {
	return func(e *Emitter) { e.bleed = ms }
}

// WithEmitLogger sets the logger used for per-segment debug events.
func WithEmitLogger(l zerolog.Logger) EmitterOption {
	return func(e *Emitter) { e.logger = l }
}

// NewEmitter returns an emitter writing to sink.
func NewEmitter(sink Sink, opts ...EmitterOption) *Emitter {
	e := &Emitter{sink: sink, bleed: DefaultBleed, logger: zerolog.Nop()}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Emit writes the transition list, the padded clip, the phoneme table and one
// descriptor per articulation. The window [WavOffset-bleed, WavCutoff+bleed]
// is cut from clip; parts outside the clip are filled with silence, and all
// times are rebased onto the written clip. Emit returns only after every
// artifact of the segment has been written.
func (e *Emitter) Emit(clip *audio.Clip, in Info) (Emitted, error) {
	if len(in.Phonemes) == 0 {
		return Emitted{}, ErrEmptySegment
	}

	name := FileName(in)
	length := clip.Duration()

	var lead, tail, delta float64
	if in.WavOffset < e.bleed {
		lead = e.bleed - in.WavOffset
		delta = lead
	} else {
		delta = -(in.WavOffset - e.bleed)
	}
	if in.WavCutoff+e.bleed > length {
		tail = in.WavCutoff + e.bleed - length
	}

	parts := []*audio.Clip{}
	if lead > 0 {
		parts = append(parts, audio.Silence(lead, clip.Format))
	}
	parts = append(parts, clip.Slice(max(0, in.WavOffset-e.bleed), min(length, in.WavCutoff+e.bleed)))
	if tail > 0 {
		parts = append(parts, audio.Silence(tail, clip.Format))
	}
	out, err := audio.Concat(parts...)
	if err != nil {
		return Emitted{}, fmt.Errorf("%s: %w", name, err)
	}

	rel := in.shift(delta)
	res := Emitted{Name: name, Frames: out.Frames(), Length: out.Duration(), Delta: delta}

	write := func(file string, fn func(string) error) error {
		if err := fn(file); err != nil {
			return fmt.Errorf("write %s: %w", file, err)
		}
		res.Files = append(res.Files, file)
		return nil
	}

	if err := write(name+".trans", func(f string) error {
		return e.sink.WriteText(f, Transitions(rel.Atoms()))
	}); err != nil {
		return res, err
	}
	if err := write(name+".wav", func(f string) error {
		return e.sink.WriteClip(f, out)
	}); err != nil {
		return res, err
	}
	if err := write(name+".seg", func(f string) error {
		return e.sink.WriteText(f, SegTable(rel.Phonemes, rel.WavCutoff, res.Length))
	}); err != nil {
		return res, err
	}
	for i, a := range rel.Articulations {
		if err := write(fmt.Sprintf("%s.as%d", name, i), func(f string) error {
			return e.sink.WriteText(f, Descriptor(a, res.Frames))
		}); err != nil {
			return res, err
		}
	}

	e.logger.Debug().
		Str("name", name).
		Float64("delta", delta).
		Int("frames", res.Frames).
		Msg("segment emitted")
	return res, nil
}
