// Package oto2seg converts a CVVC voicebank's pronunciation index into
// articulation segmentation artifacts.
//
// A run has two phases. The first classifies, derives and emits every entry
// of the index while recording which VC and VR transitions were produced.
// The second, which starts only after the first has finished, fills missing
// transitions with relabelled copies of phonetically close ones.
package oto2seg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ieee0824/oto2seg/alias"
	"github.com/ieee0824/oto2seg/audio"
	"github.com/ieee0824/oto2seg/coverage"
	"github.com/ieee0824/oto2seg/lexicon"
	"github.com/ieee0824/oto2seg/oto"
	"github.com/ieee0824/oto2seg/segment"
)

// Loader reads the audio of a clip.
type Loader interface {
	Load(path string) (*audio.Clip, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(path string) (*audio.Clip, error)

func (f LoaderFunc) Load(path string) (*audio.Clip, error) { return f(path) }

// FileLoader reads clips from WAV files.
var FileLoader Loader = LoaderFunc(audio.ReadWAVFile)

// Converter runs conversions. It holds no per-run state and may be reused.
type Converter struct {
	dict     *lexicon.Dictionary
	sink     segment.Sink
	loader   Loader
	complete bool
	bleed    float64
	logger   zerolog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Converter) {
		c.logger = l
	}
}

// WithDictionary replaces the built-in phoneme dictionary.
func WithDictionary(d *lexicon.Dictionary) Option {
	return func(c *Converter) {
		c.dict = d
	}
}

// WithSink sets where artifacts are written. Required.
func WithSink(s segment.Sink) Option {
	return func(c *Converter) {
		c.sink = s
	}
}

// WithLoader sets how clips are read. The default is FileLoader.
func WithLoader(l Loader) Option {
	return func(c *Converter) {
		c.loader = l
	}
}

// WithCompletion enables or disables filling missing transitions.
func WithCompletion(enabled bool) Option {
	return func(c *Converter) {
		c.complete = enabled
	}
}

// WithBleed sets the audio context kept around each segment, in ms.
func WithBleed(ms float64) Option {
	return func(c *Converter) {
		c.bleed = ms
	}
}

// NewConverter creates a Converter.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		loader:   FileLoader,
		complete: true,
		bleed:    segment.DefaultBleed,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.sink == nil {
		return nil, errors.New("oto2seg: no sink")
	}
	if c.dict == nil {
		c.dict = lexicon.Default()
	}
	if c.bleed < 0 {
		return nil, fmt.Errorf("oto2seg: negative bleed %v", c.bleed)
	}
	return c, nil
}

// run is the state of one Run call.
type run struct {
	*Converter
	log     zerolog.Logger
	emitter *segment.Emitter
	report  *Report
	covered *coverage.Map
	names   map[string]bool // base names already written
}

// Run converts every entry of idx. Per-entry and per-clip failures are
// logged, recorded in the report and skipped. Run returns an error only when
// ctx is cancelled, together with the report of the work done so far.
func (c *Converter) Run(ctx context.Context, idx *oto.Index) (*Report, error) {
	id := uuid.NewString()
	r := &run{
		Converter: c,
		log:       c.logger.With().Str("run", id).Logger(),
		covered:   coverage.NewMap(),
		names:     make(map[string]bool),
		report: &Report{
			RunID:   id,
			Started: time.Now(),
			Entries: idx.Len(),
		},
	}
	r.emitter = segment.NewEmitter(c.sink, segment.WithBleed(c.bleed), segment.WithEmitLogger(r.log))

	mode := oto.DetectInitialMode(idx)
	r.report.InitialMode = string(mode)
	r.log.Info().Str("mode", mode.String()).Int("entries", idx.Len()).Int("clips", len(idx.Clips)).Msg("conversion started")

	for _, p := range idx.Problems {
		r.report.fail(Failure{Clip: p.Clip, Line: p.Line, Kind: failureKind(p.Err), Reason: p.Err.Error()})
	}

	err := r.primary(ctx, idx)
	r.report.Covered = r.covered.Keys()
	if err == nil && c.complete {
		err = r.completion(ctx)
	}
	r.report.Finished = time.Now()
	if err != nil {
		r.log.Warn().Err(err).Msg("conversion interrupted")
		return r.report, err
	}

	r.log.Info().
		Int("emitted", r.report.Emitted).
		Int("failed", len(r.report.Failures)).
		Int("substituted", len(r.report.Substituted)).
		Int("unresolved", len(r.report.Unresolved)).
		Msg("conversion finished")
	return r.report, nil
}

// primary emits every entry and records the transitions produced.
func (r *run) primary(ctx context.Context, idx *oto.Index) error {
	for _, clip := range idx.Clips {
		if err := ctx.Err(); err != nil {
			return err
		}
		log := r.log.With().Str("clip", clip.Name).Logger()

		pcm, err := r.loader.Load(clip.Path)
		if err != nil {
			log.Warn().Err(err).Int("entries", len(clip.Entries)).Msg("skip clip")
			for _, e := range clip.Entries {
				r.report.fail(Failure{Clip: clip.Name, Line: e.Line, Alias: e.Alias, Kind: KindClip, Reason: err.Error()})
			}
			continue
		}

		for _, e := range clip.Entries {
			if err := ctx.Err(); err != nil {
				return err
			}
			r.entry(log, pcm, e)
		}
	}
	return nil
}

func (r *run) entry(log zerolog.Logger, pcm *audio.Clip, e oto.Entry) {
	log = log.With().Str("alias", e.Alias).Int("line", e.Line).Logger()
	fail := func(kind string, err error) {
		f := Failure{Clip: e.Clip, Line: e.Line, Alias: e.Alias, Kind: kind, Reason: err.Error()}
		var ae *alias.Error
		if errors.As(err, &ae) {
			f.Suggestion = ae.Suggestion
		}
		r.report.fail(f)
		log.Warn().Err(err).Str("kind", kind).Msg("skip entry")
	}

	c, err := alias.Classify(r.dict, e.Alias)
	if err != nil {
		fail(failureKind(err), err)
		return
	}
	log = log.With().Str("type", string(c.Type)).Logger()

	info, err := segment.Derive(e, c)
	if err != nil {
		fail(KindDerive, err)
		return
	}
	if name := segment.FileName(info); r.names[name] {
		fail(KindDuplicate, fmt.Errorf("%w: %s", ErrDuplicate, name))
		return
	}
	out, err := r.emitter.Emit(pcm, info)
	if err != nil {
		fail(KindEmit, err)
		return
	}
	r.names[out.Name] = true

	r.report.Emitted++
	keys := r.covered.Record(info, e.Path)
	log.Debug().
		Str("name", out.Name).
		Strs("covers", keys).
		Float64("delta", out.Delta).
		Bool("alternative", c.Alternative).
		Msg("entry emitted")
}

// completion fills missing transitions from recorded ones.
func (r *run) completion(ctx context.Context) error {
	plan := coverage.NewPlan(r.covered, r.dict)
	r.report.MissingVC = plan.MissingVC
	r.report.MissingVR = plan.MissingVR
	r.log.Info().
		Int("covered", r.covered.Len()).
		Int("missing_vc", len(plan.MissingVC)).
		Int("missing_vr", len(plan.MissingVR)).
		Int("substitutes", len(plan.Substitutes)).
		Msg("coverage checked")

	var (
		lastPath string
		lastClip *audio.Clip
	)
	for _, s := range plan.Substitutes {
		if err := ctx.Err(); err != nil {
			return err
		}
		log := r.log.With().Str("key", s.Key).Str("donor", s.Donor).Logger()
		if name := segment.FileName(s.Info); r.names[name] {
			log.Warn().Str("name", name).Msg("substitute name already written")
			r.report.Unresolved = append(r.report.Unresolved, s.Key)
			continue
		}

		if s.Clip != lastPath {
			pcm, err := r.loader.Load(s.Clip)
			if err != nil {
				log.Warn().Err(err).Msg("cannot load donor clip")
				r.report.Unresolved = append(r.report.Unresolved, s.Key)
				continue
			}
			lastPath, lastClip = s.Clip, pcm
		}

		out, err := r.emitter.Emit(lastClip, s.Info)
		if err != nil {
			log.Warn().Err(err).Msg("cannot emit substitute")
			r.report.Unresolved = append(r.report.Unresolved, s.Key)
			continue
		}
		r.names[out.Name] = true
		r.report.Substituted = append(r.report.Substituted, Substitution{Key: s.Key, Donor: s.Donor, Clip: s.Clip, Name: out.Name})
		log.Info().Str("name", out.Name).Msg("substitute emitted")
	}

	for _, key := range plan.Unresolved {
		r.log.Warn().Str("key", key).Msg("no substitute found")
	}
	r.report.Unresolved = append(r.report.Unresolved, plan.Unresolved...)
	return nil
}
