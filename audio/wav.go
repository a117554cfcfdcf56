package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Format holds the PCM layout of a clip.
type Format struct {
	SampleRate    int
	BitsPerSample int
	NumChannels   int
}

// Clip is an in-memory PCM recording. Data is interleaved when NumChannels > 1.
// Clips are never modified in place; Slice and Concat return new clips.
type Clip struct {
	Format Format
	Data   []int
}

// NewClip creates a clip from interleaved PCM samples.
func NewClip(f Format, data []int) *Clip {
	return &Clip{Format: f, Data: data}
}

// ReadWAV decodes a PCM WAV stream into a clip.
func ReadWAV(r io.ReadSeeker) (*Clip, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, errors.New("not a valid WAV file")
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("read PCM data: %w", err)
	}
	if buf.Format == nil || buf.Format.SampleRate <= 0 || buf.Format.NumChannels <= 0 {
		return nil, errors.New("missing fmt chunk")
	}
	return &Clip{
		Format: Format{
			SampleRate:    buf.Format.SampleRate,
			BitsPerSample: int(d.BitDepth),
			NumChannels:   buf.Format.NumChannels,
		},
		Data: buf.Data,
	}, nil
}

// ReadWAVFile is a convenience wrapper that opens a file path.
func ReadWAVFile(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadWAV(f)
}

// Probe returns the duration of a WAV file in milliseconds without decoding
// its samples.
func Probe(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return 0, fmt.Errorf("%s: not a valid WAV file", path)
	}
	dur, err := d.Duration()
	if err != nil {
		return 0, fmt.Errorf("%s: read duration: %w", path, err)
	}
	return float64(dur.Microseconds()) / 1000, nil
}

// WriteWAV encodes the clip as PCM WAV.
func WriteWAV(w io.WriteSeeker, c *Clip) error {
	enc := wav.NewEncoder(w, c.Format.SampleRate, c.Format.BitsPerSample, c.Format.NumChannels, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{SampleRate: c.Format.SampleRate, NumChannels: c.Format.NumChannels},
		Data:           c.Data,
		SourceBitDepth: c.Format.BitsPerSample,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("write PCM data: %w", err)
	}
	return enc.Close()
}

// WriteWAVFile is a convenience wrapper that creates a file path.
func WriteWAVFile(path string, c *Clip) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteWAV(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Frames returns the number of sample frames (samples per channel).
func (c *Clip) Frames() int {
	if c.Format.NumChannels <= 0 {
		return 0
	}
	return len(c.Data) / c.Format.NumChannels
}

// Duration returns the clip length in milliseconds.
func (c *Clip) Duration() float64 {
	if c.Format.SampleRate <= 0 {
		return 0
	}
	return float64(c.Frames()) * 1000 / float64(c.Format.SampleRate)
}

// frameAt converts a time in milliseconds to a frame index clamped to the clip.
func (c *Clip) frameAt(ms float64) int {
	f := int(math.Round(ms * float64(c.Format.SampleRate) / 1000))
	if f < 0 {
		return 0
	}
	if n := c.Frames(); f > n {
		return n
	}
	return f
}

// Slice returns a copy of the frames between startMs and endMs. The range is
// clamped to the clip bounds.
func (c *Clip) Slice(startMs, endMs float64) *Clip {
	start, end := c.frameAt(startMs), c.frameAt(endMs)
	if end < start {
		end = start
	}
	ch := c.Format.NumChannels
	data := make([]int, (end-start)*ch)
	copy(data, c.Data[start*ch:end*ch])
	return &Clip{Format: c.Format, Data: data}
}

// Silence returns ms milliseconds of digital silence in format f.
func Silence(ms float64, f Format) *Clip {
	frames := int(math.Round(ms * float64(f.SampleRate) / 1000))
	if frames < 0 {
		frames = 0
	}
	return &Clip{Format: f, Data: make([]int, frames*f.NumChannels)}
}

// Concat joins clips end to end. All clips must share one format.
func Concat(clips ...*Clip) (*Clip, error) {
	if len(clips) == 0 {
		return nil, errors.New("concat: no clips")
	}
	f := clips[0].Format
	n := 0
	for _, c := range clips {
		if c.Format != f {
			return nil, fmt.Errorf("concat: format mismatch %+v vs %+v", c.Format, f)
		}
		n += len(c.Data)
	}
	data := make([]int, 0, n)
	for _, c := range clips {
		data = append(data, c.Data...)
	}
	return &Clip{Format: f, Data: data}, nil
}
