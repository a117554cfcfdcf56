package segment

import "math"

const (
	// SampleRate is the grid boundaries are snapped to.
	SampleRate = 44100
	// MinGap is the shortest allowed distance between boundaries, in ms.
	MinGap = 10.0
)

// minGapSamples is MinGap on the sample grid.
var minGapSamples = int64(math.Ceil(MinGap * SampleRate / 1000))

// Quantize snaps boundaries (ms) to the sample grid: the first is rounded
// down, the last up, the rest down. Then, from right to left, any boundary
// closer than MinGap to its successor is pulled back to exactly MinGap before
// it. The last boundary never moves after rounding. Quantize is idempotent
// and does not modify its argument.
func Quantize(boundaries []float64) []float64 {
	n := len(boundaries)
	if n == 0 {
		return nil
	}

	idx := make([]int64, n)
	for i, ms := range boundaries {
		if i == n-1 && n > 1 {
			idx[i] = toSample(ms, math.Ceil)
		} else {
			idx[i] = toSample(ms, math.Floor)
		}
	}
	for i := n - 2; i >= 0; i-- {
		if idx[i+1]-idx[i] < minGapSamples {
			idx[i] = idx[i+1] - minGapSamples
		}
	}

	out := make([]float64, n)
	for i, s := range idx {
		out[i] = float64(s) * 1000 / SampleRate
	}
	return out
}

// toSample converts ms to a sample index with round. Values within float
// noise of a grid point snap to it so that quantized input is a fixed point.
func toSample(ms float64, round func(float64) float64) int64 {
	s := ms * SampleRate / 1000
	if r := math.Round(s); math.Abs(s-r) < 1e-6 {
		return int64(r)
	}
	return int64(round(s))
}
