// ABOUTME: Audio type definitions
// ABOUTME: Defines the decoded PCM clip and sample conversion helpers
package audio

// Clip holds a fully decoded audio clip as interleaved float32 PCM.
//
// A Clip is immutable after construction: the player publishes a new
// Clip pointer on every load instead of mutating an existing one, so
// the real-time render callback never observes a half-written buffer.
type Clip struct {
	// Samples is interleaved PCM in [-1, 1], TotalFrames*Channels long.
	Samples []float32

	SampleRate  int
	Channels    int
	TotalFrames int
}

// NewClip builds a clip from interleaved samples. The frame count is
// derived from the sample count, discarding any trailing partial frame.
func NewClip(samples []float32, sampleRate, channels int) *Clip {
	if channels < 1 {
		channels = 1
	}
	return &Clip{
		Samples:     samples,
		SampleRate:  sampleRate,
		Channels:    channels,
		TotalFrames: len(samples) / channels,
	}
}

// Duration returns the clip length in seconds.
func (c *Clip) Duration() float64 {
	if c == nil || c.SampleRate <= 0 {
		return 0
	}
	return float64(c.TotalFrames) / float64(c.SampleRate)
}

// Empty reports whether the clip holds no playable frames. A clip
// without a positive sample rate counts as empty: the render path
// divides by the rate and must never see zero.
func (c *Clip) Empty() bool {
	return c == nil || c.TotalFrames == 0 || c.SampleRate <= 0
}

// SampleFromInt16 converts a 16-bit PCM sample to float32 in [-1, 1].
func SampleFromInt16(s int16) float32 {
	return float32(s) / 32768.0
}

// SampleToInt16 converts a float32 sample to 16-bit PCM with clipping.
func SampleToInt16(s float32) int16 {
	v := s * 32767.0
	if v > 32767 {
		v = 32767
	} else if v < -32768 {
		v = -32768
	}
	return int16(v)
}

// Clamp pins v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
