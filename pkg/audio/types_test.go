// ABOUTME: Tests for audio clip type and sample helpers
// ABOUTME: Covers frame derivation, duration math, and clamping
package audio

import "testing"

func TestNewClipDerivesFrames(t *testing.T) {
	clip := NewClip(make([]float32, 96000*2), 48000, 2)

	if clip.TotalFrames != 96000 {
		t.Errorf("expected 96000 frames, got %d", clip.TotalFrames)
	}
	if clip.Duration() != 2.0 {
		t.Errorf("expected duration 2.0s, got %v", clip.Duration())
	}
}

func TestNewClipDiscardsPartialFrame(t *testing.T) {
	clip := NewClip(make([]float32, 7), 44100, 2)

	if clip.TotalFrames != 3 {
		t.Errorf("expected 3 frames from 7 samples at 2 channels, got %d", clip.TotalFrames)
	}
}

func TestNilClipIsEmpty(t *testing.T) {
	var clip *Clip
	if !clip.Empty() {
		t.Error("nil clip should be empty")
	}
	if clip.Duration() != 0 {
		t.Errorf("nil clip duration should be 0, got %v", clip.Duration())
	}
}

func TestInvalidSampleRateIsEmpty(t *testing.T) {
	for _, rate := range []int{0, -48000} {
		clip := NewClip(make([]float32, 9600), rate, 2)
		if !clip.Empty() {
			t.Errorf("clip with sample rate %d should be empty", rate)
		}
		if clip.Duration() != 0 {
			t.Errorf("clip with sample rate %d should have 0 duration, got %v", rate, clip.Duration())
		}
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want float64
	}{
		{-1, 0, 1, 0},
		{0.5, 0, 1, 0.5},
		{2, 0, 1, 1},
		{5, 0, 0, 0},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestSampleConversionRoundTrip(t *testing.T) {
	if got := SampleFromInt16(-32768); got != -1.0 {
		t.Errorf("expected -1.0, got %v", got)
	}
	if got := SampleToInt16(1.0); got != 32767 {
		t.Errorf("expected 32767, got %d", got)
	}
	if got := SampleToInt16(-2.0); got != -32768 {
		t.Errorf("expected clipped -32768, got %d", got)
	}
}
