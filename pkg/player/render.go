// ABOUTME: Real-time render engine
// ABOUTME: Fills output buffers from the clip, handling volume, looping, and end-of-clip
package player

import (
	"github.com/MojaveHao/blophy-audio-go/pkg/audio"
	"github.com/MojaveHao/blophy-audio-go/pkg/audio/output"
)

// RenderAudio implements output.Renderer. It runs on the backend's
// audio thread: no locks, no allocation, no I/O. Anything other than
// an actively playing clip produces silence and keeps the stream
// alive, so pause/resume and late loading never require stream teardown.
func (p *Player) RenderAudio(out []float32, frames, channels int) output.Result {
	out = out[:frames*channels]

	clip := p.clip.Load()
	if State(p.state.Load()) != StatePlaying || clip.Empty() {
		zeroFill(out)
		return output.Continue
	}

	sampleRate := float64(clip.SampleRate)
	bufferTime := float64(frames) / sampleRate

	currentFrame := int(p.CurrentTime() * sampleRate)
	if currentFrame < 0 {
		currentFrame = 0
	}
	framesToCopy := clip.TotalFrames - currentFrame
	if framesToCopy > frames {
		framesToCopy = frames
	}
	if framesToCopy < 0 {
		framesToCopy = 0
	}

	vol := p.Volume()
	copyFrames(out, clip, currentFrame, 0, framesToCopy, channels, vol)

	if framesToCopy < frames {
		remaining := frames - framesToCopy

		if p.loop.Load() {
			// Wrap to the start of the clip. The clock jumps to the
			// wrapped position reached by the end of this buffer; it
			// does not accumulate the pre-wrap frames.
			for i := 0; i < remaining; i++ {
				src := (i % clip.TotalFrames) * clip.Channels
				dst := (framesToCopy + i) * channels
				for c := 0; c < channels; c++ {
					out[dst+c] = clip.Samples[src+c%clip.Channels] * vol
				}
			}
			p.storeTime(float64(remaining) / sampleRate)
			return output.Continue
		}

		zeroFill(out[framesToCopy*channels:])
		t := p.CurrentTime() + bufferTime
		p.storeTime(t)
		if t >= clip.Duration() {
			p.setState(StateStopped)
			return output.Stop
		}
		return output.Continue
	}

	p.storeTime(p.CurrentTime() + bufferTime)
	return output.Continue
}

// copyFrames copies n source frames starting at srcFrame into the
// destination starting at dstFrame, adapting channel counts: output
// channel c reads source channel c mod clipChannels, so a mono clip
// feeds a stereo device by replication and vice versa by truncation.
func copyFrames(out []float32, clip *audio.Clip, srcFrame, dstFrame, n, channels int, vol float32) {
	for i := 0; i < n; i++ {
		src := (srcFrame + i) * clip.Channels
		dst := (dstFrame + i) * channels
		for c := 0; c < channels; c++ {
			out[dst+c] = clip.Samples[src+c%clip.Channels] * vol
		}
	}
}

func zeroFill(out []float32) {
	for i := range out {
		out[i] = 0
	}
}
