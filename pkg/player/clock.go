// ABOUTME: Playback clock operations
// ABOUTME: Seconds-based position derived from the clip's frame index
package player

import (
	"math"

	"github.com/MojaveHao/blophy-audio-go/pkg/audio"
)

// CurrentTime returns the playback position in seconds.
func (p *Player) CurrentTime() float64 {
	return math.Float64frombits(p.timeBits.Load())
}

func (p *Player) storeTime(t float64) {
	p.timeBits.Store(math.Float64bits(t))
}

// MusicLength returns the loaded clip's duration in seconds, 0 when
// nothing is loaded.
func (p *Player) MusicLength() float64 {
	return p.clip.Load().Duration()
}

// SetCurrentTime seeks to t seconds, clamped to [0, MusicLength].
// Seeking never wraps; wraparound only happens through natural
// playback advance with looping enabled.
func (p *Player) SetCurrentTime(t float64) {
	p.storeTime(audio.Clamp(t, 0, p.MusicLength()))
}

// OffsetTime seeks relative to the current position, with the same
// clamping as SetCurrentTime.
func (p *Player) OffsetTime(delta float64) {
	p.SetCurrentTime(p.CurrentTime() + delta)
}

// ResetTime rewinds the clock to zero without touching transport state.
func (p *Player) ResetTime() {
	p.storeTime(0)
}

// RestartTime rewinds the clock to zero and, if currently playing,
// performs a full stop+play cycle that reopens the output stream.
func (p *Player) RestartTime() {
	p.storeTime(0)
	if p.IsPlaying() {
		p.Stop()
		p.Play()
	}
}
