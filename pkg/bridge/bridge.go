// ABOUTME: Handle registry for host-bridge integration
// ABOUTME: Maps opaque handles to players with benign-default semantics
package bridge

import (
	"sync"

	"github.com/MojaveHao/blophy-audio-go/pkg/player"
)

// Handle identifies a player across the bridge boundary. Handles are
// never reused within a registry's lifetime.
type Handle uint64

// Registry owns the handle-to-player mapping a host bridge calls into.
// All methods are safe for concurrent use from arbitrary caller
// threads. Operations on unknown or destroyed handles are no-ops that
// return a benign default (0, false, Idle) rather than failing.
type Registry struct {
	cfg player.Config

	mu      sync.RWMutex
	players map[Handle]*player.Player
	next    Handle
}

// NewRegistry creates an empty registry. Every player it creates
// shares the given configuration.
func NewRegistry(cfg player.Config) *Registry {
	return &Registry{
		cfg:     cfg,
		players: make(map[Handle]*player.Player),
		next:    1,
	}
}

// Create allocates a new idle player and returns its handle.
func (r *Registry) Create() Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	h := r.next
	r.next++
	r.players[h] = player.New(r.cfg)
	return h
}

// Destroy closes the player and releases its handle. The close joins
// any pending delayed play and tears down the output stream before
// this returns.
func (r *Registry) Destroy(h Handle) {
	r.mu.Lock()
	p, ok := r.players[h]
	if ok {
		delete(r.players, h)
	}
	r.mu.Unlock()

	if ok {
		p.Close()
	}
}

// Count returns the number of live players.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}

func (r *Registry) get(h Handle) (*player.Player, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.players[h]
	return p, ok
}

// SetClip loads a clip into the player, reporting success.
func (r *Registry) SetClip(h Handle, path string) bool {
	p, ok := r.get(h)
	if !ok {
		return false
	}
	return p.SetClip(path) == nil
}

// Play starts or resumes playback.
func (r *Registry) Play(h Handle) {
	if p, ok := r.get(h); ok {
		p.Play()
	}
}

// PlayWithDelay schedules playback after the given seconds.
func (r *Registry) PlayWithDelay(h Handle, seconds float64) {
	if p, ok := r.get(h); ok {
		p.PlayWithDelay(seconds)
	}
}

// Pause freezes playback.
func (r *Registry) Pause(h Handle) {
	if p, ok := r.get(h); ok {
		p.Pause()
	}
}

// Stop halts playback and rewinds to zero.
func (r *Registry) Stop(h Handle) {
	if p, ok := r.get(h); ok {
		p.Stop()
	}
}

// Unpause resumes a paused player.
func (r *Registry) Unpause(h Handle) {
	if p, ok := r.get(h); ok {
		p.Unpause()
	}
}

// GetCurrentTime returns the playback position in seconds.
func (r *Registry) GetCurrentTime(h Handle) float64 {
	if p, ok := r.get(h); ok {
		return p.CurrentTime()
	}
	return 0
}

// GetMusicLength returns the loaded clip's duration in seconds.
func (r *Registry) GetMusicLength(h Handle) float64 {
	if p, ok := r.get(h); ok {
		return p.MusicLength()
	}
	return 0
}

// SetCurrentTime seeks to the given position.
func (r *Registry) SetCurrentTime(h Handle, seconds float64) {
	if p, ok := r.get(h); ok {
		p.SetCurrentTime(seconds)
	}
}

// OffsetTime seeks relative to the current position.
func (r *Registry) OffsetTime(h Handle, seconds float64) {
	if p, ok := r.get(h); ok {
		p.OffsetTime(seconds)
	}
}

// ResetTime rewinds the clock without touching transport state.
func (r *Registry) ResetTime(h Handle) {
	if p, ok := r.get(h); ok {
		p.ResetTime()
	}
}

// RestartTime rewinds and, if playing, restarts the stream.
func (r *Registry) RestartTime(h Handle) {
	if p, ok := r.get(h); ok {
		p.RestartTime()
	}
}

// SetVolume sets the volume, clamped to [0, 1].
func (r *Registry) SetVolume(h Handle, volume float32) {
	if p, ok := r.get(h); ok {
		p.SetVolume(volume)
	}
}

// GetVolume returns the current volume.
func (r *Registry) GetVolume(h Handle) float32 {
	if p, ok := r.get(h); ok {
		return p.Volume()
	}
	return 0
}

// SetLoop sets the looping flag.
func (r *Registry) SetLoop(h Handle, loop bool) {
	if p, ok := r.get(h); ok {
		p.SetLoop(loop)
	}
}

// GetLoop returns the looping flag.
func (r *Registry) GetLoop(h Handle) bool {
	if p, ok := r.get(h); ok {
		return p.Loop()
	}
	return false
}

// IsPlaying reports whether the player is in the Playing state.
func (r *Registry) IsPlaying(h Handle) bool {
	if p, ok := r.get(h); ok {
		return p.IsPlaying()
	}
	return false
}

// GetState returns the transport state.
func (r *Registry) GetState(h Handle) player.State {
	if p, ok := r.get(h); ok {
		return p.State()
	}
	return player.StateIdle
}

// Close destroys every remaining player. The registry stays usable.
func (r *Registry) Close() {
	r.mu.Lock()
	players := r.players
	r.players = make(map[Handle]*player.Player)
	r.mu.Unlock()

	for _, p := range players {
		p.Close()
	}
}
