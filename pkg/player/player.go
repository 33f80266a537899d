// ABOUTME: Single-clip audio player core
// ABOUTME: Owns transport state machine, clip loading, and stream lifecycle
package player

import (
	"fmt"
	"log"
	"math"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MojaveHao/blophy-audio-go/pkg/assets"
	"github.com/MojaveHao/blophy-audio-go/pkg/audio"
	"github.com/MojaveHao/blophy-audio-go/pkg/audio/decode"
	"github.com/MojaveHao/blophy-audio-go/pkg/audio/output"
	"github.com/google/uuid"
)

// AssetPrefix selects the asset store: a clip path starting with it is
// resolved against Config.Assets with the prefix stripped, everything
// else against Config.Files.
const AssetPrefix = "assets/"

// Config holds player configuration.
type Config struct {
	// Device opens output streams. Defaults to the oto backend.
	Device output.Device

	// Assets resolves "assets/"-prefixed clip paths (bundled clips).
	// Loads of such paths fail when unset.
	Assets assets.Store

	// Files resolves all other clip paths. Defaults to direct
	// filesystem reads.
	Files assets.Store

	// OnStateChange, if set, is called on every transport transition.
	// End-of-clip fires it from the audio callback thread, so it must
	// not block.
	OnStateChange func(State)

	// OnError, if set, receives stream open and stream runtime errors.
	OnError func(error)
}

// Player plays one decoded clip at a time through an output stream.
//
// Transport and seek methods may be called from any goroutine. The
// render callback reads only atomics and the published clip pointer,
// so it never contends with a load or a transport call.
type Player struct {
	id  uuid.UUID
	cfg Config

	state    atomic.Int32
	timeBits atomic.Uint64 // float64 seconds
	volBits  atomic.Uint32 // float32 in [0, 1]
	loop     atomic.Bool
	closed   atomic.Bool

	clip atomic.Pointer[audio.Clip]

	// mu guards stream lifecycle and transport transitions. Caller
	// threads only; the render callback never takes it.
	mu       sync.Mutex
	stream   output.Stream
	clipPath string

	// Delay scheduler state; independent of the render path.
	delayMu     sync.Mutex
	delayCancel chan struct{}
	delayDone   chan struct{}
	after       func(time.Duration) <-chan time.Time
}

// New creates an idle player with no clip loaded and volume 1.
func New(cfg Config) *Player {
	if cfg.Device == nil {
		cfg.Device = output.NewOto()
	}
	if cfg.Files == nil {
		cfg.Files = assets.Dir("")
	}

	p := &Player{
		id:    uuid.New(),
		cfg:   cfg,
		after: time.After,
	}
	p.state.Store(int32(StateIdle))
	p.volBits.Store(math.Float32bits(1.0))
	return p
}

// ID returns the player's instance id, used in log lines.
func (p *Player) ID() uuid.UUID {
	return p.id
}

// SetClip loads and decodes the clip at path, atomically replacing any
// prior clip. Transport state and the playback clock are untouched;
// callers that are playing should Stop first.
func (p *Player) SetClip(path string) error {
	if p.closed.Load() {
		return ErrClosed
	}

	data, err := p.loadBytes(path)
	if err != nil {
		log.Printf("player %s: failed to load audio file %s: %v", p.id, path, err)
		return err
	}

	dec, err := decode.ForPath(path)
	if err != nil {
		log.Printf("player %s: %v: %s", p.id, err, path)
		return fmt.Errorf("%w: %s", err, path)
	}

	clip, err := dec.Decode(data)
	if err != nil {
		log.Printf("player %s: failed to decode %s: %v", p.id, path, err)
		return err
	}
	if clip.Empty() {
		return fmt.Errorf("%w: %s", ErrEmptyClip, path)
	}

	p.mu.Lock()
	p.clipPath = path
	p.mu.Unlock()
	p.clip.Store(clip)

	log.Printf("player %s: loaded %s: %dHz, %d channels, %d frames",
		p.id, path, clip.SampleRate, clip.Channels, clip.TotalFrames)
	return nil
}

// loadBytes retrieves raw file bytes through the configured stores.
func (p *Player) loadBytes(path string) ([]byte, error) {
	if name, ok := strings.CutPrefix(path, AssetPrefix); ok {
		if p.cfg.Assets == nil {
			return nil, ErrNoAssetStore
		}
		return p.cfg.Assets.Load(name)
	}
	return p.cfg.Files.Load(path)
}

// ClipPath returns the path of the currently loaded clip.
func (p *Player) ClipPath() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.clipPath
}

// Clip returns the currently published clip, or nil.
func (p *Player) Clip() *audio.Clip {
	return p.clip.Load()
}

// Play starts playback. From Paused it resumes the existing stream;
// while Playing it is a no-op; from Idle or Stopped it opens a fresh
// output stream and starts it. A stream-open failure leaves the state
// unchanged and is reported through Config.OnError.
func (p *Player) Play() {
	if p.closed.Load() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	switch State(p.state.Load()) {
	case StatePaused:
		p.unpauseLocked()
	case StatePlaying:
		// Idempotent.
	default:
		p.openAndStartLocked()
	}
}

func (p *Player) openAndStartLocked() {
	cfg := output.StreamConfig{SampleRate: 48000, Channels: 2}
	if clip := p.clip.Load(); !clip.Empty() {
		cfg = output.StreamConfig{SampleRate: clip.SampleRate, Channels: clip.Channels}
	}

	if p.stream != nil {
		if err := p.stream.Close(); err != nil {
			log.Printf("player %s: error closing previous stream: %v", p.id, err)
		}
		p.stream = nil
	}

	stream, err := p.cfg.Device.OpenStream(cfg, p)
	if err != nil {
		log.Printf("player %s: failed to open audio stream: %v", p.id, err)
		p.reportError(err)
		return
	}

	if err := stream.Start(); err != nil {
		log.Printf("player %s: failed to start audio stream: %v", p.id, err)
		p.reportError(err)
		stream.Close()
		return
	}

	p.stream = stream
	p.setState(StatePlaying)
}

// Pause freezes playback, keeping the stream open for a cheap resume.
func (p *Player) Pause() {
	if p.closed.Load() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if State(p.state.Load()) != StatePlaying {
		return
	}
	if p.stream != nil {
		if err := p.stream.Pause(); err != nil {
			log.Printf("player %s: failed to pause stream: %v", p.id, err)
		}
	}
	p.setState(StatePaused)
}

// Stop halts the stream and rewinds the playback clock to zero.
func (p *Player) Stop() {
	if p.closed.Load() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stream != nil {
		if err := p.stream.Stop(); err != nil {
			log.Printf("player %s: failed to stop stream: %v", p.id, err)
		}
	}
	p.setState(StateStopped)
	p.storeTime(0)
}

// Unpause resumes a paused player; any other state is a no-op.
func (p *Player) Unpause() {
	if p.closed.Load() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if State(p.state.Load()) != StatePaused {
		return
	}
	p.unpauseLocked()
}

func (p *Player) unpauseLocked() {
	if p.stream != nil {
		if err := p.stream.Resume(); err != nil {
			log.Printf("player %s: failed to resume stream: %v", p.id, err)
			p.reportError(err)
			return
		}
	}
	p.setState(StatePlaying)
}

// IsPlaying reports whether the transport is in the Playing state.
func (p *Player) IsPlaying() bool {
	return State(p.state.Load()) == StatePlaying
}

// State returns the current transport state.
func (p *Player) State() State {
	return State(p.state.Load())
}

// SetVolume sets the playback volume, clamped to [0, 1].
func (p *Player) SetVolume(v float32) {
	v = float32(audio.Clamp(float64(v), 0, 1))
	p.volBits.Store(math.Float32bits(v))
}

// Volume returns the current playback volume.
func (p *Player) Volume() float32 {
	return math.Float32frombits(p.volBits.Load())
}

// SetLoop enables or disables looping; read by the render callback on
// every buffer.
func (p *Player) SetLoop(loop bool) {
	p.loop.Store(loop)
}

// Loop returns the looping flag.
func (p *Player) Loop() bool {
	return p.loop.Load()
}

// Close cancels any pending delayed play, waits for its goroutine to
// exit, and tears down the output stream. Idempotent; all operations
// on a closed player are no-ops.
func (p *Player) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}

	// closed is already set, so a delayed play that slipped past the
	// cancel check can no longer start playback.
	p.cancelDelay()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stream != nil {
		if err := p.stream.Close(); err != nil {
			log.Printf("player %s: error closing stream: %v", p.id, err)
		}
		p.stream = nil
	}
	return nil
}

// setState stores the new state and fires the state hook on change.
func (p *Player) setState(s State) {
	old := State(p.state.Swap(int32(s)))
	if old != s && p.cfg.OnStateChange != nil {
		p.cfg.OnStateChange(s)
	}
}

func (p *Player) reportError(err error) {
	if p.cfg.OnError != nil {
		p.cfg.OnError(err)
	}
}

// OnStreamError implements output.Renderer: an asynchronous stream
// failure stops the transport unconditionally. No recreation is
// attempted.
func (p *Player) OnStreamError(err error) {
	log.Printf("player %s: audio stream error: %v", p.id, err)
	p.setState(StateStopped)
	p.reportError(err)
}
