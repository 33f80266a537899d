// ABOUTME: Audio output interface definitions
// ABOUTME: Callback-driven stream contract between the engine and playback backends
package output

// Result tells the backend what to do after a render callback.
type Result int

const (
	// Continue keeps the stream alive for the next buffer request.
	Continue Result = iota
	// Stop asks the backend to stop the stream after this buffer.
	Stop
)

// Renderer produces audio on the backend's callback thread.
//
// RenderAudio must fill out[:frames*channels] completely and return in
// bounded time: no locks held across I/O, no allocation, no blocking.
type Renderer interface {
	RenderAudio(out []float32, frames, channels int) Result

	// OnStreamError reports an asynchronous stream failure. The stream
	// is unusable afterwards; the backend does not recreate it.
	OnStreamError(err error)
}

// Stream is a live connection to an output device. All methods are
// synchronous, may block, and must only be called from caller threads,
// never from the render callback.
type Stream interface {
	Start() error
	Pause() error
	Resume() error
	Stop() error
	Close() error
}

// StreamConfig describes the format a stream is opened with.
type StreamConfig struct {
	SampleRate int
	Channels   int
}

func (c StreamConfig) withDefaults() StreamConfig {
	if c.SampleRate <= 0 {
		c.SampleRate = 48000
	}
	if c.Channels <= 0 {
		c.Channels = 2
	}
	return c
}

// Device opens output streams. The renderer is invoked repeatedly on
// the device's own thread once the stream is started.
type Device interface {
	OpenStream(cfg StreamConfig, r Renderer) (Stream, error)
}
