//go:build cgo

// ABOUTME: Malgo-based audio output backend
// ABOUTME: True data-callback playback via the miniaudio library
package output

import (
	"encoding/binary"
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/gen2brain/malgo"
)

// Malgo is an output device backed by malgo/miniaudio. Unlike oto it
// invokes the renderer directly from the device's data callback.
type Malgo struct {
	mu  sync.Mutex
	ctx *malgo.AllocatedContext
}

// NewMalgo creates a new malgo-backed output device.
func NewMalgo() Device {
	return &Malgo{}
}

// OpenStream opens a playback device at the requested format.
func (m *Malgo) OpenStream(cfg StreamConfig, r Renderer) (Stream, error) {
	cfg = cfg.withDefaults()

	m.mu.Lock()
	if m.ctx == nil {
		ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
		if err != nil {
			m.mu.Unlock()
			return nil, fmt.Errorf("failed to initialize malgo context: %w", err)
		}
		m.ctx = ctx
	}
	ctx := m.ctx
	m.mu.Unlock()

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Playback)
	deviceConfig.Playback.Format = malgo.FormatF32
	deviceConfig.Playback.Channels = uint32(cfg.Channels)
	deviceConfig.SampleRate = uint32(cfg.SampleRate)
	deviceConfig.Alsa.NoMMap = 1

	s := &malgoStream{renderer: r, channels: cfg.Channels}

	deviceCallbacks := malgo.DeviceCallbacks{
		Data: func(pOutput, _ []byte, frameCount uint32) {
			s.dataCallback(pOutput, frameCount)
		},
	}

	device, err := malgo.InitDevice(ctx.Context, deviceConfig, deviceCallbacks)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize playback device: %w", err)
	}
	s.device = device

	log.Printf("Audio output initialized: %dHz, %d channels (malgo)", cfg.SampleRate, cfg.Channels)

	return s, nil
}

type malgoStream struct {
	renderer Renderer
	device   *malgo.Device
	channels int

	mu      sync.Mutex
	scratch []float32
	halted  bool

	stopOnce sync.Once
}

// dataCallback runs on miniaudio's audio thread.
func (s *malgoStream) dataCallback(pOutput []byte, frameCount uint32) {
	frames := int(frameCount)
	samples := frames * s.channels

	s.mu.Lock()
	if s.halted {
		s.mu.Unlock()
		for i := range pOutput {
			pOutput[i] = 0
		}
		return
	}
	if cap(s.scratch) < samples {
		s.scratch = make([]float32, samples)
	}
	buf := s.scratch[:samples]
	s.mu.Unlock()

	res := s.renderer.RenderAudio(buf, frames, s.channels)

	for i, v := range buf {
		binary.LittleEndian.PutUint32(pOutput[i*4:], math.Float32bits(v))
	}

	if res == Stop {
		s.mu.Lock()
		s.halted = true
		s.mu.Unlock()
		// Stopping the device from its own callback thread would
		// deadlock; hand it off.
		s.stopOnce.Do(func() {
			go func() {
				if err := s.device.Stop(); err != nil {
					log.Printf("Warning: device stop error: %v", err)
				}
			}()
		})
	}
}

func (s *malgoStream) Start() error {
	s.mu.Lock()
	s.halted = false
	s.mu.Unlock()
	if err := s.device.Start(); err != nil {
		return fmt.Errorf("failed to start device: %w", err)
	}
	return nil
}

func (s *malgoStream) Pause() error {
	if err := s.device.Stop(); err != nil {
		return fmt.Errorf("failed to pause device: %w", err)
	}
	return nil
}

func (s *malgoStream) Resume() error {
	return s.Start()
}

func (s *malgoStream) Stop() error {
	s.mu.Lock()
	s.halted = true
	s.mu.Unlock()
	if err := s.device.Stop(); err != nil {
		return fmt.Errorf("failed to stop device: %w", err)
	}
	return nil
}

func (s *malgoStream) Close() error {
	_ = s.Stop()
	s.device.Uninit()
	return nil
}
