//go:build cgo

// ABOUTME: Oto-based audio output backend
// ABOUTME: Drives the renderer from oto's pull loop using a float32 stream
package output

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// oto allows exactly one context per process, so it is shared across
// streams and kept at the format of the first open.
var (
	otoMu    sync.Mutex
	otoCtx   *oto.Context
	otoRate  int
	otoChans int
)

// Oto is an output device backed by the oto library.
type Oto struct{}

// NewOto creates a new oto-backed output device.
func NewOto() Device {
	return &Oto{}
}

// OpenStream opens a playback stream and wires the renderer into it.
func (o *Oto) OpenStream(cfg StreamConfig, r Renderer) (Stream, error) {
	cfg = cfg.withDefaults()

	otoMu.Lock()
	defer otoMu.Unlock()

	if otoCtx == nil {
		op := &oto.NewContextOptions{
			SampleRate:   cfg.SampleRate,
			ChannelCount: cfg.Channels,
			Format:       oto.FormatFloat32LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			return nil, fmt.Errorf("failed to create oto context: %w", err)
		}
		<-readyChan

		otoCtx = ctx
		otoRate = cfg.SampleRate
		otoChans = cfg.Channels

		log.Printf("Audio output initialized: %dHz, %d channels (oto)", cfg.SampleRate, cfg.Channels)
	} else if otoRate != cfg.SampleRate || otoChans != cfg.Channels {
		// oto cannot reinitialize; keep the existing context and let the
		// renderer adapt to its channel count.
		log.Printf("Warning: format change requested (%dHz %dch -> %dHz %dch) but oto doesn't support reinitialization",
			otoRate, otoChans, cfg.SampleRate, cfg.Channels)
	}

	src := &otoSource{renderer: r, channels: otoChans}
	s := &otoStream{
		src:    src,
		player: otoCtx.NewPlayer(src),
		done:   make(chan struct{}),
	}
	go s.watchErr()
	return s, nil
}

type otoStream struct {
	src    *otoSource
	player *oto.Player

	closeOnce sync.Once
	done      chan struct{}
}

func (s *otoStream) Start() error {
	s.player.Play()
	return nil
}

func (s *otoStream) Pause() error {
	s.player.Pause()
	return nil
}

func (s *otoStream) Resume() error {
	s.player.Play()
	return nil
}

func (s *otoStream) Stop() error {
	s.player.Pause()
	return nil
}

func (s *otoStream) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.player.Close()
	})
	return err
}

// watchErr polls the player for asynchronous failures; oto has no
// error callback of its own.
func (s *otoStream) watchErr() {
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			if err := s.player.Err(); err != nil {
				log.Printf("Audio stream error: %v", err)
				s.src.renderer.OnStreamError(err)
				return
			}
		}
	}
}
