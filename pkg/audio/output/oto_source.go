// ABOUTME: Pull adapter between the renderer callback and oto's Read loop
// ABOUTME: Kept free of oto imports so it builds without cgo
package output

import (
	"encoding/binary"
	"io"
	"math"
	"sync"
)

// otoSource adapts oto's pull model to the renderer callback: every
// Read renders exactly the requested frames into the byte buffer.
type otoSource struct {
	renderer Renderer
	channels int

	mu      sync.Mutex
	scratch []float32
	stopped bool
}

func (s *otoSource) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return 0, io.EOF
	}

	frames := len(p) / (4 * s.channels)
	if frames == 0 {
		return 0, nil
	}
	samples := frames * s.channels

	if cap(s.scratch) < samples {
		s.scratch = make([]float32, samples)
	}
	buf := s.scratch[:samples]

	res := s.renderer.RenderAudio(buf, frames, s.channels)

	for i, v := range buf {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(v))
	}

	if res == Stop {
		s.stopped = true
		return samples * 4, io.EOF
	}
	return samples * 4, nil
}
