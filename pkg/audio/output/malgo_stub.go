//go:build !cgo

// ABOUTME: Malgo stub when cgo is not available
// ABOUTME: Provides compile-time placeholder for the miniaudio backend
package output

import "fmt"

// Malgo output device (stub).
type Malgo struct{}

// NewMalgo creates a new malgo-backed output device.
func NewMalgo() Device {
	return &Malgo{}
}

// OpenStream always fails: the miniaudio backend needs cgo.
func (m *Malgo) OpenStream(cfg StreamConfig, r Renderer) (Stream, error) {
	return nil, fmt.Errorf("malgo support not enabled (build with cgo)")
}
