//go:build !cgo

// ABOUTME: Oto stub when cgo is not available
// ABOUTME: Provides compile-time placeholder for the oto backend
package output

import "fmt"

// Oto output device (stub).
type Oto struct{}

// NewOto creates a new oto-backed output device.
func NewOto() Device {
	return &Oto{}
}

// OpenStream always fails: the oto backend needs cgo on this platform.
func (o *Oto) OpenStream(cfg StreamConfig, r Renderer) (Stream, error) {
	return nil, fmt.Errorf("oto support not enabled (build with cgo)")
}
