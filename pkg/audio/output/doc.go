// ABOUTME: Audio output package documentation
// ABOUTME: Describes the callback stream model and available backends
// Package output provides callback-driven audio playback.
//
// A Renderer is invoked on the backend's audio thread once per hardware
// buffer request and must fill the buffer without blocking. Two
// backends are provided: oto (pure Go, pull-based under the hood) and
// malgo (miniaudio, requires cgo).
package output
