// ABOUTME: Player package documentation
// ABOUTME: Describes the single-clip playback engine and its threading rules
// Package player implements a single-clip real-time playback engine.
//
// A Player owns one decoded clip, a transport state machine
// (idle/playing/paused/stopped), a seconds-based playback clock, and a
// cancellable delayed-play timer. The output backend invokes the
// player's render callback on its own audio thread; that path reads
// only atomics and an atomically published clip pointer, and never
// blocks on loads or transport calls happening elsewhere.
package player
