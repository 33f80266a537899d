// ABOUTME: Package documentation for audio types
// ABOUTME: Describes the decoded clip representation
// Package audio defines the decoded PCM clip representation shared by
// the decoders, the player, and the output backends.
//
// All audio in this module is interleaved 32-bit float PCM in [-1, 1].
package audio
