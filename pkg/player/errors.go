// ABOUTME: Sentinel errors for the player package
// ABOUTME: Load and lifecycle failure values
package player

import "errors"

var (
	// ErrClosed is returned by operations on a closed player.
	ErrClosed = errors.New("player is closed")

	// ErrNoAssetStore is returned when an assets/ path is loaded but no
	// asset store was configured.
	ErrNoAssetStore = errors.New("no asset store configured")

	// ErrEmptyClip is returned when a file decodes to zero frames.
	ErrEmptyClip = errors.New("clip decoded to no frames")
)
