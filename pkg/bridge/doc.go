// ABOUTME: Bridge package documentation
// ABOUTME: Describes the handle-based contract for host integrations
// Package bridge exposes players through opaque numeric handles, the
// contract a C-ABI or other host-language layer forwards to. Invalid
// handles are silently ignored and read operations on them return
// benign defaults, so a stale handle on the host side can never crash
// the engine.
package bridge
