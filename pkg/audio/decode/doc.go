// ABOUTME: Decode package documentation
// ABOUTME: Lists the supported containers and the clip convention
// Package decode turns encoded audio files into PCM clips.
//
// Supported containers: WAV, AIFF, MP3, Ogg Vorbis, and FLAC. Decoders
// are selected by file extension through ForPath; custom formats can be
// added with Register.
package decode
