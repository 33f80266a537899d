// ABOUTME: Ogg Vorbis audio decoder
// ABOUTME: Decodes Ogg Vorbis files to float32 clips via oggvorbis
package decode

import (
	"bytes"
	"fmt"

	"github.com/MojaveHao/blophy-audio-go/pkg/audio"
	"github.com/jfreymuth/oggvorbis"
)

// Vorbis decodes Ogg Vorbis containers.
type Vorbis struct{}

// Decode converts Ogg Vorbis bytes to a PCM clip.
func (Vorbis) Decode(data []byte) (*audio.Clip, error) {
	samples, format, err := oggvorbis.ReadAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode ogg vorbis: %w", err)
	}

	return audio.NewClip(samples, format.SampleRate, format.Channels), nil
}
