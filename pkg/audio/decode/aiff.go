// ABOUTME: AIFF audio decoder
// ABOUTME: Decodes AIFF files to float32 clips via go-audio
package decode

import (
	"bytes"
	"fmt"

	"github.com/MojaveHao/blophy-audio-go/pkg/audio"
	"github.com/go-audio/aiff"
)

// AIFF decodes AIFF containers.
type AIFF struct{}

// Decode converts AIFF bytes to a PCM clip.
func (AIFF) Decode(data []byte) (*audio.Clip, error) {
	dec := aiff.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid aiff file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode aiff: %w", err)
	}
	return clipFromPCM(buf, int(dec.BitDepth)), nil
}
