// ABOUTME: MP3 audio decoder
// ABOUTME: Decodes MP3 files to float32 clips via go-mp3
package decode

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/MojaveHao/blophy-audio-go/pkg/audio"
	mp3 "github.com/hajimehoshi/go-mp3"
)

// MP3 decodes MPEG layer 3 streams.
type MP3 struct{}

// Decode converts MP3 bytes to a PCM clip. go-mp3 always emits
// 16-bit little-endian stereo.
func (MP3) Decode(data []byte) (*audio.Clip, error) {
	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create mp3 decoder: %w", err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("mp3 decode error: %w", err)
	}

	numSamples := len(raw) / 2
	samples := make([]float32, numSamples)
	for i := 0; i < numSamples; i++ {
		s := int16(binary.LittleEndian.Uint16(raw[i*2:]))
		samples[i] = audio.SampleFromInt16(s)
	}

	return audio.NewClip(samples, dec.SampleRate(), 2), nil
}
