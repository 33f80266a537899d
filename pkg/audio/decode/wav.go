// ABOUTME: WAV audio decoder
// ABOUTME: Decodes RIFF/WAVE files to float32 clips via go-audio
package decode

import (
	"bytes"
	"fmt"

	"github.com/MojaveHao/blophy-audio-go/pkg/audio"
	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WAV decodes RIFF/WAVE containers.
type WAV struct{}

// Decode converts WAV bytes to a PCM clip.
func (WAV) Decode(data []byte) (*audio.Clip, error) {
	dec := wav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav: %w", err)
	}
	return clipFromPCM(buf, int(dec.BitDepth)), nil
}

// clipFromPCM converts a decoded go-audio integer buffer to a clip,
// normalizing to [-1, 1] by the source bit depth. go-audio's own
// float conversion is a plain cast and does not normalize.
func clipFromPCM(buf *gaudio.IntBuffer, bitDepth int) *audio.Clip {
	var scale float32
	switch bitDepth {
	case 8:
		scale = 128
	case 16:
		scale = 32768
	case 24:
		scale = 8388608
	case 32:
		scale = 2147483648
	default:
		scale = 32768
	}

	samples := make([]float32, len(buf.Data))
	for i, s := range buf.Data {
		samples[i] = float32(s) / scale
	}
	return audio.NewClip(samples, buf.Format.SampleRate, buf.Format.NumChannels)
}
