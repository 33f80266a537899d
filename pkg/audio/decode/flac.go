// ABOUTME: FLAC audio decoder
// ABOUTME: Decodes FLAC files to float32 clips via mewkiz/flac
package decode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/MojaveHao/blophy-audio-go/pkg/audio"
	"github.com/mewkiz/flac"
)

// FLAC decodes FLAC containers.
type FLAC struct{}

// Decode converts FLAC bytes to a PCM clip.
func (FLAC) Decode(data []byte) (*audio.Clip, error) {
	stream, err := flac.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse flac: %w", err)
	}
	defer stream.Close()

	info := stream.Info
	channels := int(info.NChannels)
	scale := float32(int64(1) << (info.BitsPerSample - 1))

	samples := make([]float32, 0, int(info.NSamples)*channels)

	for {
		f, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("flac frame decode error: %w", err)
		}

		n := len(f.Subframes[0].Samples)
		for i := 0; i < n; i++ {
			for _, sf := range f.Subframes {
				samples = append(samples, float32(sf.Samples[i])/scale)
			}
		}
	}

	return audio.NewClip(samples, int(info.SampleRate), channels), nil
}
