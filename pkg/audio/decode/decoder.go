// ABOUTME: Decoder interface definition and format dispatch
// ABOUTME: Maps file extensions to registered container decoders
package decode

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MojaveHao/blophy-audio-go/pkg/audio"
)

// Decoder decodes a complete audio file into an interleaved PCM clip.
type Decoder interface {
	Decode(data []byte) (*audio.Clip, error)
}

// ErrUnsupportedFormat is returned when no decoder matches a path.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

var (
	registryMu sync.Mutex
	registry   = map[string]Decoder{
		".wav":  WAV{},
		".aiff": AIFF{},
		".aif":  AIFF{},
		".mp3":  MP3{},
		".ogg":  Vorbis{},
		".oga":  Vorbis{},
		".flac": FLAC{},
	}
)

// Register installs a decoder for a file extension (".xyz"), replacing
// any existing one.
func Register(ext string, d Decoder) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(ext)] = d
}

// ForPath selects a decoder by the path's extension.
func ForPath(path string) (Decoder, error) {
	ext := strings.ToLower(filepath.Ext(path))

	registryMu.Lock()
	defer registryMu.Unlock()

	d, ok := registry[ext]
	if !ok {
		return nil, ErrUnsupportedFormat
	}
	return d, nil
}
