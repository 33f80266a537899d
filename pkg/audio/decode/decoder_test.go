// ABOUTME: Tests for decoder dispatch and WAV/AIFF decoding
// ABOUTME: Uses hand-built RIFF and FORM bytes so no fixtures are needed
package decode

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

// buildWAV assembles a minimal 16-bit PCM RIFF/WAVE file.
func buildWAV(t *testing.T, sampleRate, channels int, samples []int16) []byte {
	t.Helper()

	var buf bytes.Buffer
	dataLen := len(samples) * 2
	blockAlign := channels * 2

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataLen))
	for _, s := range samples {
		binary.Write(&buf, binary.LittleEndian, s)
	}
	return buf.Bytes()
}

// buildAIFF assembles a minimal 16-bit PCM FORM/AIFF file.
func buildAIFF(t *testing.T, sampleRate, channels int, samples []int16) []byte {
	t.Helper()

	var buf bytes.Buffer
	dataLen := len(samples) * 2
	frames := len(samples) / channels

	buf.WriteString("FORM")
	binary.Write(&buf, binary.BigEndian, uint32(4+(8+18)+(8+8+dataLen)))
	buf.WriteString("AIFF")

	buf.WriteString("COMM")
	binary.Write(&buf, binary.BigEndian, uint32(18))
	binary.Write(&buf, binary.BigEndian, uint16(channels))
	binary.Write(&buf, binary.BigEndian, uint32(frames))
	binary.Write(&buf, binary.BigEndian, uint16(16))
	buf.Write(extendedFloat(sampleRate))

	buf.WriteString("SSND")
	binary.Write(&buf, binary.BigEndian, uint32(8+dataLen))
	binary.Write(&buf, binary.BigEndian, uint32(0)) // offset
	binary.Write(&buf, binary.BigEndian, uint32(0)) // block size
	for _, s := range samples {
		binary.Write(&buf, binary.BigEndian, s)
	}
	return buf.Bytes()
}

// extendedFloat encodes a positive integer sample rate as the 80-bit
// IEEE extended float the COMM chunk stores it in: a 15-bit exponent
// biased by 16383 and a 64-bit mantissa with an explicit leading one.
func extendedFloat(rate int) []byte {
	b := make([]byte, 10)
	if rate <= 0 {
		return b
	}

	mant := uint64(rate)
	shift := 0
	for v := mant; v > 1; v >>= 1 {
		shift++
	}
	binary.BigEndian.PutUint16(b[0:], uint16(16383+shift))
	binary.BigEndian.PutUint64(b[2:], mant<<(63-shift))
	return b
}

func TestForPathDispatch(t *testing.T) {
	cases := []struct {
		path string
		want Decoder
	}{
		{"music/song.wav", WAV{}},
		{"SONG.WAV", WAV{}},
		{"clip.aiff", AIFF{}},
		{"clip.aif", AIFF{}},
		{"track.mp3", MP3{}},
		{"loop.ogg", Vorbis{}},
		{"loop.oga", Vorbis{}},
		{"master.flac", FLAC{}},
	}
	for _, c := range cases {
		d, err := ForPath(c.path)
		if err != nil {
			t.Errorf("ForPath(%q): unexpected error %v", c.path, err)
			continue
		}
		if d != c.want {
			t.Errorf("ForPath(%q) = %T, want %T", c.path, d, c.want)
		}
	}
}

func TestForPathUnsupported(t *testing.T) {
	for _, path := range []string{"file.xyz", "noext", "movie.mp4"} {
		if _, err := ForPath(path); err != ErrUnsupportedFormat {
			t.Errorf("ForPath(%q): expected ErrUnsupportedFormat, got %v", path, err)
		}
	}
}

func TestRegisterOverrides(t *testing.T) {
	Register(".custom", WAV{})
	defer func() {
		registryMu.Lock()
		delete(registry, ".custom")
		registryMu.Unlock()
	}()

	d, err := ForPath("x.custom")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != (WAV{}) {
		t.Errorf("expected registered decoder, got %T", d)
	}
}

func TestWAVDecode(t *testing.T) {
	raw := []int16{0, 16384, -16384, 32767, -32768, 0}
	data := buildWAV(t, 44100, 2, raw)

	clip, err := WAV{}.Decode(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if clip.SampleRate != 44100 {
		t.Errorf("expected sample rate 44100, got %d", clip.SampleRate)
	}
	if clip.Channels != 2 {
		t.Errorf("expected 2 channels, got %d", clip.Channels)
	}
	if clip.TotalFrames != 3 {
		t.Errorf("expected 3 frames, got %d", clip.TotalFrames)
	}

	for i, want := range raw {
		got := clip.Samples[i]
		expected := float32(want) / 32768.0
		if math.Abs(float64(got-expected)) > 1e-3 {
			t.Errorf("sample %d: expected ~%v, got %v", i, expected, got)
		}
	}
}

func TestAIFFDecode(t *testing.T) {
	raw := []int16{0, 16384, -16384, 32767, -32768, 0}
	data := buildAIFF(t, 44100, 2, raw)

	clip, err := AIFF{}.Decode(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if clip.SampleRate != 44100 {
		t.Errorf("expected sample rate 44100, got %d", clip.SampleRate)
	}
	if clip.Channels != 2 {
		t.Errorf("expected 2 channels, got %d", clip.Channels)
	}
	if clip.TotalFrames != 3 {
		t.Errorf("expected 3 frames, got %d", clip.TotalFrames)
	}

	for i, want := range raw {
		got := clip.Samples[i]
		expected := float32(want) / 32768.0
		if math.Abs(float64(got-expected)) > 1e-3 {
			t.Errorf("sample %d: expected ~%v, got %v", i, expected, got)
		}
	}
}

func TestAIFFDecodeGarbage(t *testing.T) {
	if _, err := (AIFF{}).Decode([]byte("FORMless bytes")); err == nil {
		t.Error("expected error for malformed input")
	}
}

func TestWAVDecodeGarbage(t *testing.T) {
	if _, err := (WAV{}).Decode([]byte("not a wav file at all")); err == nil {
		t.Error("expected error for malformed input")
	}
}

func TestMP3DecodeGarbage(t *testing.T) {
	if _, err := (MP3{}).Decode([]byte{0x00, 0x01, 0x02, 0x03}); err == nil {
		t.Error("expected error for malformed input")
	}
}

func TestFLACDecodeGarbage(t *testing.T) {
	if _, err := (FLAC{}).Decode([]byte("definitely not flac")); err == nil {
		t.Error("expected error for malformed input")
	}
}

func TestVorbisDecodeGarbage(t *testing.T) {
	if _, err := (Vorbis{}).Decode([]byte("OggS but not really")); err == nil {
		t.Error("expected error for malformed input")
	}
}
