package library

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func id3Frame(id string, body []byte) []byte {
	var b bytes.Buffer
	b.WriteString(id)
	_ = binary.Write(&b, binary.BigEndian, uint32(len(body)))
	b.Write([]byte{0, 0})
	b.Write(body)
	return b.Bytes()
}

func id3Text(id, text string) []byte {
	return id3Frame(id, append([]byte{0}, text...))
}

func syncsafe(n int) []byte {
	return []byte{byte(n >> 21 & 0x7f), byte(n >> 14 & 0x7f), byte(n >> 7 & 0x7f), byte(n & 0x7f)}
}

// taggedMP3 returns an ID3v2.3 tag followed by padding.
func taggedMP3(title, artist, album, year string, cover []byte) []byte {
	var frames bytes.Buffer
	frames.Write(id3Text("TIT2", title))
	frames.Write(id3Text("TPE1", artist))
	frames.Write(id3Text("TALB", album))
	frames.Write(id3Text("TYER", year))
	if cover != nil {
		var apic bytes.Buffer
		apic.WriteByte(0)
		apic.WriteString("image/png")
		apic.WriteByte(0)
		apic.WriteByte(3)
		apic.WriteByte(0)
		apic.Write(cover)
		frames.Write(id3Frame("APIC", apic.Bytes()))
	}
	var out bytes.Buffer
	out.WriteString("ID3")
	out.Write([]byte{3, 0, 0})
	out.Write(syncsafe(frames.Len()))
	out.Write(frames.Bytes())
	out.Write(make([]byte, 256))
	return out.Bytes()
}

// mp3Frames returns n silent MPEG-1 Layer III frames at 128kbps, 44.1kHz.
func mp3Frames(n int) []byte {
	const size = 417
	var out bytes.Buffer
	for i := 0; i < n; i++ {
		frame := make([]byte, size)
		copy(frame, []byte{0xff, 0xfb, 0x90, 0x00})
		out.Write(frame)
	}
	return out.Bytes()
}

// pcmWAV returns a 16-bit stereo 44.1kHz wav file of the given length.
func pcmWAV(seconds int) []byte {
	const rate, channels, bits = 44100, 2, 16
	dataLen := seconds * rate * channels * bits / 8
	var b bytes.Buffer
	b.WriteString("RIFF")
	_ = binary.Write(&b, binary.LittleEndian, uint32(36+dataLen))
	b.WriteString("WAVEfmt ")
	_ = binary.Write(&b, binary.LittleEndian, uint32(16))
	_ = binary.Write(&b, binary.LittleEndian, uint16(1))
	_ = binary.Write(&b, binary.LittleEndian, uint16(channels))
	_ = binary.Write(&b, binary.LittleEndian, uint32(rate))
	_ = binary.Write(&b, binary.LittleEndian, uint32(rate*channels*bits/8))
	_ = binary.Write(&b, binary.LittleEndian, uint16(channels*bits/8))
	_ = binary.Write(&b, binary.LittleEndian, uint16(bits))
	b.WriteString("data")
	_ = binary.Write(&b, binary.LittleEndian, uint32(dataLen))
	b.Write(make([]byte, dataLen))
	return b.Bytes()
}

// flacStreamInfo returns a FLAC file holding only a STREAMINFO block.
func flacStreamInfo(rate, samples uint64) []byte {
	var b bytes.Buffer
	b.WriteString("fLaC")
	b.Write([]byte{0x80, 0, 0, 34})
	_ = binary.Write(&b, binary.BigEndian, uint16(4096))
	_ = binary.Write(&b, binary.BigEndian, uint16(4096))
	b.Write(make([]byte, 6))
	packed := rate<<44 | 1<<41 | 15<<36 | samples
	_ = binary.Write(&b, binary.BigEndian, packed)
	b.Write(make([]byte, 16))
	b.Write([]byte{0xff, 0xf8, 0x69, 0x08, 0x00, 0x00})
	return b.Bytes()
}

func pngCover(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 4), B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}
