// Package wav reads and writes 16-bit PCM WAV containers. It is the only
// container format the upload normalizer decodes and the one every canonical
// intermediate is written in.
package wav

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ojaledger/ojaledger/pkg/audio/resampler"
)

// ErrNotWAV is returned when the input does not carry a RIFF/WAVE header.
var ErrNotWAV = errors.New("wav: not a RIFF/WAVE stream")

const headerSize = 44

// Decode parses a WAV container and returns the raw little-endian PCM data
// and its layout. Only uncompressed 16-bit PCM with one or two channels is
// supported; anything else is an error. Chunks other than "fmt " and "data"
// are skipped.
func Decode(data []byte) ([]byte, resampler.Format, error) {
	var f resampler.Format
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, f, ErrNotWAV
	}

	var (
		pcm     []byte
		haveFmt bool
	)
	off := 12
	for off+8 <= len(data) {
		id := string(data[off : off+4])
		size := int(binary.LittleEndian.Uint32(data[off+4 : off+8]))
		body := off + 8
		if size < 0 || body+size > len(data) {
			// Tolerate a truncated final data chunk, a common artifact of
			// streamed recorders.
			if id == "data" && body < len(data) {
				size = len(data) - body
			} else {
				return nil, f, fmt.Errorf("wav: chunk %q overruns buffer", id)
			}
		}
		switch id {
		case "fmt ":
			if size < 16 {
				return nil, f, fmt.Errorf("wav: fmt chunk too short (%d bytes)", size)
			}
			audioFormat := binary.LittleEndian.Uint16(data[body : body+2])
			channels := binary.LittleEndian.Uint16(data[body+2 : body+4])
			rate := binary.LittleEndian.Uint32(data[body+4 : body+8])
			depth := binary.LittleEndian.Uint16(data[body+14 : body+16])
			if audioFormat != 1 {
				return nil, f, fmt.Errorf("wav: unsupported codec %d (only PCM)", audioFormat)
			}
			if depth != 16 {
				return nil, f, fmt.Errorf("wav: unsupported bit depth %d (only 16-bit)", depth)
			}
			if channels != 1 && channels != 2 {
				return nil, f, fmt.Errorf("wav: unsupported channel count %d", channels)
			}
			if rate == 0 {
				return nil, f, errors.New("wav: zero sample rate")
			}
			f.SampleRate = int(rate)
			f.Stereo = channels == 2
			haveFmt = true
		case "data":
			pcm = data[body : body+size]
		}
		// Chunks are word aligned.
		off = body + size + size%2
	}

	if !haveFmt {
		return nil, f, errors.New("wav: missing fmt chunk")
	}
	if len(pcm) == 0 {
		return nil, f, errors.New("wav: missing or empty data chunk")
	}
	frame := 2
	if f.Stereo {
		frame = 4
	}
	return pcm[:len(pcm)/frame*frame], f, nil
}

// Encode wraps mono little-endian 16-bit PCM in a WAV container.
func Encode(pcm []byte, sampleRate int) []byte {
	out := make([]byte, headerSize+len(pcm))
	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], uint32(36+len(pcm)))
	copy(out[8:12], "WAVE")
	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 16)
	binary.LittleEndian.PutUint16(out[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(out[22:24], 1) // mono
	binary.LittleEndian.PutUint32(out[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:32], uint32(sampleRate*2))
	binary.LittleEndian.PutUint16(out[32:34], 2)  // block align
	binary.LittleEndian.PutUint16(out[34:36], 16) // bits per sample
	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], uint32(len(pcm)))
	copy(out[headerSize:], pcm)
	return out
}
