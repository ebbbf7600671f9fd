// Package resampler converts 16-bit signed PCM audio between sample rates
// and channel layouts. Rate conversion is delegated to a pure Go resampling
// engine (no CGO); channel conversion is done by averaging or duplication.
package resampler

import (
	"fmt"

	resampling "github.com/tphakala/go-audio-resampling"
)

// Format describes a 16-bit signed integer PCM layout.
type Format struct {
	// SampleRate is the sample rate in Hz (e.g., 44100, 16000).
	SampleRate int

	// Stereo indicates stereo (2 channels) if true, mono (1 channel) if false.
	Stereo bool
}

func (f Format) channels() int {
	if f.Stereo {
		return 2
	}
	return 1
}

// Convert converts a complete buffer of little-endian 16-bit PCM from src to
// dst. Channel conversion happens before rate conversion, so the resampler
// always runs on the destination channel count.
func Convert(data []byte, src, dst Format) ([]byte, error) {
	if src.SampleRate <= 0 || dst.SampleRate <= 0 {
		return nil, fmt.Errorf("resampler: invalid sample rate %d -> %d", src.SampleRate, dst.SampleRate)
	}
	if len(data)%(2*src.channels()) != 0 {
		return nil, fmt.Errorf("resampler: input not aligned to %d-channel frames", src.channels())
	}

	switch {
	case src.Stereo && !dst.Stereo:
		data = stereoToMono(data)
	case !src.Stereo && dst.Stereo:
		data = monoToStereo(data)
	}
	if src.SampleRate == dst.SampleRate {
		return data, nil
	}

	rs, err := resampling.New(&resampling.Config{
		InputRate:  float64(src.SampleRate),
		OutputRate: float64(dst.SampleRate),
		Channels:   dst.channels(),
		Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
	})
	if err != nil {
		return nil, fmt.Errorf("resampler: %w", err)
	}

	input := make([]float64, len(data)/2)
	for i := range input {
		s := int16(data[i*2]) | int16(data[i*2+1])<<8
		input[i] = float64(s) / 32768.0
	}
	output, err := rs.Process(input)
	if err != nil {
		return nil, fmt.Errorf("resampler: %w", err)
	}

	out := make([]byte, len(output)*2)
	for i, v := range output {
		s := int16(v * 32767.0)
		if v > 1.0 {
			s = 32767
		} else if v < -1.0 {
			s = -32768
		}
		out[i*2] = byte(s)
		out[i*2+1] = byte(s >> 8)
	}
	// Keep whole frames only.
	frame := 2 * dst.channels()
	return out[:len(out)/frame*frame], nil
}

// stereoToMono averages L and R channels.
func stereoToMono(b []byte) []byte {
	frames := len(b) / 4
	out := make([]byte, frames*2)
	for i := range frames {
		j := i * 4
		l := int16(b[j]) | int16(b[j+1])<<8
		r := int16(b[j+2]) | int16(b[j+3])<<8
		m := int16((int32(l) + int32(r)) / 2)
		out[i*2] = byte(m)
		out[i*2+1] = byte(m >> 8)
	}
	return out
}

// monoToStereo duplicates each sample into both channels.
func monoToStereo(b []byte) []byte {
	samples := len(b) / 2
	out := make([]byte, samples*4)
	for i := range samples {
		s0, s1 := b[i*2], b[i*2+1]
		j := i * 4
		out[j], out[j+1] = s0, s1
		out[j+2], out[j+3] = s0, s1
	}
	return out
}
