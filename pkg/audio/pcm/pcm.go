// Package pcm describes the canonical raw audio formats used by the voice
// pipeline. Everything downstream of the normalizer speaks L16Mono16K; the
// speech synthesizer produces L16Mono24K.
package pcm

import "time"

const (
	// L16Mono16K represents audio/L16; rate=16000; channels=1
	L16Mono16K Format = iota
	// L16Mono24K represents audio/L16; rate=24000; channels=1
	L16Mono24K
)

// Format represents an audio format configuration.
type Format int

// SampleRate returns the sample rate in Hz for this format.
func (f Format) SampleRate() int {
	switch f {
	case L16Mono16K:
		return 16000
	case L16Mono24K:
		return 24000
	}
	panic("pcm: invalid audio format")
}

// Channels returns the number of audio channels for this format.
func (f Format) Channels() int {
	return 1
}

// Depth returns the bit depth for this format.
func (f Format) Depth() int {
	return 16
}

// BytesRate returns the byte rate of the audio data.
func (f Format) BytesRate() int {
	return f.SampleRate() * f.Channels() * f.Depth() / 8
}

// Duration returns the play time of the given number of bytes.
func (f Format) Duration(bytes int64) time.Duration {
	samples := bytes * 8 / int64(f.Channels()) / int64(f.Depth())
	return time.Duration(samples) * time.Second / time.Duration(f.SampleRate())
}

// String returns a human-readable string representation of the format.
func (f Format) String() string {
	switch f {
	case L16Mono16K:
		return "audio/L16; rate=16000; channels=1"
	case L16Mono24K:
		return "audio/L16; rate=24000; channels=1"
	}
	panic("pcm: invalid audio format")
}
