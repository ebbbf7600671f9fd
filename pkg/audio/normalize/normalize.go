// Package normalize converts uploaded audio into the canonical mono 16 kHz
// 16-bit PCM WAV every downstream transcription backend accepts. The
// normalized audio is staged in a request-scoped temporary file whose
// release is idempotent and must happen on every exit path.
package normalize

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/ojaledger/ojaledger/pkg/audio/pcm"
	"github.com/ojaledger/ojaledger/pkg/audio/resampler"
	"github.com/ojaledger/ojaledger/pkg/audio/wav"
)

// ErrBadAudio is returned for uploads the decoder cannot make sense of:
// unknown containers, unsupported codecs, corrupt or empty streams.
var ErrBadAudio = errors.New("normalize: unsupported or corrupt audio")

// CanonicalFormat is the layout of every normalized stream.
const CanonicalFormat = pcm.L16Mono16K

// Audio is a normalized recording staged on disk. It is owned by a single
// request; Release removes the backing file and may be called any number of
// times.
type Audio struct {
	path   string
	logger *slog.Logger

	release sync.Once
}

// Path returns the temporary WAV file path.
func (a *Audio) Path() string { return a.path }

// Format returns the canonical PCM layout of the staged audio.
func (a *Audio) Format() pcm.Format { return CanonicalFormat }

// WAV reads the staged canonical WAV bytes.
func (a *Audio) WAV() ([]byte, error) {
	return os.ReadFile(a.path)
}

// Release deletes the backing temporary file. Exactly the first call takes
// effect. A failed deletion is logged and otherwise ignored; it never
// affects the response.
func (a *Audio) Release() {
	a.release.Do(func() {
		if err := os.Remove(a.path); err != nil && !os.IsNotExist(err) {
			a.logger.Warn("failed to remove temp audio", "path", a.path, "error", err)
		}
	})
}

// Normalizer converts raw uploads into canonical Audio.
type Normalizer struct {
	// Dir is where temporary files are staged. Empty means the OS default.
	Dir string

	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// Normalize decodes a raw upload and stages it as canonical mono 16 kHz
// 16-bit PCM WAV. Decoding failures are reported as ErrBadAudio. Callers
// own the returned Audio and must Release it.
func (n *Normalizer) Normalize(raw []byte) (*Audio, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty upload", ErrBadAudio)
	}
	data, format, err := wav.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadAudio, err)
	}

	canonical := resampler.Format{SampleRate: CanonicalFormat.SampleRate()}
	if format != canonical {
		data, err = resampler.Convert(data, format, canonical)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadAudio, err)
		}
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no audio data", ErrBadAudio)
	}

	f, err := os.CreateTemp(n.Dir, "ojaledger-*.wav")
	if err != nil {
		return nil, fmt.Errorf("normalize: stage temp file: %w", err)
	}
	if _, err := f.Write(wav.Encode(data, CanonicalFormat.SampleRate())); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("normalize: write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("normalize: close temp file: %w", err)
	}

	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Audio{path: f.Name(), logger: logger}, nil
}
