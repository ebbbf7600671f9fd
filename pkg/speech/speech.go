// Package speech provides the speech-to-text and text-to-speech service
// interfaces of the voice pipeline, with interchangeable backends: a
// dedicated multilingual ASR service and a multimodal generation backend
// that accepts inline audio.
package speech

import (
	"context"

	"github.com/ojaledger/ojaledger/pkg/audio/pcm"
	"github.com/ojaledger/ojaledger/pkg/lang"
)

// Transcriber turns canonical WAV audio plus a language hint into text.
// An empty transcript with a nil error means "nothing heard" and is a
// normal result, not a failure. A non-nil error means the backend itself
// was unreachable or misbehaved.
type Transcriber interface {
	Transcribe(ctx context.Context, wavAudio []byte, language lang.Language) (string, error)
}

// Synthesizer turns text into raw PCM speech audio using a named voice.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voice string) ([]byte, pcm.Format, error)
}
