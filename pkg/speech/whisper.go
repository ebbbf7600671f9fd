package speech

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/packages/param"

	"github.com/ojaledger/ojaledger/pkg/lang"
)

var _ Transcriber = (*WhisperTranscriber)(nil)

// WhisperTranscriber transcribes audio through the OpenAI audio
// transcription endpoint.
type WhisperTranscriber struct {
	Client *openai.Client

	// Model defaults to whisper-1.
	Model openai.AudioModel
}

func (t *WhisperTranscriber) Transcribe(ctx context.Context, wavAudio []byte, language lang.Language) (string, error) {
	model := t.Model
	if model == "" {
		model = openai.AudioModelWhisper1
	}
	resp, err := t.Client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		Model:    model,
		File:     openai.File(bytes.NewReader(wavAudio), "audio.wav", "audio/wav"),
		Language: param.NewOpt(language.String()),
	})
	if err != nil {
		return "", fmt.Errorf("speech: whisper transcribe: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}
