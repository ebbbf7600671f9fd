package speech

import (
	"context"
	"fmt"
	"strings"

	"github.com/ojaledger/ojaledger/pkg/genx"
	"github.com/ojaledger/ojaledger/pkg/lang"
)

var _ Transcriber = (*GeminiTranscriber)(nil)

// GeminiTranscriber transcribes audio by sending it inline to a multimodal
// generation backend. Any genx.Generator that accepts audio blobs works;
// in practice that is genx.GeminiGenerator.
type GeminiTranscriber struct {
	Gen genx.Generator
}

const asrEmptyMarker = "<silence>"

func (t *GeminiTranscriber) Transcribe(ctx context.Context, wavAudio []byte, language lang.Language) (string, error) {
	system := fmt.Sprintf(
		"You are a speech transcription engine. Transcribe the spoken audio verbatim in %s orthography, keeping names and digits as spoken. Respond with the transcript only. If there is no intelligible speech, respond with exactly %s.",
		language.Name(), asrEmptyMarker,
	)
	req := &genx.Request{
		System: system,
		Messages: []*genx.Message{
			genx.UserParts(&genx.Blob{MIMEType: "audio/wav", Data: wavAudio}),
		},
	}
	text, err := t.Gen.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("speech: gemini transcribe: %w", err)
	}
	text = strings.TrimSpace(text)
	if strings.EqualFold(text, asrEmptyMarker) {
		return "", nil
	}
	return text, nil
}
