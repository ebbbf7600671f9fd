package speech

import (
	"context"
	"fmt"

	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/genai"

	"github.com/ojaledger/ojaledger/pkg/audio/pcm"
)

var _ Synthesizer = (*GeminiSynthesizer)(nil)

// GeminiSynthesizer produces speech through the Gemini TTS models, which
// return raw 24 kHz mono 16-bit PCM.
type GeminiSynthesizer struct {
	Client *genai.Client

	// Model should be a TTS-capable model, e.g. gemini-2.5-flash-preview-tts.
	Model string
}

func (s *GeminiSynthesizer) Synthesize(ctx context.Context, text, voice string) ([]byte, pcm.Format, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: voice},
			},
		},
	}
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{genai.NewPartFromText(text)},
	}}

	resp, err := s.Client.Models.GenerateContent(ctx, s.Model, contents, cfg)
	if err != nil {
		if e, ok := err.(*apierror.APIError); ok {
			err = e.Unwrap()
		}
		return nil, 0, fmt.Errorf("speech: gemini synthesize: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, 0, fmt.Errorf("speech: gemini synthesize: no candidates")
	}
	var out []byte
	for _, p := range resp.Candidates[0].Content.Parts {
		if p.InlineData != nil {
			out = append(out, p.InlineData.Data...)
		}
	}
	if len(out) == 0 {
		return nil, 0, fmt.Errorf("speech: gemini synthesize: no audio in response")
	}
	return out, pcm.L16Mono24K, nil
}
