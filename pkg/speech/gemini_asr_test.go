package speech

import (
	"context"
	"strings"
	"testing"

	"github.com/ojaledger/ojaledger/pkg/genx"
	"github.com/ojaledger/ojaledger/pkg/lang"
)

// fakeGenerator records the last request and replies with a scripted text.
type fakeGenerator struct {
	reply string
	err   error
	last  *genx.Request
}

func (g *fakeGenerator) Generate(_ context.Context, req *genx.Request) (string, error) {
	g.last = req
	return g.reply, g.err
}

func (g *fakeGenerator) Invoke(_ context.Context, req *genx.Request, fn *genx.FuncTool) (*genx.FuncCall, error) {
	g.last = req
	if g.err != nil {
		return nil, g.err
	}
	return fn.NewFuncCall(g.reply), nil
}

func TestGeminiTranscriber(t *testing.T) {
	gen := &fakeGenerator{reply: "  Ada paid 2000  "}
	tr := &GeminiTranscriber{Gen: gen}

	audio := []byte{'R', 'I', 'F', 'F', 0, 0}
	got, err := tr.Transcribe(context.Background(), audio, lang.Igbo)
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if got != "Ada paid 2000" {
		t.Fatalf("transcript = %q", got)
	}

	if !strings.Contains(gen.last.System, "Igbo") {
		t.Errorf("system instruction does not carry the language: %q", gen.last.System)
	}
	if len(gen.last.Messages) != 1 || len(gen.last.Messages[0].Parts) != 1 {
		t.Fatalf("unexpected message shape: %+v", gen.last.Messages)
	}
	blob, ok := gen.last.Messages[0].Parts[0].(*genx.Blob)
	if !ok || blob.MIMEType != "audio/wav" || len(blob.Data) != len(audio) {
		t.Fatalf("audio was not sent inline: %+v", gen.last.Messages[0].Parts[0])
	}
}

func TestGeminiTranscriberSilence(t *testing.T) {
	tr := &GeminiTranscriber{Gen: &fakeGenerator{reply: "<silence>"}}
	got, err := tr.Transcribe(context.Background(), []byte{1}, lang.English)
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if got != "" {
		t.Fatalf("transcript = %q, want empty for silence", got)
	}
}
