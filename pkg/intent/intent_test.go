package intent

import (
	"context"
	"errors"
	"testing"

	"github.com/ojaledger/ojaledger/pkg/genx"
)

func TestLexicalClassifier(t *testing.T) {
	tests := []struct {
		text string
		want Intent
	}{
		{"show me my debtors", QueryDebtors},
		{"who owes me money", QueryDebtors},
		{"Ada paid 2000", LogTransaction},
		{"Musa owes 500 for rice", LogTransaction},
		{"what is my total income", QueryTotalIncome},
		{"how much is owed to me in total debt", QueryTotalDebt},
		{"how is the weather", Unknown},
		{"", Unknown},

		// The aggregate sets outrank the transaction verbs.
		{"how much have I made from what they paid", QueryTotalIncome},

		// Yoruba, Igbo and Hausa keywords.
		{"Ngozi kwụrụ 2000", LogTransaction},
		{"ndị ji m ụgwọ", QueryDebtors},
		{"Bola san owó fún mi", LogTransaction},
		{"wanda ke bin ni bashi", QueryDebtors},

		// Word boundaries: "san" must not fire inside other words.
		{"sandra went to the sandbank", Unknown},
	}
	var c LexicalClassifier
	for _, tt := range tests {
		got, err := c.Classify(context.Background(), tt.text)
		if err != nil {
			t.Fatalf("Classify(%q): %v", tt.text, err)
		}
		if got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

type scriptedGenerator struct {
	reply string
	err   error
}

func (g *scriptedGenerator) Generate(context.Context, *genx.Request) (string, error) {
	return g.reply, g.err
}

func (g *scriptedGenerator) Invoke(_ context.Context, _ *genx.Request, fn *genx.FuncTool) (*genx.FuncCall, error) {
	return fn.NewFuncCall(g.reply), g.err
}

func TestModelClassifier(t *testing.T) {
	tests := []struct {
		reply string
		want  Intent
	}{
		{"query_debtors", QueryDebtors},
		{" Log_Transaction \n", LogTransaction},
		{"the user wants to log a transaction", Unknown}, // not a bare label
		{"refund", Unknown},
	}
	for _, tt := range tests {
		c := &ModelClassifier{Gen: &scriptedGenerator{reply: tt.reply}}
		got, err := c.Classify(context.Background(), "whatever")
		if err != nil {
			t.Fatalf("Classify: %v", err)
		}
		if got != tt.want {
			t.Errorf("reply %q: got %v, want %v", tt.reply, got, tt.want)
		}
	}
}

func TestModelClassifierBackendError(t *testing.T) {
	backendErr := errors.New("boom")
	c := &ModelClassifier{Gen: &scriptedGenerator{err: backendErr}}
	got, err := c.Classify(context.Background(), "Ada paid 2000")
	if !errors.Is(err, backendErr) {
		t.Fatalf("err = %v, want wrapped backend error", err)
	}
	if got != Unknown {
		t.Fatalf("intent = %v, want Unknown on error", got)
	}
}
