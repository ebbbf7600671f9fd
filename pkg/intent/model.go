package intent

import (
	"context"
	"fmt"
	"strings"

	"github.com/ojaledger/ojaledger/pkg/genx"
)

var _ Classifier = (*ModelClassifier)(nil)

// ModelClassifier labels text with a text-generation backend. The backend is
// instructed to answer with exactly one label from the closed intent set; an
// answer outside the set degrades to Unknown. A transport failure is
// returned so the caller can report the backend, not the user's input.
type ModelClassifier struct {
	Gen genx.Generator
}

const classifyInstruction = `You label voice commands from a market trader's bookkeeping assistant.
The command may be in English, Yoruba, Igbo or Hausa.
Answer with exactly one of these labels and nothing else:
log_transaction - the trader is recording a payment, sale, credit or debt
query_debtors - the trader asks who owes them money
query_total_income - the trader asks how much money they have made
query_total_debt - the trader asks how much money is owed to them in total
unknown - anything else, including greetings and questions about the assistant`

func (c *ModelClassifier) Classify(ctx context.Context, text string) (Intent, error) {
	reply, err := c.Gen.Generate(ctx, &genx.Request{
		System:    classifyInstruction,
		Messages:  []*genx.Message{genx.UserText(text)},
		MaxTokens: 16,
	})
	if err != nil {
		return Unknown, fmt.Errorf("intent: classify: %w", err)
	}
	label := Intent(strings.ToLower(strings.TrimSpace(reply)))
	if !label.Valid() {
		return Unknown, nil
	}
	return label, nil
}
