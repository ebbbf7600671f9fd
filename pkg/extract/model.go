package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/ojaledger/ojaledger/pkg/genx"
	"github.com/ojaledger/ojaledger/pkg/lang"
	"github.com/ojaledger/ojaledger/pkg/ledger"
)

const extractInstruction = `You extract financial transactions from a market trader's spoken utterance.
The utterance is in %s and may mention several transactions; it may also mix in English words.

For every transaction mentioned, report:
- customer: the person's name. When a later transaction says "he", "she" or
  "they" (or the %s equivalent), it refers to the most recently named
  customer; use that name.
- details: what was sold or owed (goods or service), empty if not mentioned.
- amount: the monetary amount as a plain integer. Spell out number words
  ("five thousand", "ẹgbẹ̀rún méjì", "puku abụọ", "dubu biyu") as digits.
- type: "income" when the customer paid, "debt" when the customer owes.

Report only transactions with a customer or an amount. Do not invent any.`

var extractTool = &genx.FuncTool{
	Name:        "record_transactions",
	Description: "Record the financial transactions described by the utterance.",
	Argument: &jsonschema.Schema{
		Type:     "object",
		Required: []string{"transactions"},
		Properties: map[string]*jsonschema.Schema{
			"transactions": {
				Type: "array",
				Items: &jsonschema.Schema{
					Type:     "object",
					Required: []string{"customer", "amount", "type"},
					Properties: map[string]*jsonschema.Schema{
						"customer": {Type: "string", Description: "Customer name, pronouns resolved."},
						"details":  {Type: "string", Description: "Goods or service, empty if unspecified."},
						"amount":   {Type: "integer", Description: "Amount as a plain integer."},
						"type":     {Type: "string", Enum: []any{"income", "debt"}},
					},
				},
			},
		},
	},
}

// ModelExtractor asks a generation backend for structured transactions.
type ModelExtractor struct {
	Gen genx.Generator
}

func (e *ModelExtractor) Extract(ctx context.Context, text string, language lang.Language) ([]Parsed, error) {
	req := &genx.Request{
		System:   fmt.Sprintf(extractInstruction, language.Name(), language.Name()),
		Messages: []*genx.Message{genx.UserText(text)},
	}
	call, err := e.Gen.Invoke(ctx, req, extractTool)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	var out struct {
		Transactions []Parsed `json:"transactions"`
	}
	if err := call.Decode(&out); err != nil {
		return nil, fmt.Errorf("extract: decode %q: %w", call.Arguments, err)
	}
	var parsed []Parsed
	for _, p := range out.Transactions {
		p.Customer = strings.TrimSpace(p.Customer)
		p.Details = strings.TrimSpace(p.Details)
		if p.Amount <= 0 {
			continue
		}
		if p.Type != ledger.TypeIncome && p.Type != ledger.TypeDebt {
			continue
		}
		p.fillDefaults(language)
		parsed = append(parsed, p)
	}
	return parsed, nil
}
