// Package extract turns a transcribed utterance into structured
// transactions. One utterance may describe several transactions, and later
// clauses may refer to the customer of an earlier one by pronoun.
package extract

import (
	"context"

	"github.com/ojaledger/ojaledger/pkg/lang"
	"github.com/ojaledger/ojaledger/pkg/ledger"
)

// Parsed is a single transaction lifted from an utterance, before it is
// bound to an owner and persisted.
type Parsed struct {
	Customer string      `json:"customer"`
	Details  string      `json:"details"`
	Amount   int64       `json:"amount"`
	Type     ledger.Type `json:"type"`
}

// Extractor pulls zero or more transactions out of an utterance. An empty
// slice with a nil error means the text described no usable transaction.
type Extractor interface {
	Extract(ctx context.Context, text string, language lang.Language) ([]Parsed, error)
}

// placeholder holds a language's default field values for transactions that
// never name a customer or the goods.
type placeholder struct {
	customer string
	details  string
}

var placeholders = map[lang.Language]placeholder{
	lang.English: {customer: "a customer", details: "goods"},
	lang.Yoruba:  {customer: "oníbàárà kan", details: "ọjà"},
	lang.Igbo:    {customer: "otu onye ahịa", details: "ngwa ahịa"},
	lang.Hausa:   {customer: "wani abokin ciniki", details: "kaya"},
}

// fillDefaults substitutes the language placeholders for empty fields.
func (p *Parsed) fillDefaults(language lang.Language) {
	ph, ok := placeholders[language]
	if !ok {
		ph = placeholders[lang.English]
	}
	if p.Customer == "" {
		p.Customer = ph.customer
	}
	if p.Details == "" {
		p.Details = ph.details
	}
}
