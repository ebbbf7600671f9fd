package extract

import (
	"context"
	"strings"
	"unicode"

	"github.com/ojaledger/ojaledger/pkg/lang"
	"github.com/ojaledger/ojaledger/pkg/ledger"
	"github.com/ojaledger/ojaledger/pkg/numeral"
)

// Word lists are folded (see numeral.Fold) and mix all four languages, since
// traders freely code-switch mid-utterance.
var (
	debtWords = wordSet(
		"owes", "owe", "owing", "debt", "credit", "borrowed",
		"remaining", "remains", "balance",
		"gbese", "je", // yo: jẹ́ gbèsè
		"ugwo", "ji", // ig: ji ụgwọ
		"bashi", "bin", // ha: bin bashi
	)
	incomeWords = wordSet(
		"paid", "pays", "pay", "sold", "sell", "received", "collected", "bought",
		"san", "sanwo", "ta", "ra", // yo
		"kwuru", "zutara", "zuru", "rere", // ig
		"biya", "saya", "sayar", "karba", // ha
	)
	pronounWords = wordSet(
		"he", "she", "they",
		"o", // yo ó / ig ọ
		"oun", "ya",
		"shi", "ita", "su",
	)
)

func wordSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[numeral.Fold(w)] = true
	}
	return m
}

// PatternExtractor is the rule-based fallback used when no generation
// backend is configured or reachable. It splits the utterance into clauses,
// labels each by verb keyword, parses the amount with the numeral lexicons,
// and carries the last named customer into clauses that only use a pronoun
// or elide the subject, as in "Ada paid 2000, owes 3000".
type PatternExtractor struct{}

func (PatternExtractor) Extract(_ context.Context, text string, language lang.Language) ([]Parsed, error) {
	var (
		parsed       []Parsed
		lastCustomer string
	)
	for _, clause := range splitClauses(text) {
		typ, ok := clauseType(clause)
		if !ok {
			continue
		}
		amount := numeral.ToInteger(clause, language)
		if amount <= 0 {
			continue
		}
		customer := clauseCustomer(clause)
		if customer == "" {
			customer = lastCustomer
		} else {
			lastCustomer = customer
		}
		p := Parsed{
			Customer: customer,
			Amount:   amount,
			Type:     typ,
		}
		p.fillDefaults(language)
		parsed = append(parsed, p)
	}
	return parsed, nil
}

// splitClauses cuts on clause punctuation and the cross-language "and then"
// connectives. A comma directly inside a number ("2,000") is not a cut.
func splitClauses(text string) []string {
	text = strings.NewReplacer(
		", ", ";", ". ", ";", "; ", ";",
		" and then ", ";", " then ", ";",
	).Replace(text)
	parts := strings.Split(text, ";")
	clauses := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			clauses = append(clauses, p)
		}
	}
	return clauses
}

func clauseType(clause string) (ledger.Type, bool) {
	for _, tok := range strings.Fields(clause) {
		w := numeral.Fold(strings.Trim(tok, ",.;:!?"))
		switch {
		case debtWords[w]:
			return ledger.TypeDebt, true
		case incomeWords[w]:
			return ledger.TypeIncome, true
		}
	}
	return "", false
}

// clauseCustomer returns the first capitalized token that is neither a verb
// keyword nor a pronoun, or "" when the clause names nobody.
func clauseCustomer(clause string) string {
	for _, tok := range strings.Fields(clause) {
		tok = strings.Trim(tok, ",.;:!?")
		if tok == "" {
			continue
		}
		first := []rune(tok)[0]
		if !unicode.IsUpper(first) {
			continue
		}
		w := numeral.Fold(tok)
		if debtWords[w] || incomeWords[w] || pronounWords[w] {
			continue
		}
		return tok
	}
	return ""
}
