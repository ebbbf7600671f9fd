package intent

import (
	"context"
	"strings"

	"github.com/ojaledger/ojaledger/pkg/numeral"
)

var _ Classifier = (*LexicalClassifier)(nil)

// LexicalClassifier is the deterministic strategy: fold the text and test it
// against ordered keyword sets. Precedence is total-income, total-debt,
// debtor-list, transaction; the first matching set wins and everything else
// is Unknown. The sets mix all four languages so the classifier needs no
// language hint.
type LexicalClassifier struct{}

// keywordSet pairs an intent with the folded phrases that select it.
type keywordSet struct {
	intent   Intent
	keywords []string
}

// Order matters: aggregate queries outrank the debtor list, which outranks
// transaction verbs ("who owes me" must not read as a transaction).
var keywordSets = []keywordSet{
	{QueryTotalIncome, []string{
		"total income", "total sales", "how much have i made",
		"how much did i make", "my income", "money i have made",
		"apapo owo", "owo ti mo ti ri", "ere mi lapapo",
		"mkpokota ego", "ego m nwetara", "ego ole ka m nwetara",
		"jimlar kudin shiga", "nawa na samu",
	}},
	{QueryTotalDebt, []string{
		"total debt", "how much is owed", "how much am i owed",
		"outstanding debt", "money owed to me",
		"apapo gbese", "gbese lapapo", "iye gbese",
		"mkpokota ugwo", "ugwo niile", "ego ole ka ha ji m",
		"jimlar bashi", "nawa ake bin",
	}},
	{QueryDebtors, []string{
		"who owes", "who is owing", "debtors", "owing me", "owe me",
		"show me my debtors", "list my debtors",
		"ta lo je gbese", "awon to je gbese", "awon onigbese",
		"ndi ji m ugwo", "onye ji m ugwo", "ndi ugwo",
		"wanda ke bin ni bashi", "masu bashi", "wa ke bin ni",
	}},
	{LogTransaction, []string{
		"paid", "pays", "pay", "owes", "owe", "bought", "sold",
		"collected", "balance", "remaining", "deposit",
		"san owo", "san", "ra oja", "je gbese mi", "o ku",
		"kwuru", "kwuo", "zuru", "ji m", "fodu", "nyere m ego",
		"ya biya", "ta biya", "biya", "saya", "rage", "karba",
	}},
}

func (LexicalClassifier) Classify(_ context.Context, text string) (Intent, error) {
	folded := " " + numeral.Fold(text) + " "
	for _, set := range keywordSets {
		for _, kw := range set.keywords {
			if matchKeyword(folded, kw) {
				return set.intent, nil
			}
		}
	}
	return Unknown, nil
}

// matchKeyword reports whether the folded keyword occurs on word boundaries.
// Substring matching alone would let Yoruba "san" fire inside "sand".
func matchKeyword(folded, kw string) bool {
	idx := 0
	for {
		i := strings.Index(folded[idx:], kw)
		if i < 0 {
			return false
		}
		i += idx
		before := folded[i-1]
		after := folded[i+len(kw)]
		if isBoundary(before) && isBoundary(after) {
			return true
		}
		idx = i + 1
	}
}

func isBoundary(b byte) bool {
	return b == ' ' || b == ',' || b == '.' || b == '?' || b == '!' || b == ';'
}
