// Package intent maps transcribed command text to the closed set of command
// intents the bookkeeping pipeline understands. Two interchangeable
// strategies exist behind the Classifier interface: a deterministic keyword
// matcher and a model-backed labeler.
package intent

import "context"

const (
	// LogTransaction records one or more payments or debts.
	LogTransaction Intent = "log_transaction"
	// QueryDebtors lists customers with outstanding debt.
	QueryDebtors Intent = "query_debtors"
	// QueryTotalIncome sums recorded income.
	QueryTotalIncome Intent = "query_total_income"
	// QueryTotalDebt sums recorded debt.
	QueryTotalDebt Intent = "query_total_debt"
	// Unknown covers everything else, including "what can you do" —
	// the pipeline answers it with the capabilities message.
	Unknown Intent = "unknown"
)

// Intent is the classified purpose of a transcribed command.
type Intent string

// Valid reports whether i is one of the closed intent labels.
func (i Intent) Valid() bool {
	switch i {
	case LogTransaction, QueryDebtors, QueryTotalIncome, QueryTotalDebt, Unknown:
		return true
	}
	return false
}

// Classifier maps command text to an Intent. Implementations return Unknown
// rather than failing for text they cannot place; a non-nil error is
// reserved for an unreachable backend.
type Classifier interface {
	Classify(ctx context.Context, text string) (Intent, error)
}
