// Package respond composes the spoken replies of the assistant in the
// trader's language. Every reply kind has a phrasing per language; a
// language missing a phrasing falls back to English, and the full matrix is
// checked when the composer is built.
package respond

import (
	"fmt"
	"strings"

	"github.com/ojaledger/ojaledger/pkg/lang"
	"github.com/ojaledger/ojaledger/pkg/ledger"
)

// phrasing holds all reply templates of one language. Amount verbs use
// fmt verbs in fixed order: confirmations and customer totals are
// (customer, amount), plain totals and nouns are (amount), multi headers are
// (count, body), joined confirmations are (customer, body).
type phrasing struct {
	confirmIncome       string
	confirmDebt         string
	multiConfirm        string
	confirmJoined       string
	nounIncome          string
	nounDebt            string
	joinWord            string
	debtorEntry         string
	debtorList          string
	noDebtors           string
	totalIncome         string
	totalDebt           string
	totalCustomerIncome string
	totalCustomerDebt   string
	capabilities        string
	inputError          string
	backendError        string
}

func (p *phrasing) fields() []*string {
	return []*string{
		&p.confirmIncome, &p.confirmDebt, &p.multiConfirm,
		&p.confirmJoined, &p.nounIncome, &p.nounDebt, &p.joinWord,
		&p.debtorEntry, &p.debtorList, &p.noDebtors,
		&p.totalIncome, &p.totalDebt,
		&p.totalCustomerIncome, &p.totalCustomerDebt,
		&p.capabilities, &p.inputError, &p.backendError,
	}
}

// Composer renders replies for every supported language.
type Composer struct {
	phrasings map[lang.Language]*phrasing
}

// NewComposer builds the composer and validates that English covers every
// reply kind, since English is the fallback for everything else.
func NewComposer() (*Composer, error) {
	c := &Composer{phrasings: phrasings}
	en, ok := c.phrasings[lang.English]
	if !ok {
		return nil, fmt.Errorf("respond: no English phrasings")
	}
	for i, f := range en.fields() {
		if *f == "" {
			return nil, fmt.Errorf("respond: English phrasing %d is empty", i)
		}
	}
	enFields := en.fields()
	for _, p := range c.phrasings {
		for i, f := range p.fields() {
			if *f == "" {
				*f = *enFields[i]
			}
		}
	}
	return c, nil
}

func (c *Composer) phrasing(l lang.Language) *phrasing {
	if p, ok := c.phrasings[l]; ok {
		return p
	}
	return c.phrasings[lang.English]
}

// Confirmation renders the reply for one newly recorded transaction.
func (c *Composer) Confirmation(l lang.Language, rec *ledger.Record) string {
	p := c.phrasing(l)
	if rec.Type == ledger.TypeDebt {
		return fmt.Sprintf(p.confirmDebt, rec.Customer, formatAmount(rec.Amount))
	}
	return fmt.Sprintf(p.confirmIncome, rec.Customer, formatAmount(rec.Amount))
}

// Confirmations renders the reply for a batch of recorded transactions,
// collapsing to Confirmation when the batch has exactly one. A batch that
// names a single customer joins per-type nouns under that customer
// ("Recorded for Ada: a payment of ₦2,000 and a debt of ₦3,000."); mixed
// customers fall back to concatenated single confirmations under a count.
func (c *Composer) Confirmations(l lang.Language, recs []*ledger.Record) string {
	if len(recs) == 1 {
		return c.Confirmation(l, recs[0])
	}
	p := c.phrasing(l)
	if customer := sharedCustomer(recs); customer != "" {
		parts := make([]string, 0, len(recs))
		for _, rec := range recs {
			noun := p.nounIncome
			if rec.Type == ledger.TypeDebt {
				noun = p.nounDebt
			}
			parts = append(parts, fmt.Sprintf(noun, formatAmount(rec.Amount)))
		}
		return fmt.Sprintf(p.confirmJoined, customer, joinNouns(parts, p.joinWord))
	}
	parts := make([]string, 0, len(recs))
	for _, rec := range recs {
		parts = append(parts, c.Confirmation(l, rec))
	}
	return fmt.Sprintf(p.multiConfirm, len(recs), strings.Join(parts, " "))
}

// sharedCustomer returns the customer every record names, or "".
func sharedCustomer(recs []*ledger.Record) string {
	if len(recs) == 0 {
		return ""
	}
	customer := recs[0].Customer
	for _, rec := range recs[1:] {
		if !strings.EqualFold(rec.Customer, customer) {
			return ""
		}
	}
	return customer
}

// joinNouns joins "a, b and c" with the language's conjunction.
func joinNouns(parts []string, conj string) string {
	if len(parts) == 2 {
		return parts[0] + " " + conj + " " + parts[1]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " " + conj + " " + parts[len(parts)-1]
}

// DebtorList renders the per-customer outstanding debts, or the "no
// debtors" phrase when the list is empty.
func (c *Composer) DebtorList(l lang.Language, debtors []ledger.Debtor) string {
	p := c.phrasing(l)
	if len(debtors) == 0 {
		return p.noDebtors
	}
	parts := make([]string, 0, len(debtors))
	for _, d := range debtors {
		parts = append(parts, fmt.Sprintf(p.debtorEntry, d.Customer, formatAmount(d.Amount)))
	}
	return fmt.Sprintf(p.debtorList, strings.Join(parts, ", "))
}

// Total renders an aggregate amount of one type, scoped to a customer when
// customer is non-empty.
func (c *Composer) Total(l lang.Language, t ledger.Type, customer string, amount int64) string {
	p := c.phrasing(l)
	if customer != "" {
		if t == ledger.TypeDebt {
			return fmt.Sprintf(p.totalCustomerDebt, customer, formatAmount(amount))
		}
		return fmt.Sprintf(p.totalCustomerIncome, customer, formatAmount(amount))
	}
	if t == ledger.TypeDebt {
		return fmt.Sprintf(p.totalDebt, formatAmount(amount))
	}
	return fmt.Sprintf(p.totalIncome, formatAmount(amount))
}

// Capabilities renders the what-can-you-do reply used when the intent of an
// utterance is not recognized.
func (c *Composer) Capabilities(l lang.Language) string {
	return c.phrasing(l).capabilities
}

// InputError renders the apology for an utterance the assistant could not
// use (silence, noise, no amount).
func (c *Composer) InputError(l lang.Language) string {
	return c.phrasing(l).inputError
}

// BackendError renders the apology for a transient system failure.
func (c *Composer) BackendError(l lang.Language) string {
	return c.phrasing(l).backendError
}

// formatAmount groups digits in thousands: 2500000 renders as "2,500,000".
func formatAmount(v int64) string {
	s := fmt.Sprintf("%d", v)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
