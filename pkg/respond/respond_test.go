package respond

import (
	"strings"
	"testing"

	"github.com/ojaledger/ojaledger/pkg/lang"
	"github.com/ojaledger/ojaledger/pkg/ledger"
)

func newTestComposer(t *testing.T) *Composer {
	t.Helper()
	c, err := NewComposer()
	if err != nil {
		t.Fatalf("NewComposer: %v", err)
	}
	return c
}

func TestEveryKindInEveryLanguage(t *testing.T) {
	c := newTestComposer(t)
	rec := &ledger.Record{Customer: "Ada", Amount: 2000, Type: ledger.TypeIncome}
	debt := &ledger.Record{Customer: "Musa", Amount: 3000, Type: ledger.TypeDebt}

	sameCustomer := &ledger.Record{Customer: "Ada", Amount: 3000, Type: ledger.TypeDebt}

	for _, l := range lang.All() {
		replies := []string{
			c.Confirmation(l, rec),
			c.Confirmation(l, debt),
			c.Confirmations(l, []*ledger.Record{rec, debt}),
			c.Confirmations(l, []*ledger.Record{rec, sameCustomer}),
			c.DebtorList(l, []ledger.Debtor{{Customer: "Musa", Amount: 3000}}),
			c.DebtorList(l, nil),
			c.Total(l, ledger.TypeIncome, "", 4500),
			c.Total(l, ledger.TypeDebt, "", 3000),
			c.Total(l, ledger.TypeIncome, "Ada", 4500),
			c.Total(l, ledger.TypeDebt, "Musa", 3000),
			c.Capabilities(l),
			c.InputError(l),
			c.BackendError(l),
		}
		for i, reply := range replies {
			if strings.TrimSpace(reply) == "" {
				t.Errorf("%s reply %d is empty", l, i)
			}
			if strings.Contains(reply, "%!") {
				t.Errorf("%s reply %d has a bad format verb: %q", l, i, reply)
			}
		}
	}
}

func TestConfirmationContent(t *testing.T) {
	c := newTestComposer(t)
	rec := &ledger.Record{Customer: "Ada", Amount: 2500, Type: ledger.TypeIncome}

	got := c.Confirmation(lang.English, rec)
	for _, want := range []string{"Ada", "2,500"} {
		if !strings.Contains(got, want) {
			t.Errorf("Confirmation = %q, missing %q", got, want)
		}
	}
}

func TestConfirmationsSingleCollapses(t *testing.T) {
	c := newTestComposer(t)
	rec := &ledger.Record{Customer: "Ada", Amount: 100, Type: ledger.TypeIncome}

	single := c.Confirmations(lang.English, []*ledger.Record{rec})
	if single != c.Confirmation(lang.English, rec) {
		t.Errorf("single-record batch = %q, want plain confirmation", single)
	}
}

func TestConfirmationsSameCustomerJoinsNouns(t *testing.T) {
	c := newTestComposer(t)
	recs := []*ledger.Record{
		{Customer: "Ada", Amount: 2000, Type: ledger.TypeIncome},
		{Customer: "Ada", Amount: 3000, Type: ledger.TypeDebt},
	}

	got := c.Confirmations(lang.English, recs)
	want := "Recorded for Ada: a payment of ₦2,000 and a debt of ₦3,000."
	if got != want {
		t.Errorf("Confirmations = %q, want %q", got, want)
	}
	if strings.Count(got, "Ada") != 1 {
		t.Errorf("joined confirmation %q repeats the customer", got)
	}
}

func TestConfirmationsMixedCustomersCounts(t *testing.T) {
	c := newTestComposer(t)
	recs := []*ledger.Record{
		{Customer: "Ada", Amount: 2000, Type: ledger.TypeIncome},
		{Customer: "Musa", Amount: 3000, Type: ledger.TypeDebt},
	}

	got := c.Confirmations(lang.English, recs)
	for _, want := range []string{"2 transactions", "Ada", "Musa"} {
		if !strings.Contains(got, want) {
			t.Errorf("Confirmations = %q, missing %q", got, want)
		}
	}
}

func TestTotalCustomerScopedByType(t *testing.T) {
	c := newTestComposer(t)

	income := c.Total(lang.English, ledger.TypeIncome, "Ada", 4500)
	if !strings.Contains(income, "paid") || strings.Contains(income, "owes") {
		t.Errorf("customer income total = %q, want a payment phrasing", income)
	}
	debt := c.Total(lang.English, ledger.TypeDebt, "Ada", 4500)
	if !strings.Contains(debt, "owes") {
		t.Errorf("customer debt total = %q, want a debt phrasing", debt)
	}
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	c := newTestComposer(t)
	got := c.Capabilities(lang.Language("fr"))
	want := c.Capabilities(lang.English)
	if got != want {
		t.Errorf("unknown language reply = %q, want English %q", got, want)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{2500000, "2,500,000"},
		{45000, "45,000"},
	}
	for _, tt := range tests {
		if got := formatAmount(tt.in); got != tt.want {
			t.Errorf("formatAmount(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
