package ledger

import (
	"slices"
	"strings"
)

// Debtor is a per-customer sum of outstanding debt.
type Debtor struct {
	Customer string
	Amount   int64
}

// SumByType totals the amounts of all records of one type.
func SumByType(records []*Record, t Type) int64 {
	var total int64
	for _, rec := range records {
		if rec.Type == t {
			total += rec.Amount
		}
	}
	return total
}

// Debtors groups debt records by customer and returns per-customer sums,
// largest debt first. Customer names are matched case-insensitively but
// reported with the casing of their first record.
func Debtors(records []*Record) []Debtor {
	sums := make(map[string]*Debtor)
	var order []string
	for _, rec := range records {
		if rec.Type != TypeDebt || rec.Customer == "" {
			continue
		}
		k := strings.ToLower(rec.Customer)
		d, ok := sums[k]
		if !ok {
			d = &Debtor{Customer: rec.Customer}
			sums[k] = d
			order = append(order, k)
		}
		d.Amount += rec.Amount
	}
	out := make([]Debtor, 0, len(order))
	for _, k := range order {
		out = append(out, *sums[k])
	}
	slices.SortStableFunc(out, func(a, b Debtor) int {
		switch {
		case a.Amount > b.Amount:
			return -1
		case a.Amount < b.Amount:
			return 1
		default:
			return strings.Compare(a.Customer, b.Customer)
		}
	})
	return out
}

// FilterCustomer keeps records whose customer matches name, comparing
// case-insensitively on the whole name.
func FilterCustomer(records []*Record, name string) []*Record {
	var out []*Record
	for _, rec := range records {
		if strings.EqualFold(rec.Customer, name) {
			out = append(out, rec)
		}
	}
	return out
}
