// README: Greedy net-balance debt simplification.
package debt

import (
	"fmt"
	"sort"
	"strings"
)

// Balances nets every debt into one signed balance per person, in the order
// people first appear. The reference party is included whenever it takes part.
func Balances(debts []Debt, reference string) []Balance {
	if reference == "" {
		reference = DefaultReference
	}

	index := make(map[string]int)
	var out []Balance
	add := func(name string, amount int) {
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, Balance{Name: name})
		}
		out[i].Amount += amount
	}

	for _, d := range debts {
		if d.Direction == OwesYou {
			add(reference, d.Amount)
			add(d.Name, -d.Amount)
		} else {
			add(d.Name, d.Amount)
			add(reference, -d.Amount)
		}
	}
	return out
}

// Simplify settles the debts with the largest creditor paired against the
// largest debtor until every balance is zero. This is the usual greedy
// heuristic and is not guaranteed to be transaction-minimal.
func Simplify(debts []Debt, reference string) Result {
	var creditors, debtors []Balance
	for _, b := range Balances(debts, reference) {
		switch {
		case b.Amount > 0:
			creditors = append(creditors, b)
		case b.Amount < 0:
			debtors = append(debtors, Balance{Name: b.Name, Amount: -b.Amount})
		}
	}
	sort.SliceStable(creditors, func(i, j int) bool { return creditors[i].Amount > creditors[j].Amount })
	sort.SliceStable(debtors, func(i, j int) bool { return debtors[i].Amount > debtors[j].Amount })

	txs := make([]Transaction, 0, len(creditors)+len(debtors))
	i, j := 0, 0
	for i < len(creditors) && j < len(debtors) {
		amount := min(creditors[i].Amount, debtors[j].Amount)
		txs = append(txs, Transaction{
			FromPerson: debtors[j].Name,
			ToPerson:   creditors[i].Name,
			Amount:     amount,
		})
		creditors[i].Amount -= amount
		debtors[j].Amount -= amount
		if creditors[i].Amount == 0 {
			i++
		}
		if debtors[j].Amount == 0 {
			j++
		}
	}

	echo := append([]Debt{}, debts...)
	return Result{
		Debts:                  echo,
		OriginalCount:          len(debts),
		SimplifiedCount:        len(txs),
		SimplifiedTransactions: txs,
		Message:                fmt.Sprintf("Instead of %d payments, only %d needed!", len(debts), len(txs)),
	}
}

// Validate rejects debt lists that cannot be netted: blank or padded names,
// non-positive amounts, a person named after the reference party, an unknown
// direction, or amounts summing past MaxTotal.
func Validate(debts []Debt, reference string) error {
	if reference == "" {
		reference = DefaultReference
	}
	total := 0
	for i, d := range debts {
		name := strings.TrimSpace(d.Name)
		switch {
		case name == "":
			return fmt.Errorf("%w: debt %d has no name", ErrBadRequest, i)
		case name != d.Name:
			return fmt.Errorf("%w: debt %d name %q has surrounding spaces", ErrBadRequest, i, d.Name)
		case name == reference:
			return fmt.Errorf("%w: debt %d names the reference party %q", ErrBadRequest, i, reference)
		case d.Amount <= 0:
			return fmt.Errorf("%w: debt %d amount must be positive", ErrBadRequest, i)
		case d.Amount > MaxTotal-total:
			return fmt.Errorf("%w: debt %d pushes the total past %d", ErrBadRequest, i, MaxTotal)
		case d.Direction != OwesYou && d.Direction != YouOwe:
			return fmt.Errorf("%w: debt %d direction %q", ErrBadRequest, i, d.Direction)
		}
		total += d.Amount
	}
	return nil
}
