package debt

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hostelDebts() []Debt {
	return []Debt{
		{Name: "Rahul", Amount: 120, Direction: OwesYou},
		{Name: "Priya", Amount: 30, Direction: YouOwe},
		{Name: "Amit", Amount: 85, Direction: OwesYou},
		{Name: "Neha", Amount: 45, Direction: YouOwe},
	}
}

func TestBalances(t *testing.T) {
	got := Balances(hostelDebts(), "You")

	assert.Equal(t, []Balance{
		{Name: "You", Amount: 130},
		{Name: "Rahul", Amount: -120},
		{Name: "Priya", Amount: 30},
		{Name: "Amit", Amount: -85},
		{Name: "Neha", Amount: 45},
	}, got)
}

func TestSimplify_HostelExample(t *testing.T) {
	got := Simplify(hostelDebts(), "You")

	// creditors You 130, Neha 45, Priya 30; debtors Rahul 120, Amit 85
	assert.Equal(t, []Transaction{
		{FromPerson: "Rahul", ToPerson: "You", Amount: 120},
		{FromPerson: "Amit", ToPerson: "You", Amount: 10},
		{FromPerson: "Amit", ToPerson: "Neha", Amount: 45},
		{FromPerson: "Amit", ToPerson: "Priya", Amount: 30},
	}, got.SimplifiedTransactions)
	assert.Equal(t, 4, got.OriginalCount)
	assert.Equal(t, 4, got.SimplifiedCount)
	assert.Equal(t, "Instead of 4 payments, only 4 needed!", got.Message)
	assert.Equal(t, hostelDebts(), got.Debts)
}

func TestSimplify_DefaultReference(t *testing.T) {
	a := Simplify(hostelDebts(), "")
	b := Simplify(hostelDebts(), "You")
	assert.Equal(t, b, a)
}

func TestSimplify_ReferenceParty(t *testing.T) {
	got := Simplify([]Debt{
		{Name: "Rahul", Amount: 50, Direction: OwesYou},
	}, "Saksham")

	assert.Equal(t, []Transaction{{FromPerson: "Rahul", ToPerson: "Saksham", Amount: 50}}, got.SimplifiedTransactions)
}

func TestSimplify_Cases(t *testing.T) {
	tests := []struct {
		name  string
		debts []Debt
		want  []Transaction
	}{
		{
			name:  "empty",
			debts: nil,
			want:  []Transaction{},
		},
		{
			name: "offsetting debts cancel",
			debts: []Debt{
				{Name: "Rahul", Amount: 40, Direction: OwesYou},
				{Name: "Rahul", Amount: 40, Direction: YouOwe},
			},
			want: []Transaction{},
		},
		{
			name: "unknown direction reads as you_owe",
			debts: []Debt{
				{Name: "Priya", Amount: 25, Direction: "sideways"},
			},
			want: []Transaction{{FromPerson: "You", ToPerson: "Priya", Amount: 25}},
		},
		{
			name: "ties keep first appearance",
			debts: []Debt{
				{Name: "A", Amount: 10, Direction: OwesYou},
				{Name: "B", Amount: 10, Direction: OwesYou},
			},
			want: []Transaction{
				{FromPerson: "A", ToPerson: "You", Amount: 10},
				{FromPerson: "B", ToPerson: "You", Amount: 10},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Simplify(tt.debts, "You")
			assert.Equal(t, tt.want, got.SimplifiedTransactions)
			assert.Equal(t, len(tt.want), got.SimplifiedCount)
		})
	}
}

func TestSimplify_SettlesEveryone(t *testing.T) {
	names := []string{"Rahul", "Priya", "Amit", "Neha", "Vikash", "Sneha"}
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		debts := make([]Debt, rng.Intn(12))
		for i := range debts {
			dir := OwesYou
			if rng.Intn(2) == 0 {
				dir = YouOwe
			}
			debts[i] = Debt{Name: names[rng.Intn(len(names))], Amount: 1 + rng.Intn(500), Direction: dir}
		}

		balances := Balances(debts, "You")
		net := map[string]int{}
		sum, nonZero := 0, 0
		for _, b := range balances {
			net[b.Name] = b.Amount
			sum += b.Amount
			if b.Amount != 0 {
				nonZero++
			}
		}
		require.Zero(t, sum, "round %d", round)

		res := Simplify(debts, "You")
		for _, tx := range res.SimplifiedTransactions {
			require.Positive(t, tx.Amount)
			net[tx.FromPerson] += tx.Amount
			net[tx.ToPerson] -= tx.Amount
		}
		for name, v := range net {
			require.Zero(t, v, "round %d: %s left with %d", round, name, v)
		}
		if nonZero > 0 {
			require.LessOrEqual(t, res.SimplifiedCount, nonZero-1, "round %d", round)
		}
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(hostelDebts(), ""))
	require.NoError(t, Validate([]Debt{
		{Name: "A", Amount: MaxTotal - 1, Direction: OwesYou},
		{Name: "B", Amount: 1, Direction: YouOwe},
	}, "You"))

	tests := []struct {
		name  string
		debts []Debt
	}{
		{"blank name", []Debt{{Name: " ", Amount: 10, Direction: OwesYou}}},
		{"padded name", []Debt{{Name: "Rahul ", Amount: 10, Direction: OwesYou}}},
		{"reference party", []Debt{{Name: "You", Amount: 10, Direction: OwesYou}}},
		{"zero amount", []Debt{{Name: "Rahul", Amount: 0, Direction: OwesYou}}},
		{"negative amount", []Debt{{Name: "Rahul", Amount: -5, Direction: YouOwe}}},
		{"bad direction", []Debt{{Name: "Rahul", Amount: 5, Direction: "owes_them"}}},
		{"amount too large", []Debt{{Name: "A", Amount: math.MaxInt64, Direction: OwesYou}}},
		{"total overflows", []Debt{
			{Name: "A", Amount: math.MaxInt64, Direction: OwesYou},
			{Name: "B", Amount: math.MaxInt64, Direction: OwesYou},
		}},
		{"total past cap", []Debt{
			{Name: "A", Amount: MaxTotal, Direction: OwesYou},
			{Name: "B", Amount: 1, Direction: YouOwe},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, Validate(tt.debts, "You"), ErrBadRequest)
		})
	}
}

// TestSimplify_LargeAmountsConserve checks that debts accepted by Validate
// settle to zero even at the cap.
func TestSimplify_LargeAmountsConserve(t *testing.T) {
	debts := []Debt{
		{Name: "A", Amount: MaxTotal / 2, Direction: OwesYou},
		{Name: "B", Amount: MaxTotal / 2, Direction: OwesYou},
	}
	require.NoError(t, Validate(debts, "You"))

	res := Simplify(debts, "You")
	require.Len(t, res.SimplifiedTransactions, 2)
	paid := 0
	for _, tx := range res.SimplifiedTransactions {
		assert.Equal(t, "You", tx.ToPerson)
		paid += tx.Amount
	}
	assert.Equal(t, 2*(MaxTotal/2), paid)
}
