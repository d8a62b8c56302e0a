// README: Debt, settlement and simplification result types.
package debt

import (
	"errors"
	"math"
)

// ErrBadRequest is returned by Validate for malformed debt lists.
var ErrBadRequest = errors.New("bad request")

const (
	OwesYou = "owes_you"
	YouOwe  = "you_owe"

	DefaultReference = "You"

	// MaxTotal bounds the sum of all amounts so netting cannot overflow.
	MaxTotal = math.MaxInt32
)

// Debt is one IOU between the reference party and Name. Direction OwesYou
// means Name owes the reference party; anything else is read as YouOwe.
type Debt struct {
	Name      string `json:"name"`
	Amount    int    `json:"amount"`
	Direction string `json:"direction"`
}

type Transaction struct {
	FromPerson string `json:"from_person"`
	ToPerson   string `json:"to_person"`
	Amount     int    `json:"amount"`
}

// Balance is a signed net position. Positive means the person is owed money.
type Balance struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

type Result struct {
	Debts                  []Debt        `json:"debts"`
	OriginalCount          int           `json:"original_count"`
	SimplifiedCount        int           `json:"simplified_count"`
	SimplifiedTransactions []Transaction `json:"simplified_transactions"`
	Message                string        `json:"message"`
}
