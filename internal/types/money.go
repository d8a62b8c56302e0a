// README: Common money value object used across modules.
package types

import "strconv"

const CurrencyINR = "INR"

// Money is a whole-rupee amount.
type Money struct {
	Amount   int64
	Currency string
}

func INR(amount int) Money {
	return Money{Amount: int64(amount), Currency: CurrencyINR}
}

// String renders the amount the way the app displays prices, e.g. "₹55".
func (m Money) String() string {
	if m.Currency != "" && m.Currency != CurrencyINR {
		return strconv.FormatInt(m.Amount, 10) + " " + m.Currency
	}
	return "₹" + strconv.FormatInt(m.Amount, 10)
}
