// README: Fare tiers, distance tables and concession result types.
package fare

import "errors"

// ErrTariff is returned when a tariff source holds values the engine cannot use.
var ErrTariff = errors.New("invalid tariff")

const (
	DefaultClass    = "SL"
	DefaultCategory = "General"
	DefaultFallback = 300
	VerifiedVia     = "DigiLocker + ABC"
)

// Tier is the pricing for one travel class. PerKmPaise is the per-km rate in
// paise so fares can be computed without floating point.
type Tier struct {
	BaseFare   int
	PerKmPaise int
}

// Pair is an unordered station pair; build it with MakePair.
type Pair struct {
	A string
	B string
}

func MakePair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// ConcessionResult is the response of a student concession calculation.
type ConcessionResult struct {
	FromStation    string   `json:"from_station"`
	ToStation      string   `json:"to_station"`
	TravelClass    string   `json:"travel_class"`
	Category       string   `json:"category"`
	OriginalFare   int      `json:"original_fare"`
	ConcessionFare int      `json:"concession_fare"`
	Savings        int      `json:"savings"`
	SavingsPct     int      `json:"savings_pct"`
	VerifiedVia    string   `json:"verified_via"`
	Steps          []string `json:"steps"`
}

// DistanceRow is one station-to-station distance from an external source.
type DistanceRow struct {
	From string
	To   string
	Km   int
}
