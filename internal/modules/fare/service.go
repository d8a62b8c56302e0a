// README: Fare engine computes railway fares and student concessions.
package fare

import "fmt"

// Engine prices railway journeys from an immutable copy of Tables.
// All methods are safe for concurrent use.
type Engine struct {
	tables Tables
}

func NewEngine(t Tables) *Engine {
	return &Engine{tables: t.clone()}
}

// Distance returns the km between two stations in either order, or the
// fallback distance when the pair is unknown.
func (e *Engine) Distance(from, to string) int {
	if km, ok := e.tables.Distances[MakePair(from, to)]; ok {
		return km
	}
	return e.tables.FallbackKm
}

// Known reports whether the pair has a listed distance.
func (e *Engine) Known(from, to string) bool {
	_, ok := e.tables.Distances[MakePair(from, to)]
	return ok
}

func (e *Engine) tier(class string) Tier {
	if t, ok := e.tables.Tiers[class]; ok {
		return t
	}
	return e.tables.Tiers[e.tables.DefaultClass]
}

// Fare is base + km*perKm rounded to the nearest multiple of 5, half up.
func (e *Engine) Fare(distanceKm int, class string) int {
	if distanceKm < 0 {
		distanceKm = 0
	}
	t := e.tier(class)
	paise := t.BaseFare*100 + distanceKm*t.PerKmPaise
	return (paise + 250) / 500 * 5
}

// ConcessionPct returns the discount percentage for a rider category.
func (e *Engine) ConcessionPct(category string) int {
	if pct, ok := e.tables.Concessions[category]; ok {
		return pct
	}
	return e.tables.Concessions[e.tables.DefaultCategory]
}

// ConcessionFare applies pct to fare. The discounted fare is rounded to 5 and
// savings is taken from the rounded fare, so it can drift from the raw discount.
func (e *Engine) ConcessionFare(originalFare, pct int) (discounted, savings int) {
	return concessionFare(originalFare, pct)
}

func concessionFare(originalFare, pct int) (int, int) {
	if originalFare < 0 {
		originalFare = 0
	}
	pct = clampPct(pct)
	discount := originalFare * pct / 100
	discounted := Round5(originalFare - discount)
	return discounted, originalFare - discounted
}

// Round5 rounds a non-negative rupee amount to the nearest multiple of 5, half up.
func Round5(n int) int {
	if n < 0 {
		return 0
	}
	return (n + 2) / 5 * 5
}

func clampPct(pct int) int {
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return pct
}

// CalculateConcession prices a student concession ticket between two stations.
func (e *Engine) CalculateConcession(from, to, class, category string) ConcessionResult {
	distance := e.Distance(from, to)
	original := e.Fare(distance, class)
	pct := e.ConcessionPct(category)
	discounted, savings := concessionFare(original, pct)

	return ConcessionResult{
		FromStation:    from,
		ToStation:      to,
		TravelClass:    class,
		Category:       category,
		OriginalFare:   original,
		ConcessionFare: discounted,
		Savings:        savings,
		SavingsPct:     pct,
		VerifiedVia:    VerifiedVia,
		Steps:          concessionSteps(from, to, discounted),
	}
}

func concessionSteps(from, to string, concessionFare int) []string {
	return []string{
		"1. Visit nearest railway counter with student ID",
		"2. Show digital bonafide certificate (download from app)",
		fmt.Sprintf("3. Request concession ticket for %s → %s", from, to),
		fmt.Sprintf("4. Pay the concession fare of ₹%d", concessionFare),
		"5. Keep the receipt for verification on train",
	}
}

// Stations lists the known stations in display order.
func (e *Engine) Stations() []string {
	return append([]string(nil), e.tables.Stations...)
}

// Classes lists the priced travel classes.
func (e *Engine) Classes() map[string]Tier {
	out := make(map[string]Tier, len(e.tables.Tiers))
	for k, v := range e.tables.Tiers {
		out[k] = v
	}
	return out
}
