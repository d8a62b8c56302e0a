package fare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Distance(t *testing.T) {
	e := NewEngine(DefaultTables())

	tests := []struct {
		name string
		from string
		to   string
		want int
	}{
		{"listed order", "Lucknow", "Kanpur", 82},
		{"reversed order", "Kanpur", "Lucknow", 82},
		{"far pair", "Mumbai", "Patna", 1680},
		{"unknown station falls back", "Lucknow", "Unknown", 300},
		{"same station falls back", "Delhi", "Delhi", 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Distance(tt.from, tt.to))
		})
	}
}

func TestEngine_DistanceSymmetric(t *testing.T) {
	e := NewEngine(DefaultTables())
	for _, a := range e.Stations() {
		for _, b := range e.Stations() {
			assert.Equal(t, e.Distance(a, b), e.Distance(b, a), "%s-%s", a, b)
		}
	}
}

func TestEngine_Fare(t *testing.T) {
	e := NewEngine(DefaultTables())

	tests := []struct {
		name  string
		km    int
		class string
		want  int
	}{
		// 20 + 82*0.45 = 56.9 -> 55
		{"Sleeper Lucknow-Kanpur", 82, "SL", 55},
		// 15 + 82*0.30 = 39.6 -> 40
		{"Second sitting Lucknow-Kanpur", 82, "2S", 40},
		// 20 + 300*0.45 = 155
		{"Sleeper fallback distance", 300, "SL", 155},
		// 20 + 10*0.45 = 24.5 -> quotient 4.9 -> 25
		{"Sleeper short hop", 10, "SL", 25},
		// 15 + 25*0.30 = 22.5 -> quotient 4.5 rounds half up -> 25
		{"Exact half rounds up", 25, "2S", 25},
		{"Unknown class uses sleeper", 82, "1A", 55},
		{"Zero distance is base fare", 0, "SL", 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Fare(tt.km, tt.class))
		})
	}
}

func TestEngine_FareProperties(t *testing.T) {
	e := NewEngine(DefaultTables())
	for class, tier := range e.Classes() {
		for km := 0; km <= 2000; km += 7 {
			f := e.Fare(km, class)
			assert.Zero(t, f%5, "class %s km %d", class, km)
			assert.GreaterOrEqual(t, f, tier.BaseFare, "class %s km %d", class, km)
		}
	}
}

func TestConcessionFare(t *testing.T) {
	tests := []struct {
		name           string
		fare           int
		pct            int
		wantDiscounted int
		wantSavings    int
	}{
		// discount 27, 55-27 = 28 -> 30
		{"General on 55", 55, 50, 30, 25},
		// discount 41, 55-41 = 14 -> 15
		{"SC/ST on 55", 55, 75, 15, 40},
		{"No concession", 155, 0, 155, 0},
		{"Full concession", 155, 100, 0, 155},
		{"Negative pct clamps to zero", 40, -10, 40, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, savings := concessionFare(tt.fare, tt.pct)
			assert.Equal(t, tt.wantDiscounted, got)
			assert.Equal(t, tt.wantSavings, savings)
		})
	}
}

func TestConcessionFare_NeverExceedsFare(t *testing.T) {
	e := NewEngine(DefaultTables())
	for km := 0; km <= 1700; km += 13 {
		fare := e.Fare(km, "SL")
		for pct := 0; pct <= 100; pct++ {
			got, savings := e.ConcessionFare(fare, pct)
			require.LessOrEqual(t, got, fare, "fare %d pct %d", fare, pct)
			require.Equal(t, fare, got+savings)
		}
		got, _ := e.ConcessionFare(fare, 0)
		assert.Equal(t, fare, got)
	}
}

func TestEngine_CalculateConcession(t *testing.T) {
	e := NewEngine(DefaultTables())

	got := e.CalculateConcession("Lucknow", "Kanpur", "SL", "General")

	assert.Equal(t, ConcessionResult{
		FromStation:    "Lucknow",
		ToStation:      "Kanpur",
		TravelClass:    "SL",
		Category:       "General",
		OriginalFare:   55,
		ConcessionFare: 30,
		Savings:        25,
		SavingsPct:     50,
		VerifiedVia:    "DigiLocker + ABC",
		Steps: []string{
			"1. Visit nearest railway counter with student ID",
			"2. Show digital bonafide certificate (download from app)",
			"3. Request concession ticket for Lucknow → Kanpur",
			"4. Pay the concession fare of ₹30",
			"5. Keep the receipt for verification on train",
		},
	}, got)
}

func TestEngine_CalculateConcessionDefaults(t *testing.T) {
	e := NewEngine(DefaultTables())

	got := e.CalculateConcession("Lucknow", "Nowhere", "3A", "Alumni")

	// fallback 300 km at sleeper rates, General 50%
	assert.Equal(t, 155, got.OriginalFare)
	assert.Equal(t, 50, got.SavingsPct)
	assert.Equal(t, 80, got.ConcessionFare)
	assert.Equal(t, 75, got.Savings)
	assert.Equal(t, "3A", got.TravelClass)
	assert.Equal(t, "Alumni", got.Category)
}

func TestEngine_Idempotent(t *testing.T) {
	e := NewEngine(DefaultTables())
	a := e.CalculateConcession("Delhi", "Jaipur", "2S", "PH")
	b := e.CalculateConcession("Delhi", "Jaipur", "2S", "PH")
	assert.Equal(t, a, b)
}

func TestNewEngine_CopiesTables(t *testing.T) {
	tables := DefaultTables()
	e := NewEngine(tables)

	tables.Distances[MakePair("Lucknow", "Kanpur")] = 1
	tables.Tiers["SL"] = Tier{BaseFare: 1000}
	tables.Stations[0] = "Changed"

	assert.Equal(t, 82, e.Distance("Lucknow", "Kanpur"))
	assert.Equal(t, 55, e.Fare(82, "SL"))
	assert.Equal(t, "Lucknow", e.Stations()[0])
}

func TestRound5(t *testing.T) {
	for n, want := range map[int]int{0: 0, 1: 0, 2: 0, 3: 5, 7: 5, 8: 10, 28: 30, 27: 25, -4: 0} {
		assert.Equal(t, want, Round5(n), "Round5(%d)", n)
	}
}
