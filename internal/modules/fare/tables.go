package fare

import "fmt"

// Tables holds every lookup the engine needs. Engines copy the tables they
// are built with, so a Tables value can be reused or modified afterwards.
type Tables struct {
	Distances       map[Pair]int
	Stations        []string
	Tiers           map[string]Tier
	DefaultClass    string
	Concessions     map[string]int
	DefaultCategory string
	FallbackKm      int
}

// DefaultTables returns the built-in railway tariff.
func DefaultTables() Tables {
	t := Tables{
		Distances: make(map[Pair]int, len(defaultDistances)),
		Stations: []string{
			"Lucknow", "Kanpur", "Allahabad", "Varanasi",
			"Delhi", "Mumbai", "Patna", "Jaipur", "Haridwar",
		},
		Tiers: map[string]Tier{
			"2S": {BaseFare: 15, PerKmPaise: 30},
			"SL": {BaseFare: 20, PerKmPaise: 45},
		},
		DefaultClass: DefaultClass,
		Concessions: map[string]int{
			"General": 50,
			"SC/ST":   75,
			"PH":      75,
		},
		DefaultCategory: DefaultCategory,
		FallbackKm:      DefaultFallback,
	}
	for _, row := range defaultDistances {
		t.Distances[MakePair(row.From, row.To)] = row.Km
	}
	return t
}

var defaultDistances = []DistanceRow{
	{"Lucknow", "Kanpur", 82},
	{"Lucknow", "Allahabad", 200},
	{"Lucknow", "Varanasi", 300},
	{"Lucknow", "Delhi", 511},
	{"Lucknow", "Mumbai", 1380},
	{"Lucknow", "Patna", 540},
	{"Lucknow", "Jaipur", 580},
	{"Lucknow", "Haridwar", 510},
	{"Kanpur", "Allahabad", 193},
	{"Kanpur", "Varanasi", 295},
	{"Kanpur", "Delhi", 440},
	{"Kanpur", "Mumbai", 1320},
	{"Kanpur", "Patna", 610},
	{"Kanpur", "Jaipur", 500},
	{"Kanpur", "Haridwar", 520},
	{"Allahabad", "Varanasi", 128},
	{"Allahabad", "Delhi", 634},
	{"Allahabad", "Mumbai", 1400},
	{"Allahabad", "Patna", 415},
	{"Allahabad", "Jaipur", 725},
	{"Allahabad", "Haridwar", 740},
	{"Varanasi", "Delhi", 780},
	{"Varanasi", "Mumbai", 1500},
	{"Varanasi", "Patna", 240},
	{"Varanasi", "Jaipur", 870},
	{"Varanasi", "Haridwar", 850},
	{"Delhi", "Mumbai", 1384},
	{"Delhi", "Patna", 1001},
	{"Delhi", "Jaipur", 304},
	{"Delhi", "Haridwar", 214},
	{"Mumbai", "Patna", 1680},
	{"Mumbai", "Jaipur", 1150},
	{"Mumbai", "Haridwar", 1620},
	{"Patna", "Jaipur", 960},
	{"Patna", "Haridwar", 900},
	{"Jaipur", "Haridwar", 475},
}

// WithDistances returns a copy of t with rows merged over its distance table.
// Stations not yet listed are appended in row order.
func (t Tables) WithDistances(rows []DistanceRow) (Tables, error) {
	out := t.clone()
	for _, row := range rows {
		if row.From == "" || row.To == "" || row.From == row.To {
			return Tables{}, fmt.Errorf("%w: bad station pair %q-%q", ErrTariff, row.From, row.To)
		}
		if row.Km <= 0 {
			return Tables{}, fmt.Errorf("%w: distance %s-%s must be positive, got %d", ErrTariff, row.From, row.To, row.Km)
		}
		out.Distances[MakePair(row.From, row.To)] = row.Km
		out.addStation(row.From)
		out.addStation(row.To)
	}
	return out, nil
}

// Validate checks the invariants the engine relies on.
func (t Tables) Validate() error {
	if t.FallbackKm <= 0 {
		return fmt.Errorf("%w: fallback distance must be positive", ErrTariff)
	}
	if _, ok := t.Tiers[t.DefaultClass]; !ok {
		return fmt.Errorf("%w: default class %q has no tier", ErrTariff, t.DefaultClass)
	}
	if _, ok := t.Concessions[t.DefaultCategory]; !ok {
		return fmt.Errorf("%w: default category %q has no rate", ErrTariff, t.DefaultCategory)
	}
	for class, tier := range t.Tiers {
		if tier.BaseFare < 0 || tier.PerKmPaise < 0 {
			return fmt.Errorf("%w: class %q has a negative rate", ErrTariff, class)
		}
	}
	for category, pct := range t.Concessions {
		if pct < 0 || pct > 100 {
			return fmt.Errorf("%w: category %q rate %d outside 0-100", ErrTariff, category, pct)
		}
	}
	return nil
}

func (t Tables) clone() Tables {
	out := t
	out.Distances = make(map[Pair]int, len(t.Distances))
	for k, v := range t.Distances {
		out.Distances[k] = v
	}
	out.Stations = append([]string(nil), t.Stations...)
	out.Tiers = make(map[string]Tier, len(t.Tiers))
	for k, v := range t.Tiers {
		out.Tiers[k] = v
	}
	out.Concessions = make(map[string]int, len(t.Concessions))
	for k, v := range t.Concessions {
		out.Concessions[k] = v
	}
	return out
}

func (t *Tables) addStation(name string) {
	for _, s := range t.Stations {
		if s == name {
			return
		}
	}
	t.Stations = append(t.Stations, name)
}
