package fare

import (
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
)

type tariffFile struct {
	FallbackKm      int                  `toml:"fallback_km"`
	DefaultClass    string               `toml:"default_class"`
	DefaultCategory string               `toml:"default_category"`
	Stations        []string             `toml:"stations"`
	Distances       []distanceEntry      `toml:"distance"`
	Tiers           map[string]tierEntry `toml:"tiers"`
	Concessions     map[string]int       `toml:"concessions"`
}

type distanceEntry struct {
	From string `toml:"from"`
	To   string `toml:"to"`
	Km   int    `toml:"km"`
}

type tierEntry struct {
	Base  int     `toml:"base"`
	PerKm float64 `toml:"per_km"`
}

// LoadFile overlays the TOML tariff at path onto base. Keys absent from the
// file keep their base values.
//
//	fallback_km = 300
//	[tiers.SL]
//	base = 20
//	per_km = 0.45
//	[[distance]]
//	from = "Lucknow"
//	to = "Kanpur"
//	km = 82
func LoadFile(base Tables, path string) (Tables, error) {
	var f tariffFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return Tables{}, fmt.Errorf("fare: decode %s: %w", path, err)
	}
	return f.apply(base)
}

// Decode overlays a TOML tariff document onto base.
func Decode(base Tables, data string) (Tables, error) {
	var f tariffFile
	if _, err := toml.Decode(data, &f); err != nil {
		return Tables{}, fmt.Errorf("fare: decode tariff: %w", err)
	}
	return f.apply(base)
}

func (f tariffFile) apply(base Tables) (Tables, error) {
	out := base.clone()
	if f.FallbackKm != 0 {
		out.FallbackKm = f.FallbackKm
	}
	if f.DefaultClass != "" {
		out.DefaultClass = f.DefaultClass
	}
	if f.DefaultCategory != "" {
		out.DefaultCategory = f.DefaultCategory
	}
	if len(f.Stations) > 0 {
		out.Stations = append([]string(nil), f.Stations...)
	}
	for class, te := range f.Tiers {
		if te.PerKm < 0 || te.Base < 0 {
			return Tables{}, fmt.Errorf("%w: class %q has a negative rate", ErrTariff, class)
		}
		out.Tiers[class] = Tier{BaseFare: te.Base, PerKmPaise: int(math.Round(te.PerKm * 100))}
	}
	for category, pct := range f.Concessions {
		out.Concessions[category] = pct
	}

	rows := make([]DistanceRow, 0, len(f.Distances))
	for _, d := range f.Distances {
		rows = append(rows, DistanceRow{From: d.From, To: d.To, Km: d.Km})
	}
	out, err := out.WithDistances(rows)
	if err != nil {
		return Tables{}, err
	}
	if err := out.Validate(); err != nil {
		return Tables{}, err
	}
	return out, nil
}
