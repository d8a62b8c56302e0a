// README: Home route legs, itinerary and the tables the composer prices them from.
package route

// Step is one leg of the journey home.
type Step struct {
	Icon         string `json:"icon"`
	FromLocation string `json:"from_location"`
	Transport    string `json:"transport"`
	ToLocation   string `json:"to_location"`
	Price        string `json:"price"`
	Detail       string `json:"detail"`
	Badge        bool   `json:"badge"`
	DistanceKm   int    `json:"distance_km,omitempty"`
	Duration     string `json:"duration,omitempty"`
}

// Itinerary is the priced three-leg route.
type Itinerary struct {
	Steps           []Step `json:"steps"`
	TotalOriginal   int    `json:"total_original"`
	TotalDiscounted int    `json:"total_discounted"`
	Savings         int    `json:"savings"`
	SavingsText     string `json:"savings_text"`
}

// Anchor maps a known train distance to a timetable duration.
type Anchor struct {
	Km    int
	Label string
}

// Tables holds the fixed leg prices and duration anchors. Anchors are
// searched in order and the first closest one wins a tie.
type Tables struct {
	CampusBusFare     int
	AutoBaseFare      int
	AutoPerKm         int
	LastMileKm        map[string]int
	DefaultLastMileKm int
	TrainClass        string
	Anchors           []Anchor
	AnchorToleranceKm int
	AvgSpeedKmh       int
}

func DefaultTables() Tables {
	return Tables{
		CampusBusFare: 10,
		AutoBaseFare:  30,
		AutoPerKm:     12,
		LastMileKm: map[string]int{
			"Lucknow": 5, "Kanpur": 4, "Allahabad": 6, "Varanasi": 5,
			"Delhi": 8, "Mumbai": 10, "Patna": 6, "Jaipur": 5, "Haridwar": 3,
		},
		DefaultLastMileKm: 5,
		TrainClass:        "SL",
		Anchors: []Anchor{
			{82, "1h 30m"}, {200, "3h 30m"}, {300, "5h"}, {440, "6h 30m"},
			{511, "7h 30m"}, {540, "8h"}, {580, "8h 30m"}, {510, "7h 45m"},
		},
		AnchorToleranceKm: 50,
		AvgSpeedKmh:       65,
	}
}

func (t Tables) clone() Tables {
	out := t
	out.LastMileKm = make(map[string]int, len(t.LastMileKm))
	for k, v := range t.LastMileKm {
		out.LastMileKm[k] = v
	}
	out.Anchors = append([]Anchor(nil), t.Anchors...)
	return out
}
