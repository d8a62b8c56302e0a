// README: Route composer builds the campus bus, train and auto itinerary home.
package route

import (
	"fmt"

	"campusos/internal/modules/fare"
	"campusos/internal/types"
)

// Composer prices the fixed three-leg route home. It holds no mutable state.
type Composer struct {
	fares  *fare.Engine
	tables Tables
}

func NewComposer(fares *fare.Engine, t Tables) *Composer {
	return &Composer{fares: fares, tables: t.clone()}
}

// Calculate builds the itinerary from fromCity to toCity with the student
// concession for category applied to the train leg.
func (c *Composer) Calculate(fromCity, toCity, category string) Itinerary {
	if category == "" {
		category = fare.DefaultCategory
	}

	bus := c.tables.CampusBusFare

	distance := c.fares.Distance(fromCity, toCity)
	trainOriginal := c.fares.Fare(distance, c.tables.TrainClass)
	pct := c.fares.ConcessionPct(category)
	trainDiscounted, _ := c.fares.ConcessionFare(trainOriginal, pct)

	auto := c.AutoFare(toCity)

	steps := []Step{
		{
			Icon:         "🏫",
			FromLocation: "Hostel",
			Transport:    "🚌 Campus Bus",
			ToLocation:   "Railway Station",
			Price:        types.INR(bus).String(),
			Detail:       "Every 30 min from Main Gate",
		},
		{
			Icon:         "🚂",
			FromLocation: fmt.Sprintf("Train: %s → %s", fromCity, toCity),
			Transport:    "Sleeper Class",
			Price:        types.INR(trainDiscounted).String(),
			Detail:       fmt.Sprintf("%d%% Student Concession Applied!", pct),
			Badge:        true,
			DistanceKm:   distance,
			Duration:     c.EstimateDuration(distance),
		},
		{
			Icon:         "🛺",
			FromLocation: "Auto from Station",
			ToLocation:   "Home",
			Price:        types.INR(auto).String(),
			Detail:       "Estimated fare via Ola/Uber",
		},
	}

	totalOriginal := bus + trainOriginal + auto
	totalDiscounted := bus + trainDiscounted + auto
	savings := totalOriginal - totalDiscounted

	return Itinerary{
		Steps:           steps,
		TotalOriginal:   totalOriginal,
		TotalDiscounted: totalDiscounted,
		Savings:         savings,
		SavingsText:     fmt.Sprintf("You save %s with student concession! 🎉", types.INR(savings)),
	}
}

// AutoFare estimates the last-mile auto fare from the station in city.
func (c *Composer) AutoFare(city string) int {
	km, ok := c.tables.LastMileKm[city]
	if !ok {
		km = c.tables.DefaultLastMileKm
	}
	return fare.Round5(c.tables.AutoBaseFare + km*c.tables.AutoPerKm)
}

// EstimateDuration returns the timetable duration of the closest anchor when
// it is within tolerance, otherwise distance at the average speed as "Xh MMm".
func (c *Composer) EstimateDuration(distanceKm int) string {
	if len(c.tables.Anchors) > 0 {
		best := c.tables.Anchors[0]
		for _, a := range c.tables.Anchors[1:] {
			if absInt(a.Km-distanceKm) < absInt(best.Km-distanceKm) {
				best = a
			}
		}
		if absInt(best.Km-distanceKm) < c.tables.AnchorToleranceKm {
			return best.Label
		}
	}
	speed := c.tables.AvgSpeedKmh
	if speed <= 0 || distanceKm < 0 {
		return "0h 00m"
	}
	h := distanceKm / speed
	m := distanceKm % speed * 60 / speed
	return fmt.Sprintf("%dh %02dm", h, m)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
