package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"campusos/internal/modules/route"
)

// DefaultMapsTimeout bounds the optional live last-mile lookup.
const DefaultMapsTimeout = 3 * time.Second

// TravelEstimator returns a live driving estimate between two places.
type TravelEstimator interface {
	GetTravelEstimate(ctx context.Context, origin, destination string) (time.Duration, string, error)
}

// LastMile is the live auto/cab estimate from the destination station.
type LastMile struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Duration    string `json:"duration"`
	Distance    string `json:"distance"`
}

// HomePlan is the priced itinerary plus an optional live last-mile estimate.
type HomePlan struct {
	route.Itinerary
	LiveLastMile *LastMile `json:"live_last_mile,omitempty"`
}

// HomePlanner orchestrates the route composer and Google Maps routing.
type HomePlanner struct {
	composer  *route.Composer
	estimator TravelEstimator
	timeout   time.Duration
	log       logrus.FieldLogger
}

// NewHomePlanner creates a HomePlanner. estimator may be nil, in which case
// plans never carry a live estimate.
func NewHomePlanner(composer *route.Composer, estimator TravelEstimator, log logrus.FieldLogger) *HomePlanner {
	return &HomePlanner{
		composer:  composer,
		estimator: estimator,
		timeout:   DefaultMapsTimeout,
		log:       log,
	}
}

// Plan prices the route home. When a home address is given and Maps is
// configured, the last leg gains a live estimate; Maps failures are logged
// and never change the priced itinerary.
func (p *HomePlanner) Plan(ctx context.Context, fromCity, toCity, category, homeAddress string) HomePlan {
	plan := HomePlan{Itinerary: p.composer.Calculate(fromCity, toCity, category)}

	homeAddress = strings.TrimSpace(homeAddress)
	if p.estimator == nil || homeAddress == "" {
		return plan
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	origin := fmt.Sprintf("%s Railway Station", toCity)
	dur, dist, err := p.estimator.GetTravelEstimate(ctx, origin, homeAddress)
	if err != nil {
		if p.log != nil {
			p.log.WithFields(logrus.Fields{
				"origin": origin,
				"error":  err.Error(),
			}).Warn("maps last-mile estimate failed")
		}
		return plan
	}

	plan.LiveLastMile = &LastMile{
		Origin:      origin,
		Destination: homeAddress,
		Duration:    formatDuration(dur),
		Distance:    dist,
	}
	return plan
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	if h == 0 {
		return fmt.Sprintf("%d min", m)
	}
	return fmt.Sprintf("%dh %02dm", h, m)
}
