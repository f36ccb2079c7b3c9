// README: Match engine; filters, scores and ranks drivers for a rider.
package matching

import (
	"errors"
	"sort"

	"minicab/internal/geo"
	"minicab/internal/modules/driver"
)

// DefaultRadiusKm is the search radius used when the caller does not supply one.
const DefaultRadiusKm = 5.0

// topMatches is how many ranked candidates BestMatch returns alongside the winner.
const topMatches = 5

var ErrNoDrivers = errors.New("no drivers available in your area")

// DriverLister is the registry view the engine needs: a consistent snapshot
// of all drivers at call time.
type DriverLister interface {
	List() []driver.Driver
}

type Engine struct {
	drivers       DriverLister
	defaultRadius float64
}

// NewEngine builds an engine over a driver source. radiusKm <= 0 falls back
// to DefaultRadiusKm.
func NewEngine(drivers DriverLister, radiusKm float64) *Engine {
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}
	return &Engine{drivers: drivers, defaultRadius: radiusKm}
}

// Nearby returns every available driver within radiusKm of the rider, scored
// and sorted by descending match score. Ties rank by ascending driver ID so
// results are deterministic. An empty result is not an error.
func (e *Engine) Nearby(riderLat, riderLng, radiusKm float64) []Candidate {
	if radiusKm <= 0 {
		radiusKm = e.defaultRadius
	}

	candidates := []Candidate{}
	for _, d := range e.drivers.List() {
		if d.Status != driver.StatusAvailable {
			continue
		}
		if geo.DistanceKm(riderLat, riderLng, d.Position.Lat, d.Position.Lng) > radiusKm {
			continue
		}
		candidates = append(candidates, Score(d, riderLat, riderLng))
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Driver.ID < candidates[j].Driver.ID
	})
	return candidates
}

// BestMatch ranks drivers around the rider at the default radius and returns
// the winner plus the top ranked candidates for display. ErrNoDrivers when
// nobody qualifies.
func (e *Engine) BestMatch(riderLat, riderLng float64) (Candidate, []Candidate, error) {
	ranked := e.Nearby(riderLat, riderLng, e.defaultRadius)
	if len(ranked) == 0 {
		return Candidate{}, nil, ErrNoDrivers
	}
	top := ranked
	if len(top) > topMatches {
		top = top[:topMatches]
	}
	return ranked[0], top, nil
}
