// README: Pure scoring of one driver against one rider position.
package matching

import (
	"math"

	"minicab/internal/geo"
	"minicab/internal/modules/driver"
)

const (
	// baseFare and pricePerKm are in INR; price stays unrounded until the
	// presentation layer.
	baseFare   = 50.0
	pricePerKm = 12.0

	// kmPerMinute assumes a 30 km/h effective speed in traffic.
	kmPerMinute = 0.5

	weightDistance = 0.4
	weightRating   = 0.3
	weightEta      = 0.2
	weightPrice    = 0.1
)

// Score computes the full candidate tuple for a driver and rider position.
// It is total: any real coordinate pair and rating in [0,5] produce a score
// in [0,1], with every sub-score clamped at zero.
func Score(d driver.Driver, riderLat, riderLng float64) Candidate {
	distanceKm := geo.DistanceKm(riderLat, riderLng, d.Position.Lat, d.Position.Lng)

	eta := int(math.Round(distanceKm / kmPerMinute))
	if eta < 1 {
		eta = 1
	}

	price := baseFare + distanceKm*pricePerKm

	distanceScore := clampZero(1 - distanceKm/10)
	ratingScore := d.Rating / 5.0
	etaScore := clampZero(1 - float64(eta)/30)
	priceScore := clampZero(1 - price/500)

	score := weightDistance*distanceScore +
		weightRating*ratingScore +
		weightEta*etaScore +
		weightPrice*priceScore

	return Candidate{
		Driver:     d,
		DistanceKm: distanceKm,
		EtaMinutes: eta,
		PriceUnits: price,
		Score:      score,
	}
}

func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
