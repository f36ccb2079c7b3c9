// README: Match candidate derived per rider query.
package matching

import "minicab/internal/modules/driver"

// Candidate pairs a driver snapshot with the scores computed for one rider
// query. Candidates are never stored; each query recomputes them.
type Candidate struct {
	Driver     driver.Driver
	DistanceKm float64
	EtaMinutes int
	PriceUnits float64
	Score      float64
}
