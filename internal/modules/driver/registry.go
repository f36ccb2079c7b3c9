// README: In-memory driver registry; the authoritative driver set for matching.
package driver

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/mmcloughlin/geohash"

	"minicab/internal/types"
)

// geohashPrecision gives ~5km cells, enough to bucket drivers per area.
const geohashPrecision = 5

// Registry owns the authoritative in-memory set of drivers. Every exported
// operation takes the mutex, so each call is atomic with respect to
// concurrent location updates and matching scans.
type Registry struct {
	mu      sync.Mutex
	drivers map[int64]Driver
	seeded  bool
}

func NewRegistry() *Registry {
	return &Registry{drivers: make(map[int64]Driver)}
}

// Seed populates the registry with the fixed sample fleet, applying a one-time
// random offset of up to ±0.01° per axis so drivers do not stack on the exact
// same spot. Seeding an already-populated registry is a no-op.
func (r *Registry) Seed() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.seeded || len(r.drivers) > 0 {
		return
	}

	samples := []Driver{
		{ID: 1, Name: "John Smith", Rating: 4.9, Vehicle: "Honda Civic", Position: types.Point{Lat: 28.6139, Lng: 77.2090}, Phone: "+91-9876543210", LicensePlate: "DL-01-AB-1234"},
		{ID: 2, Name: "Sarah Johnson", Rating: 4.8, Vehicle: "Toyota Camry", Position: types.Point{Lat: 28.6200, Lng: 77.2100}, Phone: "+91-9876543211", LicensePlate: "DL-02-CD-5678"},
		{ID: 3, Name: "Mike Wilson", Rating: 4.7, Vehicle: "Hyundai Elantra", Position: types.Point{Lat: 28.6100, Lng: 77.2050}, Phone: "+91-9876543212", LicensePlate: "DL-03-EF-9012"},
		{ID: 4, Name: "Emily Davis", Rating: 4.9, Vehicle: "Nissan Altima", Position: types.Point{Lat: 28.6180, Lng: 77.2120}, Phone: "+91-9876543213", LicensePlate: "DL-04-GH-3456"},
		{ID: 5, Name: "Alex Brown", Rating: 4.6, Vehicle: "Ford Focus", Position: types.Point{Lat: 28.6160, Lng: 77.2080}, Phone: "+91-9876543214", LicensePlate: "DL-05-IJ-7890"},
	}

	for _, d := range samples {
		d.Position.Lat += (rand.Float64() - 0.5) * 0.02
		d.Position.Lng += (rand.Float64() - 0.5) * 0.02
		d.Status = StatusAvailable
		d.Geohash = geohash.EncodeWithPrecision(d.Position.Lat, d.Position.Lng, geohashPrecision)
		r.drivers[d.ID] = d
	}
	r.seeded = true
}

// Add inserts a driver record, deriving its geohash cell. It is used by Seed
// and by tests that need a fleet with known positions.
func (r *Registry) Add(d Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.drivers[d.ID]; ok {
		return fmt.Errorf("driver %d already registered", d.ID)
	}
	if d.Status == "" {
		d.Status = StatusAvailable
	}
	d.Geohash = geohash.EncodeWithPrecision(d.Position.Lat, d.Position.Lng, geohashPrecision)
	r.drivers[d.ID] = d
	return nil
}

func (r *Registry) Get(id int64) (Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.drivers[id]
	if !ok {
		return Driver{}, ErrNotFound
	}
	return d, nil
}

// UpdateLocation overwrites a driver's position in place. No history is kept.
func (r *Registry) UpdateLocation(id int64, lat, lng float64) (Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.drivers[id]
	if !ok {
		return Driver{}, ErrNotFound
	}
	d.Position = types.Point{Lat: lat, Lng: lng}
	d.Geohash = geohash.EncodeWithPrecision(lat, lng, geohashPrecision)
	r.drivers[id] = d
	return d, nil
}

// UpdateStatus overwrites a driver's availability status. Any status may
// transition to any other; only enum membership is enforced.
func (r *Registry) UpdateStatus(id int64, status Status) (Driver, error) {
	if _, err := ParseStatus(string(status)); err != nil {
		return Driver{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.drivers[id]
	if !ok {
		return Driver{}, ErrNotFound
	}
	d.Status = status
	r.drivers[id] = d
	return d, nil
}

// List returns a snapshot of all drivers in ascending ID order. The slice is
// a copy; callers may not observe later mutations through it.
func (r *Registry) List() []Driver {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Driver, 0, len(r.drivers))
	for _, d := range r.drivers {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.drivers)
}
