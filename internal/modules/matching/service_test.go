package matching

import (
	"errors"
	"testing"

	"minicab/internal/modules/driver"
	"minicab/internal/types"
)

// fleet builds a registry with known positions (no seed jitter).
func fleet(t *testing.T, drivers ...driver.Driver) *driver.Registry {
	t.Helper()
	r := driver.NewRegistry()
	for _, d := range drivers {
		if err := r.Add(d); err != nil {
			t.Fatalf("Add(%d): %v", d.ID, err)
		}
	}
	return r
}

func TestNearby_FiltersUnavailableAndOutOfRadius(t *testing.T) {
	rider := types.Point{Lat: 28.6139, Lng: 77.2090}
	reg := fleet(t,
		driver.Driver{ID: 1, Rating: 4.9, Status: driver.StatusAvailable, Position: rider},
		driver.Driver{ID: 2, Rating: 4.8, Status: driver.StatusBusy, Position: rider},
		driver.Driver{ID: 3, Rating: 4.7, Status: driver.StatusOffline, Position: rider},
		// ~11km north, outside the 5km radius.
		driver.Driver{ID: 4, Rating: 5.0, Status: driver.StatusAvailable, Position: types.Point{Lat: 28.7139, Lng: 77.2090}},
	)

	got := NewEngine(reg, 0).Nearby(rider.Lat, rider.Lng, 5.0)

	if len(got) != 1 {
		t.Fatalf("Nearby returned %d candidates, want 1", len(got))
	}
	if got[0].Driver.ID != 1 {
		t.Errorf("Nearby returned driver %d, want 1", got[0].Driver.ID)
	}
	for _, c := range got {
		if c.Driver.Status != driver.StatusAvailable {
			t.Errorf("candidate %d has status %s", c.Driver.ID, c.Driver.Status)
		}
		if c.DistanceKm > 5.0 {
			t.Errorf("candidate %d at %.2f km exceeds radius", c.Driver.ID, c.DistanceKm)
		}
	}
}

func TestNearby_SortedByScoreDescending(t *testing.T) {
	rider := types.Point{Lat: 28.6139, Lng: 77.2090}
	reg := fleet(t,
		driver.Driver{ID: 1, Rating: 4.0, Status: driver.StatusAvailable, Position: types.Point{Lat: 28.640, Lng: 77.2090}},
		driver.Driver{ID: 2, Rating: 4.9, Status: driver.StatusAvailable, Position: rider},
		driver.Driver{ID: 3, Rating: 4.5, Status: driver.StatusAvailable, Position: types.Point{Lat: 28.620, Lng: 77.2090}},
	)

	got := NewEngine(reg, 0).Nearby(rider.Lat, rider.Lng, 5.0)

	if len(got) != 3 {
		t.Fatalf("Nearby returned %d candidates, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Errorf("candidates not sorted: score[%d]=%f > score[%d]=%f", i, got[i].Score, i-1, got[i-1].Score)
		}
	}
	if got[0].Driver.ID != 2 {
		t.Errorf("best candidate is driver %d, want 2 (at rider position)", got[0].Driver.ID)
	}
}

func TestNearby_TieBreaksOnAscendingID(t *testing.T) {
	rider := types.Point{Lat: 28.6139, Lng: 77.2090}
	// Identical position and rating: identical score.
	reg := fleet(t,
		driver.Driver{ID: 7, Rating: 4.5, Status: driver.StatusAvailable, Position: rider},
		driver.Driver{ID: 2, Rating: 4.5, Status: driver.StatusAvailable, Position: rider},
		driver.Driver{ID: 5, Rating: 4.5, Status: driver.StatusAvailable, Position: rider},
	)

	got := NewEngine(reg, 0).Nearby(rider.Lat, rider.Lng, 5.0)

	wantOrder := []int64{2, 5, 7}
	if len(got) != len(wantOrder) {
		t.Fatalf("Nearby returned %d candidates, want %d", len(got), len(wantOrder))
	}
	for i, want := range wantOrder {
		if got[i].Driver.ID != want {
			t.Errorf("position %d: driver %d, want %d", i, got[i].Driver.ID, want)
		}
	}
}

func TestNearby_EmptyWhenNoneQualify(t *testing.T) {
	reg := fleet(t,
		driver.Driver{ID: 1, Rating: 4.9, Status: driver.StatusBusy, Position: types.Point{Lat: 28.6139, Lng: 77.2090}},
	)

	got := NewEngine(reg, 0).Nearby(28.6139, 77.2090, 5.0)
	if len(got) != 0 {
		t.Errorf("Nearby returned %d candidates, want 0", len(got))
	}
}

func TestNearby_ZeroRadiusFallsBackToDefault(t *testing.T) {
	rider := types.Point{Lat: 28.6139, Lng: 77.2090}
	// ~3km away: inside the 5km default, outside a 1km radius.
	reg := fleet(t,
		driver.Driver{ID: 1, Rating: 4.9, Status: driver.StatusAvailable, Position: types.Point{Lat: 28.6409, Lng: 77.2090}},
	)
	e := NewEngine(reg, 0)

	if got := e.Nearby(rider.Lat, rider.Lng, 0); len(got) != 1 {
		t.Errorf("radius 0 should use the 5km default, got %d candidates", len(got))
	}
	if got := e.Nearby(rider.Lat, rider.Lng, 1.0); len(got) != 0 {
		t.Errorf("1km radius should exclude the driver, got %d candidates", len(got))
	}
}

func TestBestMatch_NoDrivers(t *testing.T) {
	for _, status := range []driver.Status{driver.StatusBusy, driver.StatusOffline} {
		reg := fleet(t,
			driver.Driver{ID: 1, Rating: 4.9, Status: status, Position: types.Point{Lat: 28.6139, Lng: 77.2090}},
		)
		_, _, err := NewEngine(reg, 0).BestMatch(28.6139, 77.2090)
		if !errors.Is(err, ErrNoDrivers) {
			t.Errorf("status %s: BestMatch err = %v, want ErrNoDrivers", status, err)
		}
	}

	_, _, err := NewEngine(driver.NewRegistry(), 0).BestMatch(28.6139, 77.2090)
	if !errors.Is(err, ErrNoDrivers) {
		t.Errorf("empty registry: BestMatch err = %v, want ErrNoDrivers", err)
	}
}

func TestBestMatch_ReturnsWinnerAndTopFive(t *testing.T) {
	rider := types.Point{Lat: 28.6139, Lng: 77.2090}
	var drivers []driver.Driver
	for i := int64(1); i <= 7; i++ {
		drivers = append(drivers, driver.Driver{
			ID:       i,
			Rating:   4.0 + float64(i)*0.1,
			Status:   driver.StatusAvailable,
			Position: rider,
		})
	}
	reg := fleet(t, drivers...)

	best, top, err := NewEngine(reg, 0).BestMatch(rider.Lat, rider.Lng)
	if err != nil {
		t.Fatalf("BestMatch: %v", err)
	}
	if best.Driver.ID != 7 {
		t.Errorf("best = driver %d, want 7 (highest rating)", best.Driver.ID)
	}
	if len(top) != 5 {
		t.Errorf("top list has %d entries, want 5", len(top))
	}
	if len(top) > 0 && top[0].Driver.ID != best.Driver.ID {
		t.Errorf("top[0] = driver %d, want the best match %d", top[0].Driver.ID, best.Driver.ID)
	}
}
