package geo

import (
	"math"
	"testing"
)

func TestDistanceKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		lat1      float64
		lng1      float64
		lat2      float64
		lng2      float64
		wantKm    float64
		tolerance float64
	}{
		{
			name: "same point",
			lat1: 28.6139, lng1: 77.2090,
			lat2: 28.6139, lng2: 77.2090,
			wantKm:    0,
			tolerance: 0,
		},
		{
			name: "Connaught Place to India Gate (~2.5km)",
			lat1: 28.6315, lng1: 77.2167,
			lat2: 28.6129, lng2: 77.2295,
			wantKm:    2.4,
			tolerance: 0.5,
		},
		{
			name: "New York to Los Angeles (~3944km)",
			lat1: 40.7128, lng1: -74.0060,
			lat2: 34.0522, lng2: -118.2437,
			wantKm:    3944,
			tolerance: 50,
		},
		{
			name: "near-antipodal stays finite (~20000km)",
			lat1: 0, lng1: 0,
			lat2: 0, lng2: 180,
			wantKm:    20015,
			tolerance: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			if math.IsNaN(got) {
				t.Fatalf("DistanceKm() = NaN")
			}
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("DistanceKm() = %f, want %f (±%f)", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}

func TestDistanceKm_Symmetry(t *testing.T) {
	d1 := DistanceKm(28.6139, 77.2090, 19.0760, 72.8777)
	d2 := DistanceKm(19.0760, 72.8777, 28.6139, 77.2090)
	if math.Abs(d1-d2) > 0.0001 {
		t.Errorf("distance is not symmetric: %f vs %f", d1, d2)
	}
}

func TestDistanceKm_ZeroForIdenticalPoints(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{28.6139, 77.2090},
		{-33.8688, 151.2093},
		{90, 0},
	}
	for _, p := range points {
		if d := DistanceKm(p[0], p[1], p[0], p[1]); d != 0 {
			t.Errorf("DistanceKm(%v, %v, same) = %f, want exactly 0", p[0], p[1], d)
		}
	}
}
