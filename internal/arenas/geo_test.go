package arenas

import (
	"math"
	"testing"
)

func TestDistanceMeters_SamePoint(t *testing.T) {
	if d := DistanceMeters(-23.5505, -46.6333, -23.5505, -46.6333); d != 0 {
		t.Errorf("distance to same point = %f, want 0", d)
	}
}

func TestDistanceMeters_KnownDistance(t *testing.T) {
	// São Paulo (Sé) to Campinas (center), roughly 88 km apart.
	d := DistanceMeters(-23.5505, -46.6333, -22.9056, -47.0608)
	if math.Abs(d-88000) > 5000 {
		t.Errorf("São Paulo-Campinas distance = %f m, want ~88000 m", d)
	}
}

func TestDistanceMeters_Symmetry(t *testing.T) {
	a := DistanceMeters(-23.5505, -46.6333, -22.9056, -47.0608)
	b := DistanceMeters(-22.9056, -47.0608, -23.5505, -46.6333)
	if math.Abs(a-b) > 1e-6 {
		t.Errorf("distance not symmetric: %f vs %f", a, b)
	}
}

func TestDistanceMeters_ShortDistance(t *testing.T) {
	// Two points ~1.11 km apart along a meridian (0.01 degrees of latitude).
	d := DistanceMeters(-23.55, -46.63, -23.56, -46.63)
	if math.Abs(d-1112) > 20 {
		t.Errorf("0.01 degree latitude distance = %f m, want ~1112 m", d)
	}
}
