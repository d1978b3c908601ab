package utils

import (
	"math"
	"testing"
)

func TestHaversineDistanceMeters_SamePoint(t *testing.T) {
	d := HaversineDistanceMeters(41.8781, -87.6298, 41.8781, -87.6298)
	if d != 0 {
		t.Errorf("distance between identical points = %v, want 0", d)
	}
}

func TestHaversineDistanceMeters_KnownDistance(t *testing.T) {
	// Chicago Willis Tower to Chicago Art Institute, roughly 1.25 km
	d := HaversineDistanceMeters(41.8789, -87.6359, 41.8796, -87.6237)
	if d < 950 || d > 1150 {
		t.Errorf("distance = %v, want roughly 1010", d)
	}
}

func TestHaversineDistanceMeters_Symmetric(t *testing.T) {
	a := HaversineDistanceMeters(41.8781, -87.6298, 40.7128, -74.0060)
	b := HaversineDistanceMeters(40.7128, -74.0060, 41.8781, -87.6298)
	if math.Abs(a-b) > 1e-6 {
		t.Errorf("distance not symmetric: %v vs %v", a, b)
	}
}
