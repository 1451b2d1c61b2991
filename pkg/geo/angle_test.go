package geo

import (
	"math"
	"testing"
)

func TestAngularDeviation(t *testing.T) {
	testCases := []struct {
		name string
		a    float64
		b    float64
		want float64
	}{
		{"same angle", 180, 180, 0},
		{"opposite", 0, 180, 180},
		{"wraps around zero", 10, 350, 20},
		{"wraps the other way", 350, 10, 20},
		{"quarter", 90, 270, 180},
		{"small difference", 170, 195, 25},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := AngularDeviation(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AngularDeviation(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestBearingToCardinalDirections(t *testing.T) {
	testCases := []struct {
		name string
		lat  float64
		lon  float64
		want float64
	}{
		{"north", 0.001, 0, 0},
		{"east", 0, 0.001, 90},
		{"south", -0.001, 0, 180},
		{"west", 0, -0.001, 270},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := BearingTo(0, 0, tt.lat, tt.lon)
			if AngularDeviation(got, tt.want) > 0.01 {
				t.Errorf("BearingTo(0,0,%v,%v) = %v, want %v", tt.lat, tt.lon, got, tt.want)
			}
		})
	}
}

func TestPointAlongLineStaysOnSegment(t *testing.T) {
	a := NewCoordinate(0, 0)
	b := NewCoordinate(0, 0.001) // ~111m east

	p := PointAlongLine(a, b, 5)

	if p.Lon <= a.Lon || p.Lon >= b.Lon {
		t.Errorf("sample point %v not between %v and %v", p, a, b)
	}
	if math.Abs(p.Lat) > 1e-9 {
		t.Errorf("sample point drifted off the parallel: %v", p)
	}

	// asking for more than the segment length clamps to the far end
	far := PointAlongLine(a, b, 1000)
	if far != b {
		t.Errorf("PointAlongLine past the end = %v, want %v", far, b)
	}
}
