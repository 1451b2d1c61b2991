package geo

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

const earthRadiusMeter = 6371000.0

/*
PointAlongLine. get the coordinate `meters` along the geodesic from a to b.
used to sample a stable bearing a few meters into an edge, so that very
short first segments don't produce noisy intersection angles.
*/
func PointAlongLine(a, b Coordinate, meters float64) Coordinate {
	aS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(a.Lat, a.Lon))
	bS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(b.Lat, b.Lon))

	total := aS2.Distance(bS2)
	if total == 0 {
		return b
	}

	want := s1.Angle(meters / earthRadiusMeter)
	if want >= total {
		return b
	}

	p := s2.InterpolateAtDistance(want, aS2, bS2)
	ll := s2.LatLngFromPoint(p)
	return NewCoordinate(ll.Lat.Degrees(), ll.Lng.Degrees())
}
