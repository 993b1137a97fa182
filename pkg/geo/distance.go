package geo

import (
	"github.com/golang/geo/s2"
)

func toLatLng(c Coordinate) s2.LatLng {
	return s2.LatLngFromDegrees(c.Lat, c.Lon)
}

// Distance. great circle distance in meter.
func Distance(a, b Coordinate) float64 {
	return toLatLng(a).Distance(toLatLng(b)).Radians() * earthRadiusM
}

// PolylineLength. great circle length of the polyline in meter.
func PolylineLength(coords []Coordinate) float64 {
	if len(coords) < 2 {
		return 0
	}
	latLngs := make([]s2.LatLng, len(coords))
	for i, c := range coords {
		latLngs[i] = toLatLng(c)
	}
	pl := s2.PolylineFromLatLngs(latLngs)
	return pl.Length().Radians() * earthRadiusM
}
