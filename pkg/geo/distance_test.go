package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolylineLength(t *testing.T) {
	path := []Coordinate{
		NewCoordinate(0, 0),
		NewCoordinate(0, 1),
		NewCoordinate(1, 1),
	}
	want := Distance(path[0], path[1]) + Distance(path[1], path[2])
	assert.InDelta(t, want, PolylineLength(path), 1e-6)
	// one degree on the equator is about 111.19 km
	assert.InDelta(t, 111195.0, Distance(path[0], path[1]), 10)
}

func TestPolylineLengthDegenerate(t *testing.T) {
	assert.Equal(t, 0.0, PolylineLength(nil))
	assert.Equal(t, 0.0, PolylineLength([]Coordinate{NewCoordinate(3, 4)}))
}

func TestPolylineRoundTrip(t *testing.T) {
	path := []Coordinate{
		NewCoordinate(38.5, -120.2),
		NewCoordinate(40.7, -120.95),
		NewCoordinate(43.252, -126.453),
	}
	encoded := PolylineFromCoords(path)
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", encoded)

	decoded, err := CoordsFromPolyline(encoded)
	assert.NoError(t, err)
	assert.Len(t, decoded, len(path))
	for i := range path {
		assert.InDelta(t, path[i].Lat, decoded[i].Lat, 1e-5)
		assert.InDelta(t, path[i].Lon, decoded[i].Lon, 1e-5)
	}
}
