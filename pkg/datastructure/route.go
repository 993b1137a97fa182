package datastructure

import (
	"encoding/json"

	"github.com/lintang-b-s/roadroute/pkg/geo"
	"github.com/paulmach/orb"
)

/*
AssembledRoute. ordered path segments of one route, the speed limit of every merged
polyline point and the passthrough cost data of the search.

Adjacent segments share their boundary point: the last coordinate of segment i equals the
first coordinate of segment i+1 (exactly or after rounding). SpeedLimits[k] is the cruise
speed limit leading up to Polyline()[k].
*/
type AssembledRoute struct {
	Segments    []PathSegment
	SpeedLimits []float64
	Cost        json.RawMessage
}

func NewAssembledRoute(segments []PathSegment, speedLimits []float64, cost json.RawMessage) *AssembledRoute {
	return &AssembledRoute{
		Segments:    segments,
		SpeedLimits: speedLimits,
		Cost:        cost,
	}
}

// Polyline. segments merged into one coordinate list, boundary points kept once.
func (r *AssembledRoute) Polyline() []geo.Coordinate {
	coords := make([]geo.Coordinate, 0, r.NumPoints())
	for i, seg := range r.Segments {
		segCoords := seg.Coordinates()
		if i > 0 {
			segCoords = segCoords[1:]
		}
		coords = append(coords, segCoords...)
	}
	return coords
}

// NumPoints. number of coordinates of the merged polyline.
func (r *AssembledRoute) NumPoints() int {
	n := 0
	for i, seg := range r.Segments {
		if i == 0 {
			n += seg.Len()
		} else {
			n += seg.Len() - 1
		}
	}
	return n
}

// Discontinuity. index i of the first pair (i, i+1) whose shared endpoint does not match, -1 if continuous.
func (r *AssembledRoute) Discontinuity(m geo.Matcher) int {
	for i := 0; i+1 < len(r.Segments); i++ {
		if !m.Match(r.Segments[i].Last(), r.Segments[i+1].First()) {
			return i
		}
	}
	return -1
}

// LineString. merged polyline as an orb geometry (lon, lat).
func (r *AssembledRoute) LineString() orb.LineString {
	coords := r.Polyline()
	ls := make(orb.LineString, len(coords))
	for i, c := range coords {
		ls[i] = orb.Point{c.Lon, c.Lat}
	}
	return ls
}
