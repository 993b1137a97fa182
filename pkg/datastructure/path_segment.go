package datastructure

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lintang-b-s/roadroute/pkg/geo"
	"github.com/lintang-b-s/roadroute/pkg/util"
	"github.com/paulmach/orb"
)

var ErrEmptySegment = errors.New("path segment must contain at least one coordinate")

/*
PathSegment. one contiguous stretch of road geometry, either a full graph edge or a
partial edge at the start/end of a route.

The geometry is an orb.LineString, so points are stored as (lon, lat). A PathSegment is
never empty and never modified after construction: Reverse, WithFirst and WithLast return
new segments.
*/
type PathSegment struct {
	line orb.LineString
}

func NewPathSegment(coords []geo.Coordinate) (PathSegment, error) {
	if len(coords) == 0 {
		return PathSegment{}, ErrEmptySegment
	}
	line := make(orb.LineString, len(coords))
	for i, c := range coords {
		line[i] = orb.Point{c.Lon, c.Lat}
	}
	return PathSegment{line: line}, nil
}

// MustPathSegment. like NewPathSegment but panics on empty input.
func MustPathSegment(coords ...geo.Coordinate) PathSegment {
	seg, err := NewPathSegment(coords)
	if err != nil {
		panic(err)
	}
	return seg
}

// NewStraightSegment. two point segment between the endpoints of an edge without embedded geometry.
func NewStraightSegment(from, to geo.Coordinate) PathSegment {
	return MustPathSegment(from, to)
}

func pointToCoord(p orb.Point) geo.Coordinate {
	return geo.NewCoordinate(p.Lat(), p.Lon())
}

func (s PathSegment) Len() int {
	return len(s.line)
}

func (s PathSegment) At(i int) geo.Coordinate {
	return pointToCoord(s.line[i])
}

func (s PathSegment) First() geo.Coordinate {
	return s.At(0)
}

func (s PathSegment) Last() geo.Coordinate {
	return s.At(len(s.line) - 1)
}

func (s PathSegment) Coordinates() []geo.Coordinate {
	coords := make([]geo.Coordinate, len(s.line))
	for i, p := range s.line {
		coords[i] = pointToCoord(p)
	}
	return coords
}

// LineString. copy of the underlying geometry.
func (s PathSegment) LineString() orb.LineString {
	return s.line.Clone()
}

// Reverse. new segment with the coordinates in reverse order.
func (s PathSegment) Reverse() PathSegment {
	return PathSegment{line: util.ReverseG(s.line)}
}

func (s PathSegment) WithFirst(c geo.Coordinate) PathSegment {
	line := s.line.Clone()
	line[0] = orb.Point{c.Lon, c.Lat}
	return PathSegment{line: line}
}

func (s PathSegment) WithLast(c geo.Coordinate) PathSegment {
	line := s.line.Clone()
	line[len(line)-1] = orb.Point{c.Lon, c.Lat}
	return PathSegment{line: line}
}

func (s PathSegment) Equal(other PathSegment) bool {
	return s.line.Equal(other.line)
}

func (s PathSegment) String() string {
	return fmt.Sprintf("%v", s.Coordinates())
}

// MarshalJSON. [[lat, lon], ...]
func (s PathSegment) MarshalJSON() ([]byte, error) {
	pairs := make([][2]float64, len(s.line))
	for i, p := range s.line {
		pairs[i] = [2]float64{p.Lat(), p.Lon()}
	}
	return json.Marshal(pairs)
}

func (s *PathSegment) UnmarshalJSON(data []byte) error {
	var pairs [][2]float64
	if err := json.Unmarshal(data, &pairs); err != nil {
		return fmt.Errorf("path segment: %w", err)
	}
	coords := make([]geo.Coordinate, len(pairs))
	for i, p := range pairs {
		coords[i] = geo.NewCoordinate(p[0], p[1])
	}
	seg, err := NewPathSegment(coords)
	if err != nil {
		return err
	}
	*s = seg
	return nil
}
