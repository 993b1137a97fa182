package geo

import (
	"fmt"
	"math"

	"github.com/lintang-b-s/roadroute/pkg/util"
)

type Coordinate struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%s, %s)", util.FormatFloat(c.Lat), util.FormatFloat(c.Lon))
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

/*
Matcher. endpoint equality used by the route assembler.

Two coordinates match when they are exactly equal, when both round to the same value at
Precision decimal places, or when lat and lon each differ by at most half a unit of the
last kept decimal. The search library and the edge geometry come from different float
pipelines, so shared endpoints may differ in the last few digits, also across a rounding
boundary.
*/
type Matcher struct {
	Precision uint
}

func NewMatcher(precision int) Matcher {
	if precision < 0 {
		precision = 0
	}
	return Matcher{Precision: uint(precision)}
}

func (m Matcher) Round(c Coordinate) Coordinate {
	return NewCoordinate(util.RoundFloat(c.Lat, m.Precision), util.RoundFloat(c.Lon, m.Precision))
}

// Epsilon. largest per axis difference still matched without equal rounding.
func (m Matcher) Epsilon() float64 {
	return 0.5 * math.Pow(10, -float64(m.Precision))
}

func (m Matcher) Match(a, b Coordinate) bool {
	if a == b || m.Round(a) == m.Round(b) {
		return true
	}
	eps := m.Epsilon()
	return math.Abs(a.Lat-b.Lat) <= eps && math.Abs(a.Lon-b.Lon) <= eps
}

// Exact reports whether a and b match without rounding.
func (m Matcher) Exact(a, b Coordinate) bool {
	return a == b
}
