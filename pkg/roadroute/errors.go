package roadroute

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lintang-b-s/roadroute/pkg/geo"
)

var (
	ErrAlignment    = errors.New("taxicab alignment error")
	ErrEdgeNotFound = errors.New("edge not found")
)

type AlignmentStage string

const (
	STAGE_BEGIN    AlignmentStage = "beginning"
	STAGE_END      AlignmentStage = "final"
	STAGE_INTERIOR AlignmentStage = "interior"
)

/*
AlignmentError. two consecutive pieces of the route do not share an endpoint, even after
rounding. The search result and the edge geometry disagree on connectivity, so the route
request for this origin/destination pair has to be aborted.
*/
type AlignmentError struct {
	Stage       AlignmentStage
	Route       []geo.Coordinate // endpoints of the route built so far that were tried
	Segment     []geo.Coordinate // endpoints of the segment that did not fit
	Origin      geo.Coordinate
	Destination geo.Coordinate
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("%v: coordinates of %s LineString do not align in route from %v to %v: route endpoints %s, segment endpoints %s",
		ErrAlignment, e.Stage, e.Origin, e.Destination, joinCoords(e.Route), joinCoords(e.Segment))
}

func (e *AlignmentError) Unwrap() error {
	return ErrAlignment
}

func joinCoords(coords []geo.Coordinate) string {
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
