package roadroute

import (
	"fmt"

	"github.com/lintang-b-s/roadroute/pkg/datastructure"
	"github.com/lintang-b-s/roadroute/pkg/geo"
	"github.com/lintang-b-s/roadroute/pkg/util"
	"go.uber.org/zap"
)

/*
Assembler. turns a shortest path search result into one continuous, consistently directed
list of path segments plus the speed limit of every point of the merged polyline.

A route is made of an optional partial first edge (begin), the full edges between the
traversed nodes and an optional partial last edge (end). The partial pieces come from the
search library and the full edges from the road network, so the partial pieces may point
the wrong way or differ from the shared node in the last decimals. Assemble repairs both.
*/
type Assembler struct {
	lookup  EdgeLookup
	cfg     util.RouteConfig
	matcher geo.Matcher
	log     *zap.Logger
}

func NewAssembler(lookup EdgeLookup, cfg util.RouteConfig, log *zap.Logger) *Assembler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Assembler{
		lookup:  lookup,
		cfg:     cfg,
		matcher: geo.NewMatcher(cfg.CoordinatePrecision),
		log:     log,
	}
}

func (a *Assembler) Matcher() geo.Matcher {
	return a.matcher
}

/*
Assemble. build the route from origin to destination out of res.

origin and destination are only used to name the route in errors. The returned route
satisfies len(SpeedLimits) == len(Polyline()) and every pair of adjacent segments shares
its boundary point. An *AlignmentError is returned, and no route, when two pieces do not
share an endpoint even after rounding.
*/
func (a *Assembler) Assemble(origin, destination geo.Coordinate,
	res datastructure.SearchResult) (*datastructure.AssembledRoute, error) {
	var (
		route       = make([]datastructure.PathSegment, 0, len(res.Nodes)+2)
		speedLimits = make([]float64, 0)
		defSpeed    = a.cfg.DefaultSpeedLimit
	)

	begin, hasBegin := res.Begin.Get()
	if hasBegin {
		route = append(route, begin)
		// the vehicle starts on the first point, its speed limit is only a placeholder
		speedLimits = util.Repeat(speedLimits, defSpeed, begin.Len())
	} else {
		speedLimits = append(speedLimits, defSpeed)
	}

	// fewer than two nodes means no full edge was traversed (very short trips), not an error
	for _, pair := range res.Edges() {
		edge, err := a.lookup.Edge(pair.U, pair.V)
		if err != nil {
			return nil, fmt.Errorf("edge %v in route from %v to %v: %w", pair, origin, destination, err)
		}

		speed, ok := edge.Speed(a.cfg.SpeedAttribute, defSpeed)
		if !ok {
			a.log.Debug("edge without speed attribute, using default speed",
				zap.Int64("u", pair.U), zap.Int64("v", pair.V),
				zap.String("attribute", a.cfg.SpeedAttribute), zap.Float64("speed", defSpeed))
		}

		if geom, ok := edge.Geometry.Get(); ok {
			geom = a.orientEdgeGeometry(geom, edge)
			route = append(route, geom)
			// first point is shared with the previous segment
			speedLimits = util.Repeat(speedLimits, speed, geom.Len()-1)
		} else {
			route = append(route, datastructure.NewStraightSegment(edge.From, edge.To))
			speedLimits = append(speedLimits, speed)
		}
	}

	if hasBegin && len(route) > 1 {
		next := route[1].First()
		switch {
		case a.matcher.Match(next, begin.Last()):
		case a.matcher.Match(next, begin.First()):
			a.log.Debug("reversing begin segment", zap.Stringer("origin", origin),
				zap.Stringer("destination", destination))
			route[0] = begin.Reverse()
		default:
			return nil, &AlignmentError{
				Stage:       STAGE_BEGIN,
				Route:       []geo.Coordinate{begin.First(), begin.Last()},
				Segment:     []geo.Coordinate{next},
				Origin:      origin,
				Destination: destination,
			}
		}
	}

	if end, ok := res.End.Get(); ok {
		var err error
		route, err = a.appendEnd(route, end, origin, destination)
		if err != nil {
			return nil, err
		}
		speedLimits = util.Repeat(speedLimits, defSpeed, end.Len()-1)
	}

	assembled := datastructure.NewAssembledRoute(route, speedLimits, res.Cost)
	if len(route) == 0 {
		assembled.SpeedLimits = []float64{}
		return assembled, nil
	}

	if i := assembled.Discontinuity(a.matcher); i >= 0 {
		return nil, &AlignmentError{
			Stage:       STAGE_INTERIOR,
			Route:       []geo.Coordinate{route[i].Last()},
			Segment:     []geo.Coordinate{route[i+1].First()},
			Origin:      origin,
			Destination: destination,
		}
	}

	return assembled, nil
}

/*
appendEnd. append the partial last edge so that it continues the route.

The end piece is reversed when its last point touches the route. When the route is a
single piece (no full edge between begin and end) that piece itself may be the one facing
the wrong way, then it is reversed too.
*/
func (a *Assembler) appendEnd(route []datastructure.PathSegment, end datastructure.PathSegment,
	origin, destination geo.Coordinate) ([]datastructure.PathSegment, error) {
	if len(route) == 0 {
		return append(route, end), nil
	}

	last := route[len(route)-1].Last()
	switch {
	case a.matcher.Match(last, end.First()):
		return append(route, a.snapFirst(end, last)), nil
	case a.matcher.Match(last, end.Last()):
		a.log.Debug("reversing end segment", zap.Stringer("origin", origin),
			zap.Stringer("destination", destination))
		return append(route, a.snapFirst(end.Reverse(), last)), nil
	}

	tried := []geo.Coordinate{last}
	if len(route) == 1 {
		first := route[0].First()
		tried = append(tried, first)

		var appended datastructure.PathSegment
		switch {
		case a.matcher.Match(first, end.First()):
			appended = a.snapFirst(end, first)
		case a.matcher.Match(first, end.Last()):
			appended = a.snapFirst(end.Reverse(), first)
		default:
			return nil, a.endAlignmentError(tried, end, origin, destination)
		}

		a.log.Debug("reversing sole segment before end segment", zap.Stringer("origin", origin),
			zap.Stringer("destination", destination))
		route[0] = route[0].Reverse()
		return append(route, appended), nil
	}

	return nil, a.endAlignmentError(tried, end, origin, destination)
}

func (a *Assembler) endAlignmentError(tried []geo.Coordinate, end datastructure.PathSegment,
	origin, destination geo.Coordinate) error {
	return &AlignmentError{
		Stage:       STAGE_END,
		Route:       tried,
		Segment:     []geo.Coordinate{end.First(), end.Last()},
		Origin:      origin,
		Destination: destination,
	}
}

/*
snapFirst. seg's first point matched anchor only within tolerance: replace it by its rounded
value. When the two round differently (drift across a rounding boundary) it takes the
anchor itself, so the shared point is identical on both sides.
*/
func (a *Assembler) snapFirst(seg datastructure.PathSegment, anchor geo.Coordinate) datastructure.PathSegment {
	if a.matcher.Exact(seg.First(), anchor) {
		return seg
	}
	snapped := a.matcher.Round(seg.First())
	if snapped != a.matcher.Round(anchor) {
		snapped = anchor
	}
	a.log.Debug("snapping end segment to rounded coordinate",
		zap.Stringer("from", seg.First()), zap.Stringer("to", snapped), zap.Stringer("route", anchor))
	return seg.WithFirst(snapped)
}

// orientEdgeGeometry. embedded edge geometry stored from v to u is flipped to run from u to v.
func (a *Assembler) orientEdgeGeometry(geom datastructure.PathSegment, edge datastructure.EdgeInfo) datastructure.PathSegment {
	if !a.matcher.Match(geom.First(), edge.From) && a.matcher.Match(geom.Last(), edge.From) {
		return geom.Reverse()
	}
	return geom
}
