package datastructure

import (
	"github.com/lintang-b-s/roadroute/pkg/geo"
	"github.com/lintang-b-s/roadroute/pkg/util"
	"github.com/paulmach/osm"
)

// EdgeInfo. attributes of one traversed edge (u, v) as reported by the road network.
type EdgeInfo struct {
	From     geo.Coordinate
	To       geo.Coordinate
	Geometry OptionalSegment // embedded curved geometry, absent for straight edges
	Tags     osm.Tags
}

func NewEdgeInfo(from, to geo.Coordinate, geometry OptionalSegment, tags osm.Tags) EdgeInfo {
	return EdgeInfo{
		From:     from,
		To:       to,
		Geometry: geometry,
		Tags:     tags,
	}
}

// Speed. value of the speed tag attr, def when the tag is missing or not a number.
func (e EdgeInfo) Speed(attr string, def float64) (float64, bool) {
	raw := e.Tags.Find(attr)
	if raw == "" {
		return def, false
	}
	speed, err := util.StringToFloat64(raw)
	if err != nil {
		return def, false
	}
	return speed, true
}

// Reverse. the same edge traversed from To to From.
func (e EdgeInfo) Reverse() EdgeInfo {
	geom := e.Geometry
	if seg, ok := geom.Get(); ok {
		geom = PresentSegment(seg.Reverse())
	}
	return EdgeInfo{
		From:     e.To,
		To:       e.From,
		Geometry: geom,
		Tags:     e.Tags,
	}
}
