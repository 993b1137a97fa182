package scenario

import (
	"strings"

	"github.com/lintang-b-s/roadroute/pkg/util"
)

type WaypointType string

const (
	TURNSPD WaypointType = "TURNSPD"
	FLYBY   WaypointType = "FLYBY"
)

// WaypointCommand. one waypoint of an ADDTDWAYPOINTS command.
type WaypointCommand struct {
	Lat       float64      `json:"lat"`
	Lon       float64      `json:"lon"`
	Alt       float64      `json:"alt"`
	Speed     float64      `json:"speed"`
	Type      WaypointType `json:"type"`
	TurnSpeed float64      `json:"turn_speed"` // ignored by the simulator for FLYBY waypoints
}

// writeTo. ",lat,lon,alt,spd,type,turnspd"
func (w WaypointCommand) writeTo(sb *strings.Builder) {
	sb.WriteByte(',')
	sb.WriteString(util.FormatFloat(w.Lat))
	sb.WriteByte(',')
	sb.WriteString(util.FormatFloat(w.Lon))
	sb.WriteByte(',')
	sb.WriteString(util.FormatFloat(w.Alt))
	sb.WriteByte(',')
	sb.WriteString(util.FormatFloat(w.Speed))
	sb.WriteByte(',')
	sb.WriteString(string(w.Type))
	sb.WriteByte(',')
	sb.WriteString(util.FormatFloat(w.TurnSpeed))
}
