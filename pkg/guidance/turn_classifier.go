package guidance

import (
	"github.com/lintang-b-s/roadroute/pkg/geo"
	"github.com/lintang-b-s/roadroute/pkg/util"
)

type TurnClassifier struct {
	sharpTurnThreshold float64
	turnThreshold      float64
}

func NewTurnClassifier(cfg util.TurnConfig) *TurnClassifier {
	return &TurnClassifier{
		sharpTurnThreshold: cfg.SharpTurnThreshold,
		turnThreshold:      cfg.TurnThreshold,
	}
}

/*
Classify. one turn label per waypoint of the route polyline.

The first waypoint is labeled TURN (the vehicle is not moving yet, so it does not matter)
and the last one DESTINATION. Interior waypoint i is classified by the bearing change
between (i-1 -> i) and (i -> i+1):

	angle > sharp turn threshold  -> SHARP_TURN
	angle > turn threshold        -> TURN
	otherwise                     -> STRAIGHT

Turns below the turn threshold (25° by default) do not need a slow down.
*/
func (tc *TurnClassifier) Classify(path []geo.Coordinate) []TurnLabel {
	n := len(path)
	if n == 0 {
		return []TurnLabel{}
	}
	labels := make([]TurnLabel, n)
	if n == 1 {
		labels[0] = DESTINATION
		return labels
	}

	labels[0] = TURN
	for i := 1; i < n-1; i++ {
		labels[i] = tc.classifyAngle(turnAngle(path[i-1], path[i], path[i+1]))
	}
	labels[n-1] = DESTINATION
	return labels
}

// Angles. bearing change in degrees [0, 180] at every waypoint, 0 at the first and last one.
func (tc *TurnClassifier) Angles(path []geo.Coordinate) []float64 {
	angles := make([]float64, len(path))
	for i := 1; i < len(path)-1; i++ {
		angles[i] = turnAngle(path[i-1], path[i], path[i+1])
	}
	return angles
}

func (tc *TurnClassifier) classifyAngle(angle float64) TurnLabel {
	if angle > tc.sharpTurnThreshold {
		return SHARP_TURN
	} else if angle > tc.turnThreshold {
		return TURN
	}
	return STRAIGHT
}

// turnAngle. bearing change at cur, coming from prev and heading to next.
func turnAngle(prev, cur, next geo.Coordinate) float64 {
	bearingIn, _ := geo.QuickBearingDistance(prev, cur)
	bearingOut, _ := geo.QuickBearingDistance(cur, next)
	return geo.AngleBetween(bearingIn, bearingOut)
}
