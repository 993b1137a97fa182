package guidance

import (
	"fmt"
)

// TurnLabel. how much a vehicle has to slow down at a waypoint.
type TurnLabel uint8

const (
	STRAIGHT TurnLabel = iota
	TURN
	SHARP_TURN
	// last waypoint of the route, the vehicle slows down to stop at the destination
	DESTINATION
)

func (l TurnLabel) String() string {
	switch l {
	case STRAIGHT:
		return "straight"
	case TURN:
		return "turn"
	case SHARP_TURN:
		return "sharpturn"
	case DESTINATION:
		return "destination"
	default:
		return fmt.Sprintf("TurnLabel(%d)", uint8(l))
	}
}

// IsTurn. the vehicle has to reduce its speed at this waypoint.
func (l TurnLabel) IsTurn() bool {
	return l == TURN || l == SHARP_TURN || l == DESTINATION
}

func (l TurnLabel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *TurnLabel) UnmarshalText(text []byte) error {
	switch string(text) {
	case "straight":
		*l = STRAIGHT
	case "turn":
		*l = TURN
	case "sharpturn":
		*l = SHARP_TURN
	case "destination":
		*l = DESTINATION
	default:
		return fmt.Errorf("unknown turn label %q", string(text))
	}
	return nil
}
