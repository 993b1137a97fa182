package scenario

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/lintang-b-s/roadroute/pkg/geo"
	"github.com/lintang-b-s/roadroute/pkg/guidance"
	"github.com/lintang-b-s/roadroute/pkg/util"
)

const (
	COMMAND_KEYWORD = "ADDTDWAYPOINTS"
	// every command of a scenario file runs at simulation start
	SCENARIO_TIME_PREFIX = "00:00:00.00>"
)

/*
Encoder. builds the ADDTDWAYPOINTS command of a road route:

	ADDTDWAYPOINTS <id>,<lat>,<lon>,<alt>,<spd>,<TURNSPD|FLYBY>,<turnspd>,<lat>,...

Waypoints labeled as a turn become TURNSPD waypoints flown at the turn speed (the sharp
turn speed for sharp turns); all others are FLYBY.
*/
type Encoder struct {
	turnSpeed      float64
	sharpTurnSpeed float64
	cruiseAltitude float64
}

func NewEncoder(cfg util.ScenarioConfig) *Encoder {
	return &Encoder{
		turnSpeed:      cfg.TurnSpeed,
		sharpTurnSpeed: cfg.SharpTurnSpeed,
		cruiseAltitude: cfg.CruiseAltitude,
	}
}

// Waypoints. one command per waypoint, in route order.
func (e *Encoder) Waypoints(path []geo.Coordinate, labels []guidance.TurnLabel,
	speedLimits []float64) ([]WaypointCommand, error) {
	if len(path) != len(labels) || len(path) != len(speedLimits) {
		return nil, &LengthMismatchError{
			Coordinates: len(path),
			Labels:      len(labels),
			SpeedLimits: len(speedLimits),
		}
	}

	wps := make([]WaypointCommand, len(path))
	for i, p := range path {
		wp := WaypointCommand{
			Lat:       p.Lat,
			Lon:       p.Lon,
			Alt:       e.cruiseAltitude,
			Speed:     speedLimits[i],
			Type:      FLYBY,
			TurnSpeed: e.turnSpeed,
		}
		if labels[i].IsTurn() {
			wp.Type = TURNSPD
			if labels[i] == guidance.SHARP_TURN {
				wp.TurnSpeed = e.sharpTurnSpeed
			}
		}
		wps[i] = wp
	}
	return wps, nil
}

// Encode. single line command text, no trailing newline.
func (e *Encoder) Encode(vehicleID string, path []geo.Coordinate, labels []guidance.TurnLabel,
	speedLimits []float64) (string, error) {
	if err := ValidateVehicleID(vehicleID); err != nil {
		return "", err
	}
	wps, err := e.Waypoints(path, labels, speedLimits)
	if err != nil {
		return "", err
	}
	return EncodeWaypoints(vehicleID, wps), nil
}

func EncodeWaypoints(vehicleID string, wps []WaypointCommand) string {
	var sb strings.Builder
	sb.Grow(len(COMMAND_KEYWORD) + len(vehicleID) + 1 + len(wps)*64)
	sb.WriteString(COMMAND_KEYWORD)
	sb.WriteByte(' ')
	sb.WriteString(vehicleID)
	for _, wp := range wps {
		wp.writeTo(&sb)
	}
	return sb.String()
}

// ValidateVehicleID. the id is a single command argument: non empty, no commas, no whitespace.
func ValidateVehicleID(vehicleID string) error {
	if vehicleID == "" {
		return fmt.Errorf("%w: empty", ErrInvalidVehicleID)
	}
	for _, r := range vehicleID {
		if r == ',' || unicode.IsSpace(r) {
			return fmt.Errorf("%w: %q contains a separator", ErrInvalidVehicleID, vehicleID)
		}
	}
	return nil
}

// WriteScenarioFile. one timestamped command per line.
func WriteScenarioFile(w io.Writer, commands []string) error {
	bw := bufio.NewWriter(w)
	for _, cmd := range commands {
		if _, err := bw.WriteString(SCENARIO_TIME_PREFIX + cmd + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
