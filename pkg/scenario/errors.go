package scenario

import (
	"errors"
	"fmt"
)

var (
	ErrLengthMismatch   = errors.New("waypoint arrays have different lengths")
	ErrInvalidVehicleID = errors.New("invalid vehicle id")
)

// LengthMismatchError. polyline, turn labels and speed limits are not aligned, an upstream assembly bug.
type LengthMismatchError struct {
	Coordinates int
	Labels      int
	SpeedLimits int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%v: %d coordinates, %d turn labels, %d speed limits",
		ErrLengthMismatch, e.Coordinates, e.Labels, e.SpeedLimits)
}

func (e *LengthMismatchError) Unwrap() error {
	return ErrLengthMismatch
}
