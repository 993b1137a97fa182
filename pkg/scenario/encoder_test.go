package scenario

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lintang-b-s/roadroute/pkg/geo"
	"github.com/lintang-b-s/roadroute/pkg/guidance"
	"github.com/lintang-b-s/roadroute/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEncoder() *Encoder {
	return NewEncoder(util.DefaultConfig().Scenario)
}

func TestEncode(t *testing.T) {
	path := []geo.Coordinate{
		geo.NewCoordinate(42.876466914460224, -78.78590820757644),
		geo.NewCoordinate(42.8770, -78.7860),
		geo.NewCoordinate(42.8775, -78.7870),
		geo.NewCoordinate(42.8840926, -78.7405278),
	}
	labels := []guidance.TurnLabel{guidance.TURN, guidance.STRAIGHT, guidance.SHARP_TURN, guidance.DESTINATION}
	speeds := []float64{26.07, 26.07, 21.6, 26.07}

	got, err := newTestEncoder().Encode("TRUCK1", path, labels, speeds)
	require.NoError(t, err)

	want := "ADDTDWAYPOINTS TRUCK1" +
		",42.876466914460224,-78.78590820757644,0,26.07,TURNSPD,10" +
		",42.877,-78.786,0,26.07,FLYBY,10" +
		",42.8775,-78.787,0,21.6,TURNSPD,5" +
		",42.8840926,-78.7405278,0,26.07,TURNSPD,10"
	assert.Equal(t, want, got)
	assert.NotContains(t, got, "\n")
}

func TestEncodeUsesConfiguredSpeedsAndAltitude(t *testing.T) {
	enc := NewEncoder(util.ScenarioConfig{TurnSpeed: 12.5, SharpTurnSpeed: 4, CruiseAltitude: 30})
	got, err := enc.Encode("D1",
		[]geo.Coordinate{geo.NewCoordinate(0, 0), geo.NewCoordinate(0, 1), geo.NewCoordinate(1, 1)},
		[]guidance.TurnLabel{guidance.TURN, guidance.SHARP_TURN, guidance.DESTINATION},
		[]float64{20, 20, 15})
	require.NoError(t, err)
	assert.Equal(t, "ADDTDWAYPOINTS D1,0,0,30,20,TURNSPD,12.5,0,1,30,20,TURNSPD,4,1,1,30,15,TURNSPD,12.5", got)
}

func TestEncodeIsDeterministic(t *testing.T) {
	path := []geo.Coordinate{geo.NewCoordinate(0.1, 0.2), geo.NewCoordinate(0.3, 0.4)}
	labels := []guidance.TurnLabel{guidance.TURN, guidance.DESTINATION}
	speeds := []float64{26.07, 1.0 / 3.0}

	enc := newTestEncoder()
	first, err := enc.Encode("V", path, labels, speeds)
	require.NoError(t, err)
	second, err := enc.Encode("V", path, labels, speeds)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "0.3333333333333333")
}

func TestEncodeLengthMismatch(t *testing.T) {
	testCases := []struct {
		name   string
		path   []geo.Coordinate
		labels []guidance.TurnLabel
		speeds []float64
	}{
		{
			name:   "missing label",
			path:   []geo.Coordinate{geo.NewCoordinate(0, 0), geo.NewCoordinate(0, 1)},
			labels: []guidance.TurnLabel{guidance.TURN},
			speeds: []float64{1, 2},
		},
		{
			name:   "extra speed limit",
			path:   []geo.Coordinate{geo.NewCoordinate(0, 0), geo.NewCoordinate(0, 1)},
			labels: []guidance.TurnLabel{guidance.TURN, guidance.DESTINATION},
			speeds: []float64{1, 2, 3},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newTestEncoder().Encode("V", tt.path, tt.labels, tt.speeds)
			assert.Empty(t, got)
			require.ErrorIs(t, err, ErrLengthMismatch)

			var lenErr *LengthMismatchError
			require.True(t, errors.As(err, &lenErr))
			assert.Equal(t, len(tt.path), lenErr.Coordinates)
			assert.Equal(t, len(tt.labels), lenErr.Labels)
			assert.Equal(t, len(tt.speeds), lenErr.SpeedLimits)
		})
	}
}

func TestEncodeEmptyRoute(t *testing.T) {
	got, err := newTestEncoder().Encode("V", nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "ADDTDWAYPOINTS V", got)
}

func TestValidateVehicleID(t *testing.T) {
	assert.NoError(t, ValidateVehicleID("TRUCK_01"))
	for _, id := range []string{"", "A,B", "A B", "A\tB"} {
		assert.ErrorIs(t, ValidateVehicleID(id), ErrInvalidVehicleID, id)
	}
}

func TestWaypoints(t *testing.T) {
	wps, err := newTestEncoder().Waypoints(
		[]geo.Coordinate{geo.NewCoordinate(0, 0), geo.NewCoordinate(0, 1), geo.NewCoordinate(0, 2)},
		[]guidance.TurnLabel{guidance.TURN, guidance.STRAIGHT, guidance.DESTINATION},
		[]float64{26.07, 20, 26.07})
	require.NoError(t, err)

	assert.Equal(t, []WaypointType{TURNSPD, FLYBY, TURNSPD}, []WaypointType{wps[0].Type, wps[1].Type, wps[2].Type})
	assert.Equal(t, 20.0, wps[1].Speed)
	assert.Equal(t, 10.0, wps[1].TurnSpeed)
}

func TestWriteScenarioFile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteScenarioFile(&buf, []string{"ADDTDWAYPOINTS A,0,0,0,1,FLYBY,10", "ADDTDWAYPOINTS B"}))
	assert.Equal(t, "00:00:00.00>ADDTDWAYPOINTS A,0,0,0,1,FLYBY,10\n00:00:00.00>ADDTDWAYPOINTS B\n", buf.String())
}
