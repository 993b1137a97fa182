package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	da "github.com/lintang-b-s/roadroute/pkg/datastructure"
	"github.com/lintang-b-s/roadroute/pkg/geo"
	"github.com/lintang-b-s/roadroute/pkg/guidance"
	"github.com/lintang-b-s/roadroute/pkg/network"
	"github.com/lintang-b-s/roadroute/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testNetwork = `{
  "nodes": [
    {"id": 1, "lat": 42.8800, "lon": -78.8700},
    {"id": 2, "lat": 42.8800, "lon": -78.8690},
    {"id": 3, "lat": 42.8810, "lon": -78.8690}
  ],
  "edges": [
    {"u": 1, "v": 2, "tags": {"maxspeed_kts": "20"}},
    {"u": 2, "v": 3, "geometry": [[42.8800, -78.8690], [42.8805, -78.8689], [42.8810, -78.8690]], "tags": {"maxspeed_kts": "15"}}
  ]
}`

func newTestService(t *testing.T) *ScenarioService {
	t.Helper()
	store, err := network.Decode(strings.NewReader(testNetwork))
	require.NoError(t, err)
	ss, err := NewScenarioService(zap.NewNop(), store, util.DefaultConfig(), 16, 4)
	require.NoError(t, err)
	return ss
}

func testRequest(vehicleID string) RouteRequest {
	return RouteRequest{
		VehicleID:   vehicleID,
		Origin:      geo.NewCoordinate(42.8800, -78.8705),
		Destination: geo.NewCoordinate(42.8815, -78.8690),
		SearchResult: da.NewSearchResult([]int64{1, 2, 3},
			da.PresentSegment(da.MustPathSegment(geo.NewCoordinate(42.8800, -78.8705), geo.NewCoordinate(42.8800, -78.8700))),
			da.PresentSegment(da.MustPathSegment(geo.NewCoordinate(42.8810, -78.8690), geo.NewCoordinate(42.8815, -78.8690))),
			json.RawMessage(`{"travel_time":42.5}`)),
	}
}

func TestBuild(t *testing.T) {
	ss := newTestService(t)

	s, err := ss.Build(context.Background(), testRequest("TRUCK1"))
	require.NoError(t, err)

	assert.Len(t, s.Polyline, 6)
	assert.Equal(t, []float64{26.07, 26.07, 20, 15, 15, 26.07}, s.SpeedLimits)
	assert.Len(t, s.Turns, 6)
	assert.Equal(t, guidance.TURN, s.Turns[0])
	assert.Equal(t, guidance.DESTINATION, s.Turns[5])
	// heading east then north at node 2
	assert.Equal(t, guidance.SHARP_TURN, s.Turns[2])
	assert.True(t, strings.HasPrefix(s.Command, "ADDTDWAYPOINTS TRUCK1,42.88,-78.8705,0,26.07,TURNSPD,10,"))
	assert.Contains(t, s.Command, ",42.88,-78.869,0,20,TURNSPD,5,")
	assert.Greater(t, s.LengthMeter, 200.0)
	assert.NotEmpty(t, s.EncodedPolyline)
	assert.JSONEq(t, `{"travel_time":42.5}`, string(s.Cost))

	// route line plus the turn waypoints
	turnCount := 0
	for _, l := range s.Turns {
		if l.IsTurn() {
			turnCount++
		}
	}
	assert.Len(t, s.GeoJSON.Features, 1+turnCount)
	assert.Equal(t, "LineString", s.GeoJSON.Features[0].Geometry.GeoJSONType())
}

func TestBuildIsCached(t *testing.T) {
	ss := newTestService(t)

	first, err := ss.Build(context.Background(), testRequest("TRUCK1"))
	require.NoError(t, err)
	second, err := ss.Build(context.Background(), testRequest("TRUCK1"))
	require.NoError(t, err)
	assert.Same(t, first, second)

	other, err := ss.Build(context.Background(), testRequest("TRUCK2"))
	require.NoError(t, err)
	assert.NotSame(t, first, other)
}

func TestBuildErrors(t *testing.T) {
	misaligned := testRequest("TRUCK1")
	misaligned.SearchResult.End = da.PresentSegment(da.MustPathSegment(geo.NewCoordinate(10, 10), geo.NewCoordinate(11, 11)))

	unknownEdge := testRequest("TRUCK1")
	unknownEdge.SearchResult.Nodes = []int64{1, 3}

	testCases := []struct {
		name     string
		req      RouteRequest
		wantCode error
	}{
		{name: "misaligned end segment", req: misaligned, wantCode: util.ErrBadParamInput},
		{name: "edge missing from network", req: unknownEdge, wantCode: util.ErrNotFound},
		{name: "vehicle id with a comma", req: testRequest("A,B"), wantCode: util.ErrBadParamInput},
		{name: "empty vehicle id", req: testRequest(""), wantCode: util.ErrBadParamInput},
	}

	ss := newTestService(t)
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ss.Build(context.Background(), tt.req)
			assert.Nil(t, s)
			var uErr *util.Error
			require.True(t, errors.As(err, &uErr))
			assert.Equal(t, tt.wantCode, uErr.Code())
		})
	}
}

func TestBuildCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestService(t).Build(ctx, testRequest("TRUCK1"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildBatch(t *testing.T) {
	ss := newTestService(t)
	reqs := []RouteRequest{testRequest("T1"), testRequest("T2"), testRequest("T3")}

	scenarios, err := ss.BuildBatch(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, scenarios, len(reqs))
	for i, s := range scenarios {
		assert.Equal(t, reqs[i].VehicleID, s.VehicleID)
		assert.True(t, strings.HasPrefix(s.Command, "ADDTDWAYPOINTS "+reqs[i].VehicleID+","))
	}
}

func TestBuildBatchFails(t *testing.T) {
	bad := testRequest("T2")
	bad.SearchResult.Nodes = []int64{1, 3}

	_, err := newTestService(t).BuildBatch(context.Background(), []RouteRequest{testRequest("T1"), bad})
	assert.ErrorContains(t, err, "request 1")
}
