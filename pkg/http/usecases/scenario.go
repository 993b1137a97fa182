package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	da "github.com/lintang-b-s/roadroute/pkg/datastructure"
	"github.com/lintang-b-s/roadroute/pkg/geo"
	"github.com/lintang-b-s/roadroute/pkg/guidance"
	"github.com/lintang-b-s/roadroute/pkg/roadroute"
	"github.com/lintang-b-s/roadroute/pkg/scenario"
	"github.com/lintang-b-s/roadroute/pkg/util"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RouteRequest. one vehicle route: the search result between origin and destination.
type RouteRequest struct {
	VehicleID    string          `json:"vehicle_id"`
	Origin       geo.Coordinate  `json:"origin"`
	Destination  geo.Coordinate  `json:"destination"`
	SearchResult da.SearchResult `json:"search_result"`
}

// Scenario. everything derived from one route request.
type Scenario struct {
	VehicleID       string
	Command         string
	Polyline        []geo.Coordinate
	EncodedPolyline string
	SpeedLimits     []float64
	Turns           []guidance.TurnLabel
	TurnAngles      []float64
	Waypoints       []scenario.WaypointCommand
	LengthMeter     float64
	GeoJSON         *geojson.FeatureCollection
	Cost            json.RawMessage
}

type ScenarioService struct {
	log        *zap.Logger
	assembler  *roadroute.Assembler
	classifier *guidance.TurnClassifier
	encoder    *scenario.Encoder
	cache      *lru.Cache[string, *Scenario]
	batchLimit int
}

func NewScenarioService(log *zap.Logger, lookup roadroute.EdgeLookup, cfg util.Config,
	cacheSize, batchLimit int) (*ScenarioService, error) {
	if cacheSize <= 0 {
		cacheSize = 1
	}
	cache, err := lru.New[string, *Scenario](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create scenario cache: %w", err)
	}
	return &ScenarioService{
		log:        log,
		assembler:  roadroute.NewAssembler(lookup, cfg.Route, log),
		classifier: guidance.NewTurnClassifier(cfg.Turn),
		encoder:    scenario.NewEncoder(cfg.Scenario),
		cache:      cache,
		batchLimit: batchLimit,
	}, nil
}

/*
Build. assemble the route of req, classify the turn at every waypoint and encode the
ADDTDWAYPOINTS command.

Errors carry a util.Error code: ErrBadParamInput for requests whose geometry does not
line up or whose vehicle id is unusable, ErrNotFound for edges missing from the road
network.
*/
func (ss *ScenarioService) Build(ctx context.Context, req RouteRequest) (*Scenario, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := scenario.ValidateVehicleID(req.VehicleID); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "vehicle %q", req.VehicleID)
	}

	key, err := cacheKey(req)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "route request key")
	}
	if s, ok := ss.cache.Get(key); ok {
		return s, nil
	}

	route, err := ss.assembler.Assemble(req.Origin, req.Destination, req.SearchResult)
	if err != nil {
		switch {
		case errors.Is(err, roadroute.ErrAlignment):
			ss.log.Warn("route geometry does not align", zap.String("vehicle_id", req.VehicleID), zap.Error(err))
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "vehicle %s", req.VehicleID)
		case errors.Is(err, roadroute.ErrEdgeNotFound):
			return nil, util.WrapErrorf(err, util.ErrNotFound, "vehicle %s", req.VehicleID)
		default:
			return nil, util.WrapErrorf(err, util.ErrInternalServerError, "vehicle %s", req.VehicleID)
		}
	}

	path := route.Polyline()
	turns := ss.classifier.Classify(path)
	angles := ss.classifier.Angles(path)

	wps, err := ss.encoder.Waypoints(path, turns, route.SpeedLimits)
	if err != nil {
		// polyline and speed limits come from the same assembly, a mismatch is a bug
		ss.log.Error("assembled route is not aligned", zap.String("vehicle_id", req.VehicleID), zap.Error(err))
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "vehicle %s", req.VehicleID)
	}

	s := &Scenario{
		VehicleID:       req.VehicleID,
		Command:         scenario.EncodeWaypoints(req.VehicleID, wps),
		Polyline:        path,
		EncodedPolyline: geo.PolylineFromCoords(path),
		SpeedLimits:     route.SpeedLimits,
		Turns:           turns,
		TurnAngles:      angles,
		Waypoints:       wps,
		LengthMeter:     geo.PolylineLength(path),
		Cost:            route.Cost,
	}
	s.GeoJSON = buildFeatureCollection(s, route)

	ss.cache.Add(key, s)
	ss.log.Debug("built scenario", zap.String("vehicle_id", req.VehicleID),
		zap.Int("waypoints", len(path)), zap.Float64("length_m", s.LengthMeter))
	return s, nil
}

// BuildBatch. build every request concurrently, results in request order. the first failing request aborts the batch.
func (ss *ScenarioService) BuildBatch(ctx context.Context, reqs []RouteRequest) ([]*Scenario, error) {
	g, gctx := errgroup.WithContext(ctx)
	if ss.batchLimit > 0 {
		g.SetLimit(ss.batchLimit)
	}

	scenarios := make([]*Scenario, len(reqs))
	for i, req := range reqs {
		g.Go(func() error {
			s, err := ss.Build(gctx, req)
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			scenarios[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scenarios, nil
}

func cacheKey(req RouteRequest) (string, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	h := fnv.New64a()
	h.Write(data)
	return strconv.FormatUint(h.Sum64(), 16), nil
}

// buildFeatureCollection. the route line plus one point per waypoint where the vehicle slows down.
func buildFeatureCollection(s *Scenario, route *da.AssembledRoute) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	line := geojson.NewFeature(route.LineString())
	line.Properties["vehicle_id"] = s.VehicleID
	line.Properties["length_m"] = s.LengthMeter
	line.Properties["segments"] = len(route.Segments)
	fc.Append(line)

	for i, p := range s.Polyline {
		if !s.Turns[i].IsTurn() {
			continue
		}
		f := geojson.NewFeature(orb.Point{p.Lon, p.Lat})
		f.Properties["index"] = i
		f.Properties["turn"] = s.Turns[i].String()
		f.Properties["angle"] = s.TurnAngles[i]
		f.Properties["speed_limit"] = s.SpeedLimits[i]
		f.Properties["turn_speed"] = s.Waypoints[i].TurnSpeed
		fc.Append(f)
	}
	return fc
}
