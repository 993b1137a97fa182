package controllers

import (
	"encoding/json"

	da "github.com/lintang-b-s/roadroute/pkg/datastructure"
	"github.com/lintang-b-s/roadroute/pkg/geo"
	"github.com/lintang-b-s/roadroute/pkg/guidance"
	"github.com/lintang-b-s/roadroute/pkg/http/usecases"
	"github.com/paulmach/orb/geojson"
)

type scenarioRequest struct {
	VehicleID    string          `json:"vehicle_id" validate:"required,max=64"`
	Origin       geo.Coordinate  `json:"origin"`
	Destination  geo.Coordinate  `json:"destination"`
	SearchResult da.SearchResult `json:"search_result"`
}

func (r scenarioRequest) toRouteRequest() usecases.RouteRequest {
	return usecases.RouteRequest{
		VehicleID:    r.VehicleID,
		Origin:       r.Origin,
		Destination:  r.Destination,
		SearchResult: r.SearchResult,
	}
}

type batchScenarioRequest struct {
	Requests []scenarioRequest `json:"requests" validate:"required,min=1,max=1000,dive"`
}

type scenarioResponse struct {
	VehicleID   string                     `json:"vehicle_id"`
	Command     string                     `json:"command"`
	Path        string                     `json:"path"`
	Waypoints   []geo.Coordinate           `json:"waypoints"`
	SpeedLimits []float64                  `json:"speed_limits"`
	Turns       []guidance.TurnLabel       `json:"turns"`
	TurnAngles  []float64                  `json:"turn_angles"`
	Dist        float64                    `json:"distance"`
	GeoJSON     *geojson.FeatureCollection `json:"geojson"`
	Cost        json.RawMessage            `json:"cost,omitempty"`
}

func NewScenarioResponse(s *usecases.Scenario) scenarioResponse {
	return scenarioResponse{
		VehicleID:   s.VehicleID,
		Command:     s.Command,
		Path:        s.EncodedPolyline,
		Waypoints:   s.Polyline,
		SpeedLimits: s.SpeedLimits,
		Turns:       s.Turns,
		TurnAngles:  s.TurnAngles,
		Dist:        s.LengthMeter,
		GeoJSON:     s.GeoJSON,
		Cost:        s.Cost,
	}
}

func NewScenarioResponses(ss []*usecases.Scenario) []scenarioResponse {
	resp := make([]scenarioResponse, len(ss))
	for i, s := range ss {
		resp[i] = NewScenarioResponse(s)
	}
	return resp
}

type errorResponse struct {
	Error string `json:"error"`
}
