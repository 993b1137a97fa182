package controllers

import (
	"context"

	"github.com/lintang-b-s/roadroute/pkg/http/usecases"
)

type ScenarioService interface {
	Build(ctx context.Context, req usecases.RouteRequest) (*usecases.Scenario, error)
	BuildBatch(ctx context.Context, reqs []usecases.RouteRequest) ([]*usecases.Scenario, error)
}
