package controllers

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/roadroute/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/roadroute/pkg/http/usecases"
	"go.uber.org/zap"
)

type scenarioAPI struct {
	scenarioService ScenarioService
	validator       *requestValidator
	log             *zap.Logger
}

func New(scenarioService ScenarioService, log *zap.Logger) *scenarioAPI {
	return &scenarioAPI{
		scenarioService: scenarioService,
		validator:       newRequestValidator(),
		log:             log,
	}
}

func (api *scenarioAPI) Routes(group *helper.RouteGroup) {
	group.POST("/scenario", api.buildScenario)
	group.POST("/scenarios", api.buildScenarios)
}

// buildScenario
//
//	@Summary		assemble one road route and encode its ADDTDWAYPOINTS command
//	@Tags			scenario
//	@Accept			json
//	@Produce		json
//	@Param			body	body		scenarioRequest	true	"route request"
//	@Success		200		{object}	scenarioResponse
//	@Failure		400		{object}	errorResponse
//	@Failure		404		{object}	errorResponse
//	@Failure		500		{object}	errorResponse
//	@Router			/scenario [post]
func (api *scenarioAPI) buildScenario(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request scenarioRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validator.Struct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	s, err := api.scenarioService.Build(r.Context(), request.toRouteRequest())
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewScenarioResponse(s)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// buildScenarios
//
//	@Summary		assemble several road routes concurrently, responses in request order
//	@Tags			scenario
//	@Accept			json
//	@Produce		json
//	@Param			body	body		batchScenarioRequest	true	"route requests"
//	@Success		200		{array}		scenarioResponse
//	@Failure		400		{object}	errorResponse
//	@Failure		404		{object}	errorResponse
//	@Failure		500		{object}	errorResponse
//	@Router			/scenarios [post]
func (api *scenarioAPI) buildScenarios(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request batchScenarioRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validator.Struct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	reqs := make([]usecases.RouteRequest, len(request.Requests))
	for i, req := range request.Requests {
		reqs[i] = req.toRouteRequest()
	}

	ss, err := api.scenarioService.BuildBatch(r.Context(), reqs)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewScenarioResponses(ss)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
