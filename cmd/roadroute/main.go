package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lintang-b-s/roadroute/pkg/concurrent"
	"github.com/lintang-b-s/roadroute/pkg/http/usecases"
	"github.com/lintang-b-s/roadroute/pkg/logger"
	"github.com/lintang-b-s/roadroute/pkg/network"
	"github.com/lintang-b-s/roadroute/pkg/scenario"
	"github.com/lintang-b-s/roadroute/pkg/util"
	"go.uber.org/zap"
)

var (
	networkPath  = flag.String("network", "./data/network.json", "road network json file")
	requestsPath = flag.String("requests", "./data/requests.json", "json array of route requests")
	outPath      = flag.String("out", "", "scenario file to write, stdout when empty")
	workers      = flag.Int("workers", 0, "number of concurrent route builders, number of cpus when 0")
	configPath   = flag.String("config", "./data/", "directory holding config.yaml")
)

type buildResult struct {
	vehicleID string
	command   string
	err       error
}

func main() {
	flag.Parse()
	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	failed, err := run(log)
	if err != nil {
		log.Fatal("roadroute", zap.Error(err))
	}
	if failed > 0 {
		log.Error("some routes could not be built", zap.Int("failed", failed))
		os.Exit(1)
	}
}

func run(log *zap.Logger) (int, error) {
	cfg, err := util.ReadConfig(*configPath)
	if err != nil {
		return 0, err
	}
	store, err := network.Load(*networkPath)
	if err != nil {
		return 0, err
	}
	reqs, err := readRequests(*requestsPath)
	if err != nil {
		return 0, err
	}

	svc, err := usecases.NewScenarioService(log, store, cfg, len(reqs), 0)
	if err != nil {
		return 0, err
	}

	results := concurrent.Run(*workers, reqs, func(req usecases.RouteRequest) buildResult {
		s, err := svc.Build(context.Background(), req)
		if err != nil {
			return buildResult{vehicleID: req.VehicleID, err: err}
		}
		return buildResult{vehicleID: req.VehicleID, command: s.Command}
	})

	commands := make([]string, 0, len(results))
	failed := 0
	for i, res := range results {
		if res.err != nil {
			failed++
			log.Error("skipping route", zap.Int("request", i), zap.String("vehicle_id", res.vehicleID),
				zap.Error(res.err))
			continue
		}
		commands = append(commands, res.command)
	}

	var w io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return failed, err
		}
		defer f.Close()
		w = f
	}
	if err := scenario.WriteScenarioFile(w, commands); err != nil {
		return failed, fmt.Errorf("write scenario file: %w", err)
	}
	log.Info("scenario written", zap.Int("routes", len(commands)), zap.Int("failed", failed))
	return failed, nil
}

func readRequests(path string) ([]usecases.RouteRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var reqs []usecases.RouteRequest
	if err := json.NewDecoder(f).Decode(&reqs); err != nil {
		return nil, fmt.Errorf("decode route requests %s: %w", path, err)
	}
	return reqs, nil
}
