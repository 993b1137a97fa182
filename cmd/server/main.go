package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/roadroute/pkg/http"
	"github.com/lintang-b-s/roadroute/pkg/http/usecases"
	"github.com/lintang-b-s/roadroute/pkg/logger"
	"github.com/lintang-b-s/roadroute/pkg/network"
	"github.com/lintang-b-s/roadroute/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	networkPath  = flag.String("network", "./data/network.json", "road network json file")
	configPath   = flag.String("config", "./data/", "directory holding config.yaml")
	useRateLimit = flag.Bool("rate_limit", false, "enable the token bucket rate limiter")
	batchLimit   = flag.Int("batch_workers", 8, "max routes built concurrently per batch request")
	debug        = flag.Bool("debug", false, "development logger with debug level")
)

func main() {
	flag.Parse()

	var (
		log *zap.Logger
		err error
	)
	if *debug {
		log, err = logger.NewDevelopment()
	} else {
		log, err = logger.New()
	}
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := util.ReadConfig(*configPath)
	if err != nil {
		log.Fatal("read config", zap.Error(err))
	}

	store, err := network.Load(*networkPath)
	if err != nil {
		log.Fatal("load road network", zap.String("path", *networkPath), zap.Error(err))
	}
	log.Info("road network loaded", zap.Int("nodes", store.NumNodes()), zap.Int("edges", store.NumEdges()))

	scenarioService, err := usecases.NewScenarioService(log, store, cfg, viper.GetInt("ROUTE_CACHE_SIZE"), *batchLimit)
	if err != nil {
		log.Fatal("create scenario service", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	api, err := http.NewServer(log).Use(ctx, log, *useRateLimit, scenarioService)
	if err != nil {
		log.Fatal("start api", zap.Error(err))
	}

	stopped := make(chan error, 1)
	go func() {
		stopped <- api.Wait()
	}()

	signal, err := http.GracefulShutdown(stopped)
	if signal == nil {
		cancel()
		if err != nil {
			log.Fatal("api stopped", zap.Error(err))
		}
		log.Info("roadroute server stopped")
		return
	}

	log.Info("roadroute server stopping", zap.String("signal", signal.String()))
	cancel()
	if err := <-stopped; err != nil {
		log.Error("api stopped with error", zap.Error(err))
	}
	log.Info("roadroute server stopped")
}
