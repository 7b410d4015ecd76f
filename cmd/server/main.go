package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"zonecraft/internal/config"
	"zonecraft/internal/engine"
	"zonecraft/internal/server"
	"zonecraft/internal/systems"
	"zonecraft/internal/version"
	"zonecraft/pkg/logger"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load(flags)
	if err != nil {
		logger.Init()
		logger.Log.WithError(err).Fatal("Failed to load config")
	}

	var logFile logger.FileConfig
	if cfg.Logging.LogFile != "" {
		logFile = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	logger.InitWith(cfg.Logging.Level, cfg.Logging.Format, logFile)

	logger.Log.Info("Starting zone server...")
	logger.Log.Info(version.String())

	assets, err := engine.LoadInstanceAssets(cfg.Generation.InstancesPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load instance config")
	}

	engineCfg := engine.NewConfig()
	engineCfg.WorldSpace = cfg.Generation.WorldSpace
	if cfg.Generation.Seed != 0 {
		engineCfg.Seed = cfg.Generation.Seed
		logger.Log.Infof("Using explicit master seed: %d", engineCfg.Seed)
	} else {
		logger.Log.Infof("Using random master seed: %d", engineCfg.Seed)
	}

	zones := engine.NewZoneService(engineCfg, assets, systems.NewWorld(engineCfg.WorldSpace))
	if assets.Hub != "" {
		if err := zones.EnterHub(); err != nil {
			logger.Log.WithError(err).Fatal("Failed to enter the hub")
		}
	} else if err := zones.NextInstance(); err != nil {
		logger.Log.WithError(err).Fatal("Failed to enter a first instance")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return zones.Run(ctx) })
	g.Go(func() error { return server.New(zones, cfg.Server.Port).Run(ctx) })

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Log.WithError(err).Fatal("Server stopped")
	}
	logger.Log.Info("Done.")
}
