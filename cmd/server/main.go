package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcoot/reversigame/internal/api"
	"github.com/mcoot/reversigame/internal/config"
	"github.com/mcoot/reversigame/internal/factory"
	"github.com/mcoot/reversigame/internal/services/moderation"
	redisstorage "github.com/mcoot/reversigame/internal/storage/redis"
)

func main() {
	cfgPath := flag.String("config", "", "optional .env or YAML config file; the environment overrides it")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate has already rejected a bad level
	level, _ := cfg.Level()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	modCfg := moderation.DefaultConfig()
	modCfg.AdminSecretHash = cfg.AdminSecretHash
	modCfg.BanThreshold = cfg.BanThreshold
	if cfg.AdminSecretHash == "" {
		logger.Warn("ADMIN_SECRET_HASH not set; administrator accounts are disabled")
	}

	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
		Moderation:  modCfg,
	}
	if cfg.StorageType == config.StorageRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		redisCfg.KeyPrefix = cfg.RedisKeyPrefix
		factoryCfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = app.Close() }()

	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		GameController:    app.GameController,
		ModerationService: app.ModerationService,
		CORSOrigin:        cfg.CORSOrigin,
	})

	serverConfig := api.DefaultServerConfig()
	serverConfig.Port = cfg.ServerPort
	server := api.NewServer(router, serverConfig, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
