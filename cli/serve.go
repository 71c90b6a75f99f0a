package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"roi-calculator/config"
	httpLayer "roi-calculator/http"
	"roi-calculator/repository"
	"roi-calculator/service"
)

func (cli *CLI) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the ROI calculator HTTP API",
		RunE:  cli.runServe,
	}
}

func (cli *CLI) runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cli.configPath)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Log.Level)
	ctx := logger.WithContext(cmd.Context())

	var repo repository.EstimateRepository
	switch cfg.Storage.Driver {
	case "sqlite":
		sqliteRepo, err := repository.NewEstimateRepositorySQLite(cfg.Storage.SQLitePath)
		if err != nil {
			return fmt.Errorf("failed to open estimate store: %w", err)
		}
		defer sqliteRepo.Close()
		repo = sqliteRepo
	default:
		repo = repository.NewEstimateRepositoryMemory()
	}

	var cache repository.CacheRepository
	switch cfg.Cache.Driver {
	case "redis":
		redisCache := repository.NewRedisCache(cfg.Cache.RedisAddr)
		if err := redisCache.Ping(ctx); err != nil {
			return fmt.Errorf("failed to reach redis at %s: %w", cfg.Cache.RedisAddr, err)
		}
		defer redisCache.Close()
		cache = redisCache
	default:
		memoryCache := repository.NewMemoryCache()
		defer memoryCache.Stop()
		cache = memoryCache
	}

	logger.Info().
		Str("storage", cfg.Storage.Driver).
		Str("cache", cfg.Cache.Driver).
		Msg("dependencies initialized")

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.Dependencies{
		ROI:         service.NewROIService(repo, cache, cfg.Cache.TTL),
		Sessions:    service.NewSessionService(cache, cfg.Cache.TTL),
		RateLimiter: rateLimiter,
		Logger:      logger,
	})

	return httpLayer.NewServer(logger, cfg.Server.Addr, router, cfg.Server.ShutdownTimeout).Start()
}
