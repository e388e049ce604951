package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/weiawesome/wes-io-live/gif-service/internal/cache"
	"github.com/weiawesome/wes-io-live/gif-service/internal/config"
	"github.com/weiawesome/wes-io-live/gif-service/internal/fallback"
	"github.com/weiawesome/wes-io-live/gif-service/internal/handler"
	"github.com/weiawesome/wes-io-live/gif-service/internal/provider"
	"github.com/weiawesome/wes-io-live/gif-service/internal/service"
	"github.com/weiawesome/wes-io-live/gif-service/internal/settings"
	"github.com/weiawesome/wes-io-live/gif-service/pkg/database"
	pkglog "github.com/weiawesome/wes-io-live/gif-service/pkg/log"
	"github.com/weiawesome/wes-io-live/gif-service/pkg/pubsub"
	"github.com/weiawesome/wes-io-live/gif-service/pkg/response"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	// Initialize structured logger
	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Level == "debug",
		ServiceName: "gif-service",
	})
	logger := pkglog.L()

	// Initialize cache store
	var store cache.Store
	switch cfg.Cache.Driver {
	case "memory":
		store = cache.NewMemoryStore()
		logger.Warn().Msg("using in-memory gif cache")
	default:
		redisStore, err := cache.NewRedisStore(cfg.Redis)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		store = redisStore
		logger.Info().Str("addr", cfg.Redis.Address).Msg("redis connected")
	}
	defer store.Close()
	gifCache := cache.NewGifCache(store, cfg.Cache.Prefix, cfg.Cache.TTL)

	// Initialize settings store
	settingsStore, err := newSettingsStore(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize settings store")
	}

	// Initialize event publisher
	publisher, err := pubsub.NewPublisher(cfg.Events)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create event publisher")
	}
	defer publisher.Close()

	// Initialize service
	tenor := provider.NewTenorClient(cfg.Provider, nil)
	gifService := service.NewGifService(gifCache, settingsStore, tenor, fallback.NewGenerator(), publisher)

	// Initialize HTTP handler
	httpHandler := handler.NewHandler(gifService)

	// Setup Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(pkglog.GinMiddleware(logger))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})

	// Register routes
	httpHandler.RegisterRoutes(r)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", addr).Str("cache", cfg.Cache.Driver).Str("settings", cfg.Settings.Driver).Msg("gif-service starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	gifService.Close()
	if err != nil {
		logger.Error().Err(err).Msg("server stopped with error")
		return
	}
	logger.Info().Msg("gif-service stopped")
}

// newSettingsStore builds the credential source. The config value always
// acts as the last resort so a bare deployment only needs TENOR_API_KEY.
func newSettingsStore(cfg *config.Config) (settings.Store, error) {
	static := settings.NewStaticStore(map[string]string{
		settings.KeyTenorAPIKey: cfg.Provider.APIKey,
	})
	if cfg.Settings.Driver != "database" {
		return static, nil
	}

	dbCfg := cfg.Settings.Database
	db, err := database.New(&database.Config{
		Driver:          dbCfg.Driver,
		Host:            dbCfg.Host,
		Port:            dbCfg.Port,
		User:            dbCfg.User,
		Password:        dbCfg.Password,
		DBName:          dbCfg.DBName,
		SSLMode:         dbCfg.SSLMode,
		FilePath:        dbCfg.FilePath,
		MaxIdleConns:    dbCfg.MaxIdleConns,
		MaxOpenConns:    dbCfg.MaxOpenConns,
		ConnMaxLifetime: dbCfg.ConnMaxLifetime,
	})
	if err != nil {
		return nil, err
	}

	gormStore := settings.NewGormStore(db)
	if err := gormStore.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate settings table: %w", err)
	}

	return settings.NewChainStore(gormStore, static), nil
}
