package main

import (
	"context"
	"net/http"
	"os"

	"github.com/spf13/viper"

	"github.com/imtaco/showroom-live/internal/config"
	"github.com/imtaco/showroom-live/internal/httputil"
	"github.com/imtaco/showroom-live/internal/log"
	"github.com/imtaco/showroom-live/internal/otel"
	"github.com/imtaco/showroom-live/internal/redis"
	"github.com/imtaco/showroom-live/internal/ttlcache"
	"github.com/imtaco/showroom-live/internal/workflow"
	"github.com/imtaco/showroom-live/lives"
	"github.com/imtaco/showroom-live/lives/aggregate"
	"github.com/imtaco/showroom-live/lives/directory"
	"github.com/imtaco/showroom-live/lives/showroom"
	"github.com/imtaco/showroom-live/lives/transport"
)

type Config struct {
	App       config.App       `mapstructure:"app"`
	HTTP      httputil.Config  `mapstructure:"http"`
	Redis     redis.Config     `mapstructure:"redis"`
	Otel      otel.Config      `mapstructure:"otel"`
	Showroom  showroom.Config  `mapstructure:"showroom"`
	Directory directory.Config `mapstructure:"directory"`
	Cache     ttlcache.Config  `mapstructure:"cache"`
	Aggregate aggregate.Config `mapstructure:"aggregate"`
	Groups    []string         `mapstructure:"groups"`
}

func loadConfig() (*Config, error) {
	return config.Load(&Config{}, func(v *viper.Viper) {
		v.SetDefault("groups", []string{"jkt48", "hinatazaka46"})

		config.Setup(v, "app")
		httputil.Setup(v, "http")
		redis.Setup(v, "redis")
		otel.Setup(v, "otel")
		showroom.Setup(v, "showroom")
		directory.Setup(v, "directory")
		ttlcache.Setup(v, "cache")
		aggregate.Setup(v, "aggregate")

		v.SetDefault("http.addr", "0.0.0.0:3000")
	})
}

func main() {
	config, err := loadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration", err)
	}

	logger, err := log.NewLogger(config.App.LogConfigFile)
	if err != nil {
		log.Fatal("Failed to create logger", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	otelShutdown, err := otel.Init(ctx, &config.Otel, logger.Module("Otel"))
	if err != nil {
		logger.Fatal("Failed to initialize OTEL provider", log.Error(err))
	}

	logger.Info("Starting showroom-live service",
		log.String("addr", config.HTTP.Addr),
		log.String("redisAddr", config.Redis.Addr),
		log.String("showroomUrl", config.Showroom.BaseURL),
		log.Bool("followedFeed", config.Showroom.Cookie != ""),
		log.Duration("cacheTtl", config.Cache.TTL),
		log.Strings("groups", config.Groups))

	redisClient := redis.NewClient(&config.Redis)
	if err := redis.Ping(ctx, redisClient); err != nil {
		logger.Fatal("Failed to connect redis", log.Error(err))
	}

	dir := directory.New(redisClient, &config.Directory, logger.Module("Directory"))
	if config.Directory.SeedFile != "" {
		if err := dir.SeedFromFile(ctx, config.Directory.SeedFile); err != nil {
			logger.Fatal("Failed to seed roster", log.Error(err))
		}
	}

	platform := showroom.New(&config.Showroom, logger.Module("Showroom"))

	cache, err := ttlcache.New[[]lives.LiveRoom]("now_live", config.Cache.MaxEntries, logger.Module("Cache"))
	if err != nil {
		logger.Fatal("Failed to create cache", log.Error(err))
	}
	janitorCtx, stopJanitor := context.WithCancel(ctx)
	go cache.RunJanitor(janitorCtx, config.Cache.PurgeInterval)

	service := aggregate.NewService(
		platform,
		dir,
		cache,
		config.Cache.TTL,
		&config.Aggregate,
		logger.Module("Aggregate"),
	)

	router := transport.NewRouter(service, config.Groups, logger.Module("Router"))
	server := httputil.NewServer(&config.HTTP, router.Handler())

	go func() {
		logger.Info("Starting HTTP server", log.String("addr", config.HTTP.Addr))
		if err := server.Listen(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start HTTP server", log.Error(err))
		}
	}()

	cleanup := func(ctx context.Context) {
		_ = server.Shutdown(ctx)
		stopJanitor()

		if err := redisClient.Close(); err != nil {
			logger.Error("Failed to close redis client", log.Error(err))
		}
		if err := otelShutdown(ctx); err != nil {
			logger.Error("Failed to shutdown OTEL", log.Error(err))
		}
	}
	if err := workflow.WaitGracefulShutdown(ctx, logger.Module("CleanUp"), cleanup, config.App.ShutdownTimeout); err != nil {
		_ = logger.Sync()
		os.Exit(1)
	}
}
