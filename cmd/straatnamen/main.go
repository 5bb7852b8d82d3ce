package main

import (
	"context"
	"flag"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/goudatijdmachine/straatnamen-api/internal/config"
	"github.com/goudatijdmachine/straatnamen-api/internal/infra/cache"
	"github.com/goudatijdmachine/straatnamen-api/internal/interface/rest"
	"github.com/goudatijdmachine/straatnamen-api/internal/sparql"
	"github.com/goudatijdmachine/straatnamen-api/internal/telemetry"
	"github.com/goudatijdmachine/straatnamen-api/internal/usecase"
)

func main() {
	configPath := flag.String("c", "config.yaml", "path to config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	store := newCacheStore(conf.Cache)
	executor := sparql.NewClient(conf.Sparql)

	streetUsecase := usecase.NewStreetUsecase(store, executor)
	photoUsecase := usecase.NewPhotoUsecase(store, executor)
	cacheUsecase := usecase.NewCacheUsecase(store)

	handler := rest.NewHandler(streetUsecase, photoUsecase, cacheUsecase)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	if conf.Server.EnableTrace {
		shutdown, err := telemetry.SetupTracer(context.Background(), conf.Server.TraceEndpoint)
		if err != nil {
			panic("failed to set up tracing: " + err.Error())
		}
		defer shutdown(context.Background())
		e.Use(otelecho.Middleware("straatnamen-api"))
	}

	handler.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(conf.Server.Listen))
}

func newCacheStore(conf config.Cache) usecase.CacheStore {
	ttl := time.Duration(conf.TTLMinutes) * time.Minute

	switch conf.Backend {
	case "redis":
		return cache.NewRedisStore(conf.RedisAddr, conf.RedisPassword, conf.RedisDB, ttl)
	case "memcached":
		return cache.NewMemcachedStore(conf.MemcachedAddr, int32(ttl.Seconds()))
	default:
		return cache.NewMemoryStore(ttl)
	}
}
