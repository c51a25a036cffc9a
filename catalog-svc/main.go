package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "fastfoodz/catalog-svc/internal/api/http"
	"fastfoodz/catalog-svc/internal/geoip"
	"fastfoodz/catalog-svc/internal/overpass"
	"fastfoodz/catalog-svc/internal/service"
	"fastfoodz/catalog-svc/internal/storage"
	"fastfoodz/config"

	log "github.com/sirupsen/logrus"
)

func main() {
	v := config.Load()
	v.SetDefault("CATALOG_ADDR", ":8081")
	v.SetDefault("OVERPASS_URL", overpass.DefaultURL)
	v.SetDefault("GEOIP_URL", geoip.DefaultURL)
	v.SetDefault("CATALOG_CACHE_TTL", "10m")

	rdb := config.MustInitRedis(v)
	defer rdb.Close()

	upstream := &http.Client{Timeout: 30 * time.Second}
	loader := service.NewLoader(
		geoip.NewClient(v.GetString("GEOIP_URL"), &http.Client{Timeout: 5 * time.Second}),
		overpass.NewClient(v.GetString("OVERPASS_URL"), upstream),
		storage.NewRedisCache(rdb, v.GetDuration("CATALOG_CACHE_TTL")),
	)

	handler := httpapi.NewHandler(loader)
	router := httpapi.NewRouter(handler, config.SplitCSV(v.GetString("CORS_ALLOW_ORIGINS")))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := httpapi.StartServer(ctx, v.GetString("CATALOG_ADDR"), router); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
