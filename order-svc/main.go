package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fastfoodz/config"
	httpapi "fastfoodz/order-svc/internal/api/http"
	"fastfoodz/order-svc/internal/auth"
	"fastfoodz/order-svc/internal/service"
	"fastfoodz/order-svc/internal/storage"

	log "github.com/sirupsen/logrus"
)

func main() {
	v := config.Load()
	v.SetDefault("ORDER_ADDR", ":8082")
	v.SetDefault("ORDER_EVENTS_TOPIC", "order-events")
	v.SetDefault("CART_TTL", "720h")
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:8000")

	secret := v.GetString("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	db := config.MustInitPostgres(v)
	defer db.Close()
	if err := config.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	rdb := config.MustInitRedis(v)
	defer rdb.Close()

	writer := config.NewKafkaWriter(v, v.GetString("ORDER_EVENTS_TOPIC"))
	defer writer.Close()

	carts := service.NewCartService(storage.NewRedisCartStore(rdb, v.GetDuration("CART_TTL")), service.LogListener{})
	orders := service.NewOrderService(
		storage.NewPostgresRepository(db),
		storage.NewRedisStatusCache(rdb),
		storage.NewKafkaPublisher(writer),
		service.DefaultQRGenerator{BaseURL: v.GetString("PUBLIC_BASE_URL")},
		service.LogNotifier{},
	)

	authenticator := auth.NewAuthenticator(secret)
	handler := httpapi.NewHandler(carts, orders, authenticator.Middleware)
	router := httpapi.NewRouter(handler, config.SplitCSV(v.GetString("CORS_ALLOW_ORIGINS")))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := httpapi.StartServer(ctx, v.GetString("ORDER_ADDR"), router); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
