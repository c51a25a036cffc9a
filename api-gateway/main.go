package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fastfoodz/api-gateway/internal/gateway"
	"fastfoodz/config"

	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

func main() {
	v := config.Load()
	v.SetDefault("GATEWAY_ADDR", ":8000")
	v.SetDefault("CATALOG_SVC_URL", "http://localhost:8081")
	v.SetDefault("ORDER_SVC_URL", "http://localhost:8082")
	v.SetDefault("FRONTEND_DIR", "")

	gw := gateway.NewGateway(gateway.Config{
		CatalogSvcURL: v.GetString("CATALOG_SVC_URL"),
		OrderSvcURL:   v.GetString("ORDER_SVC_URL"),
		FrontendDir:   v.GetString("FRONTEND_DIR"),
	}, &http.Client{Timeout: 45 * time.Second})

	c := cors.New(cors.Options{
		AllowedOrigins:   config.SplitCSV(v.GetString("CORS_ALLOW_ORIGINS")),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", gateway.RequestIDHeader},
		ExposedHeaders:   []string{gateway.RequestIDHeader},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              v.GetString("GATEWAY_ADDR"),
		Handler:           c.Handler(gw.SetupRoutes()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Infof("API Gateway starting on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
