package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"fastfoodz/config"
	"fastfoodz/status-svc/internal/service"
	"fastfoodz/status-svc/internal/storage"

	log "github.com/sirupsen/logrus"
)

func main() {
	v := config.Load()
	v.SetDefault("ORDER_STATUS_TOPIC", "order-status")
	v.SetDefault("STATUS_CONSUMER_GROUP", "status-svc-consumer")

	db := config.MustInitPostgres(v)
	defer db.Close()
	if err := config.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	rdb := config.MustInitRedis(v)
	defer rdb.Close()

	reader := config.NewKafkaReader(v, v.GetString("ORDER_STATUS_TOPIC"), v.GetString("STATUS_CONSUMER_GROUP"))
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service.NewConsumer(reader, storage.NewStore(db, rdb)).Start(ctx)
}
