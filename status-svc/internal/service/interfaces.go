package service

import (
	"context"
	"time"

	"fastfoodz/orderstatus"
	"fastfoodz/status-svc/internal/domain"
	"fastfoodz/status-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	CurrentStatus(ctx context.Context, orderID string) (orderstatus.Status, error)
	UpdateStatus(ctx context.Context, orderID string, from, to orderstatus.Status, at time.Time) error
	CacheStatus(ctx context.Context, orderID string, status orderstatus.Status) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessStatusUpdate(ctx context.Context, msg domain.StatusMessage) error
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
