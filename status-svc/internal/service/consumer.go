package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fastfoodz/orderstatus"
	"fastfoodz/status-svc/internal/domain"

	log "github.com/sirupsen/logrus"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

// Start reads until ctx is cancelled. Bad messages and rejected transitions
// are logged and skipped.
func (c *Consumer) Start(ctx context.Context) {
	log.Info("Starting Status Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("Status Service consumer stopped")
				return
			}
			log.Error("Error reading message: ", err)
			continue
		}

		var msg domain.StatusMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.WithField("offset", message.Offset).Warn("Error unmarshaling message: ", err)
			continue
		}

		if msg.Type != domain.TypeStatusUpdate {
			continue
		}
		if err := c.ProcessStatusUpdate(ctx, msg); err != nil {
			log.WithFields(log.Fields{"order_id": msg.OrderID, "status": msg.Status}).Warn(err)
		}
	}
}

func (c *Consumer) ProcessStatusUpdate(ctx context.Context, msg domain.StatusMessage) error {
	if msg.Type != domain.TypeStatusUpdate {
		return fmt.Errorf("unexpected message type %q", msg.Type)
	}
	if msg.OrderID == "" {
		return errors.New("status update without order id")
	}

	to, err := orderstatus.Parse(msg.Status)
	if err != nil {
		return err
	}

	from, err := c.Store.CurrentStatus(ctx, msg.OrderID)
	if err != nil {
		return fmt.Errorf("load order %s: %w", msg.OrderID, err)
	}

	if _, err := from.Transition(to); err != nil {
		return err
	}

	if err := c.Store.UpdateStatus(ctx, msg.OrderID, from, to, msg.Timestamp); err != nil {
		return fmt.Errorf("update order %s: %w", msg.OrderID, err)
	}

	if err := c.Store.CacheStatus(ctx, msg.OrderID, to); err != nil {
		log.WithField("order_id", msg.OrderID).Warn("Error caching status: ", err)
	}

	log.WithFields(log.Fields{"order_id": msg.OrderID, "from": from, "to": to}).Info("order status updated")
	return nil
}
