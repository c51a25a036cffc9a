package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fastfoodz/orderstatus"

	"github.com/redis/go-redis/v9"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrStatusChanged = errors.New("order status changed concurrently")
)

const statusTTL = 24 * time.Hour

type Store struct {
	db  *sql.DB
	rdb *redis.Client
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
	}
}

func StatusKey(orderID string) string {
	return "order:" + orderID + ":status"
}

func (s *Store) CurrentStatus(ctx context.Context, orderID string) (orderstatus.Status, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT status FROM orders WHERE id = $1`, orderID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrOrderNotFound
	}
	if err != nil {
		return "", err
	}
	return orderstatus.Parse(raw)
}

// UpdateStatus only applies when the stored status is still from.
func (s *Store) UpdateStatus(ctx context.Context, orderID string, from, to orderstatus.Status, at time.Time) error {
	if at.IsZero() {
		at = time.Now()
	}
	result, err := s.db.ExecContext(ctx, `
		UPDATE orders
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`, string(to), at, orderID, string(from))
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s is no longer %s", ErrStatusChanged, orderID, from)
	}
	return nil
}

func (s *Store) CacheStatus(ctx context.Context, orderID string, status orderstatus.Status) error {
	return s.rdb.Set(ctx, StatusKey(orderID), string(status), statusTTL).Err()
}
