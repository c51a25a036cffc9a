package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fastfoodz/order-svc/internal/domain"
	"fastfoodz/order-svc/internal/service"
	"fastfoodz/orderstatus"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const orderColumns = `id, user_id, user_email, restaurant_id, restaurant_name, subtotal, taxes, delivery_fee,
		total, address, payment_method, status, estimated_delivery, created_at`

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// CreateOrder assigns the order id and stores the order with its lines in
// one transaction.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	id := uuid.New().String()
	if err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (id, user_id, user_email, restaurant_id, restaurant_name, subtotal, taxes,
			delivery_fee, total, address, payment_method, status, estimated_delivery)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at
	`, id, order.UserID, order.UserEmail, order.RestaurantID, order.RestaurantName,
		order.Subtotal, order.Taxes, order.DeliveryFee, order.Total,
		order.Address, order.PaymentMethod, string(order.Status), order.EstimatedDelivery,
	).Scan(&order.CreatedAt); err != nil {
		return err
	}

	for i, item := range order.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, position, item_id, name, category, is_veg, price, quantity)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, id, i, item.ItemID, item.Name, item.Category, item.IsVeg, item.Price, item.Quantity); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	order.ID = id
	return nil
}

func (r *PostgresRepository) ListOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	index := map[string]int{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		index[order.ID] = len(orders)
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	itemRows, err := r.DB.QueryContext(ctx, `
		SELECT order_id, item_id, name, category, is_veg, price, quantity
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, position
	`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID string
		var item domain.OrderItem
		if err := itemRows.Scan(&orderID, &item.ItemID, &item.Name, &item.Category, &item.IsVeg, &item.Price, &item.Quantity); err != nil {
			return nil, err
		}
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	return orders, itemRows.Err()
}

func (r *PostgresRepository) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	if _, err := uuid.Parse(orderID); err != nil {
		return nil, service.ErrOrderNotFound
	}

	order, err := scanOrder(r.DB.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, service.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT item_id, name, category, is_veg, price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY position
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ItemID, &item.Name, &item.Category, &item.IsVeg, &item.Price, &item.Quantity); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	return order, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (*domain.Order, error) {
	var order domain.Order
	var status string
	if err := row.Scan(&order.ID, &order.UserID, &order.UserEmail, &order.RestaurantID, &order.RestaurantName,
		&order.Subtotal, &order.Taxes, &order.DeliveryFee, &order.Total,
		&order.Address, &order.PaymentMethod, &status, &order.EstimatedDelivery, &order.CreatedAt); err != nil {
		return nil, err
	}

	parsed, err := orderstatus.Parse(status)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", order.ID, err)
	}
	order.Status = parsed
	return &order, nil
}
