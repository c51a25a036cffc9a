package service

import (
	"context"

	"fastfoodz/order-svc/internal/domain"
	"fastfoodz/orderstatus"
)

type CartStore interface {
	LoadCart(ctx context.Context, userID string) (domain.Cart, error)
	SaveCart(ctx context.Context, userID string, cart domain.Cart) error
}

type CartListener interface {
	CartChanged(ctx context.Context, userID string, summary domain.Summary)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	ListOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error)
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
}

type StatusCache interface {
	GetStatus(ctx context.Context, orderID string) (orderstatus.Status, bool, error)
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

type Notifier interface {
	Notify(ctx context.Context, severity Severity, title, message string)
}

type CartServiceInterface interface {
	WithCart(ctx context.Context, user *domain.User, fn func(*CartEngine) error) error
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, user *domain.User, cart *CartEngine, info domain.DeliveryInfo) (*domain.Order, error)
	History(ctx context.Context, user *domain.User) ([]domain.Order, error)
	Get(ctx context.Context, user *domain.User, orderID string) (*domain.Order, error)
	Status(ctx context.Context, user *domain.User, orderID string) (domain.StatusView, error)
	Reorder(ctx context.Context, user *domain.User, cart *CartEngine, orderID string) (domain.Summary, error)
	QRCode(ctx context.Context, user *domain.User, orderID string) ([]byte, error)
}

var (
	_ CartServiceInterface  = (*CartService)(nil)
	_ OrderServiceInterface = (*OrderService)(nil)
	_ CartListener          = LogListener{}
	_ Notifier              = LogNotifier{}
)
