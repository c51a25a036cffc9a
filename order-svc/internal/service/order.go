package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fastfoodz/order-svc/internal/domain"
	"fastfoodz/orderstatus"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultPaymentMethod = "Cash on Delivery"
	EstimatedDelivery    = 35 * time.Minute
	EventOrderPlaced     = "order_placed"
)

var (
	ErrUnauthenticated = errors.New("user is not signed in")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrOrderNotFound   = errors.New("order not found")
	ErrMissingAddress  = errors.New("delivery address is required")
)

type OrderService struct {
	repo      OrderRepository
	statuses  StatusCache
	publisher OrderPublisher
	qr        QRGenerator
	notifier  Notifier
	now       func() time.Time
}

// NewOrderService accepts nil for statuses, publisher, qr and notifier.
func NewOrderService(repo OrderRepository, statuses StatusCache, publisher OrderPublisher, qr QRGenerator, notifier Notifier) *OrderService {
	return &OrderService{
		repo:      repo,
		statuses:  statuses,
		publisher: publisher,
		qr:        qr,
		notifier:  notifier,
		now:       time.Now,
	}
}

// WithClock replaces the time source.
func (s *OrderService) WithClock(now func() time.Time) *OrderService {
	s.now = now
	return s
}

// PlaceOrder turns the cart into a persisted order. The cart is cleared only
// after the order has been stored.
func (s *OrderService) PlaceOrder(ctx context.Context, user *domain.User, cart *CartEngine, info domain.DeliveryInfo) (*domain.Order, error) {
	if user == nil || user.ID == "" {
		return nil, ErrUnauthenticated
	}
	if cart == nil || cart.ItemCount() == 0 {
		return nil, ErrEmptyCart
	}
	if strings.TrimSpace(info.Address) == "" {
		return nil, ErrMissingAddress
	}

	payment := strings.TrimSpace(info.PaymentMethod)
	if payment == "" {
		payment = DefaultPaymentMethod
	}

	summary := cart.Summary()
	now := s.now()
	order := &domain.Order{
		UserID:            user.ID,
		UserEmail:         user.Email,
		RestaurantID:      summary.RestaurantID,
		RestaurantName:    summary.RestaurantName,
		Items:             orderItems(summary.Lines),
		Subtotal:          summary.Subtotal,
		Taxes:             summary.Taxes,
		DeliveryFee:       summary.DeliveryFee,
		Total:             summary.Total,
		Address:           strings.TrimSpace(info.Address),
		PaymentMethod:     payment,
		Status:            orderstatus.Initial,
		CreatedAt:         now,
		EstimatedDelivery: now.Add(EstimatedDelivery),
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		s.notify(ctx, SeverityError, "Order Failed", "Failed to place order. Please try again.")
		return nil, fmt.Errorf("create order: %w", err)
	}

	logger := log.WithFields(log.Fields{"order_id": order.ID, "user_id": user.ID})
	if err := cart.Clear(ctx); err != nil {
		logger.Warn("order stored but cart could not be cleared: ", err)
	}

	if s.publisher != nil {
		err := s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
			Type:         EventOrderPlaced,
			OrderID:      order.ID,
			UserID:       order.UserID,
			RestaurantID: order.RestaurantID,
			Total:        order.Total,
			Status:       string(order.Status),
			Timestamp:    now,
		})
		if err != nil {
			logger.Warn("failed to publish order event: ", err)
		}
	}

	logger.WithField("total", order.Total.StringFixed(2)).Info("order placed")
	s.notify(ctx, SeveritySuccess, "Order Placed", fmt.Sprintf("Your order from %s has been placed.", order.RestaurantName))
	return order, nil
}

func orderItems(lines []domain.CartLine) []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, domain.OrderItem{
			ItemID:   l.ID,
			Name:     l.Name,
			Category: l.Category,
			IsVeg:    l.IsVeg,
			Price:    l.Price,
			Quantity: l.Quantity,
		})
	}
	return items
}

func (s *OrderService) History(ctx context.Context, user *domain.User) ([]domain.Order, error) {
	if user == nil || user.ID == "" {
		return nil, ErrUnauthenticated
	}
	orders, err := s.repo.ListOrdersByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

// Get only returns orders that belong to user.
func (s *OrderService) Get(ctx context.Context, user *domain.User, orderID string) (*domain.Order, error) {
	if user == nil || user.ID == "" {
		return nil, ErrUnauthenticated
	}
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != user.ID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// Status prefers the status cache written by the status consumer and falls
// back to the stored order.
func (s *OrderService) Status(ctx context.Context, user *domain.User, orderID string) (domain.StatusView, error) {
	order, err := s.Get(ctx, user, orderID)
	if err != nil {
		return domain.StatusView{}, err
	}

	status := order.Status
	if s.statuses != nil {
		cached, ok, err := s.statuses.GetStatus(ctx, orderID)
		switch {
		case err != nil:
			log.WithField("order_id", orderID).Warn("status cache unavailable: ", err)
		case ok:
			status = cached
		}
	}
	return domain.StatusView{OrderID: orderID, Status: status, Info: status.Info()}, nil
}

// Reorder replaces the cart with the lines of a previous order.
func (s *OrderService) Reorder(ctx context.Context, user *domain.User, cart *CartEngine, orderID string) (domain.Summary, error) {
	order, err := s.Get(ctx, user, orderID)
	if err != nil {
		return domain.Summary{}, err
	}

	restaurant := domain.RestaurantRef{ID: order.RestaurantID, Name: order.RestaurantName}
	lines := make([]domain.CartLine, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, domain.CartLine{
			MenuItem: domain.MenuItem{ID: item.ItemID, Name: item.Name, Price: item.Price, IsVeg: item.IsVeg, Category: item.Category},
			Quantity: item.Quantity,
		})
	}
	if err := cart.Replace(ctx, restaurant, lines); err != nil {
		return domain.Summary{}, err
	}

	s.notify(ctx, SeveritySuccess, "Items Added", "Items from your previous order have been added to cart.")
	return cart.Summary(), nil
}

func (s *OrderService) QRCode(ctx context.Context, user *domain.User, orderID string) ([]byte, error) {
	order, err := s.Get(ctx, user, orderID)
	if err != nil {
		return nil, err
	}
	if s.qr == nil {
		return nil, errors.New("qr codes are not configured")
	}
	return s.qr.Generate(order.ID)
}

func (s *OrderService) notify(ctx context.Context, severity Severity, title, message string) {
	if s.notifier != nil {
		s.notifier.Notify(ctx, severity, title, message)
	}
}
