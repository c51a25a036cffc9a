package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"fastfoodz/order-svc/internal/domain"

	log "github.com/sirupsen/logrus"
)

var (
	ErrItemNotInCart = errors.New("item is not in the cart")
	ErrInvalidItem   = errors.New("invalid menu item")
)

// Confirmer is asked before a cart bound to current is replaced by an item
// from incoming. Returning false leaves the cart untouched.
type Confirmer func(current, incoming domain.RestaurantRef) bool

// CartEngine owns one user's cart. Every successful mutation is persisted
// before listeners are notified.
type CartEngine struct {
	userID    string
	store     CartStore
	cart      domain.Cart
	listeners []CartListener
}

func NewCartEngine(userID string, store CartStore, cart domain.Cart) *CartEngine {
	return &CartEngine{userID: userID, store: store, cart: cart.Clone()}
}

func (e *CartEngine) Subscribe(listener CartListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *CartEngine) UserID() string { return e.userID }

func (e *CartEngine) Cart() domain.Cart { return e.cart.Clone() }

func (e *CartEngine) Restaurant() domain.RestaurantRef {
	return domain.RestaurantRef{ID: e.cart.RestaurantID, Name: e.cart.RestaurantName}
}

// AddItem adds one unit of item. A cart bound to another restaurant is only
// replaced when confirm approves; otherwise added is false.
func (e *CartEngine) AddItem(ctx context.Context, item domain.MenuItem, restaurant domain.RestaurantRef, confirm Confirmer) (bool, error) {
	if err := validateItem(item, restaurant); err != nil {
		return false, err
	}

	replace := false
	if !e.cart.Empty() && e.cart.RestaurantID != restaurant.ID {
		if confirm == nil || !confirm(e.Restaurant(), restaurant) {
			return false, nil
		}
		replace = true
	}

	err := e.mutate(ctx, func(c *domain.Cart) {
		if replace {
			*c = domain.Cart{}
		}
		if c.Empty() {
			c.RestaurantID = restaurant.ID
			c.RestaurantName = restaurant.Name
		}
		if i := indexOf(c.Lines, item.ID); i >= 0 {
			c.Lines[i].Quantity++
			return
		}
		c.Lines = append(c.Lines, domain.CartLine{
			MenuItem:       item,
			Quantity:       1,
			RestaurantID:   restaurant.ID,
			RestaurantName: restaurant.Name,
		})
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Replace swaps the whole cart for lines from restaurant in a single save.
// Repeated items are merged. On any error the current cart is kept.
func (e *CartEngine) Replace(ctx context.Context, restaurant domain.RestaurantRef, lines []domain.CartLine) error {
	next := domain.Cart{RestaurantID: restaurant.ID, RestaurantName: restaurant.Name}
	for _, line := range lines {
		if err := validateItem(line.MenuItem, restaurant); err != nil {
			return err
		}
		if line.Quantity < 1 {
			return fmt.Errorf("%w: %q has quantity %d", ErrInvalidItem, line.ID, line.Quantity)
		}
		if i := indexOf(next.Lines, line.ID); i >= 0 {
			next.Lines[i].Quantity += line.Quantity
			continue
		}
		line.RestaurantID, line.RestaurantName = restaurant.ID, restaurant.Name
		next.Lines = append(next.Lines, line)
	}

	return e.mutate(ctx, func(c *domain.Cart) {
		*c = next
	})
}

func (e *CartEngine) IncreaseQuantity(ctx context.Context, itemID string) error {
	return e.SetQuantity(ctx, itemID, e.Quantity(itemID)+1)
}

// DecreaseQuantity removes the line when its quantity would drop below one.
func (e *CartEngine) DecreaseQuantity(ctx context.Context, itemID string) error {
	return e.SetQuantity(ctx, itemID, e.Quantity(itemID)-1)
}

// SetQuantity removes the line when quantity is zero or less.
func (e *CartEngine) SetQuantity(ctx context.Context, itemID string, quantity int) error {
	if !e.Contains(itemID) {
		return fmt.Errorf("%w: %s", ErrItemNotInCart, itemID)
	}
	return e.mutate(ctx, func(c *domain.Cart) {
		i := indexOf(c.Lines, itemID)
		if quantity <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
		c.Lines[i].Quantity = quantity
	})
}

func (e *CartEngine) RemoveItem(ctx context.Context, itemID string) error {
	return e.SetQuantity(ctx, itemID, 0)
}

func (e *CartEngine) Clear(ctx context.Context) error {
	return e.mutate(ctx, func(c *domain.Cart) {
		*c = domain.Cart{}
	})
}

func (e *CartEngine) Contains(itemID string) bool {
	return indexOf(e.cart.Lines, itemID) >= 0
}

func (e *CartEngine) Quantity(itemID string) int {
	if i := indexOf(e.cart.Lines, itemID); i >= 0 {
		return e.cart.Lines[i].Quantity
	}
	return 0
}

func (e *CartEngine) ItemCount() int {
	return Price(e.cart).ItemCount
}

func (e *CartEngine) Summary() domain.Summary {
	return Price(e.cart)
}

func (e *CartEngine) mutate(ctx context.Context, apply func(*domain.Cart)) error {
	next := e.cart.Clone()
	apply(&next)
	if next.Empty() {
		next = domain.Cart{}
	}

	if err := e.store.SaveCart(ctx, e.userID, next); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	e.cart = next

	summary := Price(next)
	for _, l := range e.listeners {
		l.CartChanged(ctx, e.userID, summary)
	}
	return nil
}

func validateItem(item domain.MenuItem, restaurant domain.RestaurantRef) error {
	if strings.TrimSpace(item.ID) == "" || strings.TrimSpace(item.Name) == "" || !item.Price.IsPositive() {
		return fmt.Errorf("%w: %q", ErrInvalidItem, item.ID)
	}
	if strings.TrimSpace(restaurant.ID) == "" {
		return fmt.Errorf("%w: item %q has no restaurant", ErrInvalidItem, item.ID)
	}
	return nil
}

func indexOf(lines []domain.CartLine, itemID string) int {
	for i, l := range lines {
		if l.ID == itemID {
			return i
		}
	}
	return -1
}

// CartService hands out cart engines and serializes mutations per user.
type CartService struct {
	store     CartStore
	listeners []CartListener
	locks     sync.Map
}

func NewCartService(store CartStore, listeners ...CartListener) *CartService {
	return &CartService{store: store, listeners: listeners}
}

// WithCart loads the user's cart and runs fn while holding the user's lock.
func (s *CartService) WithCart(ctx context.Context, user *domain.User, fn func(*CartEngine) error) error {
	if user == nil || user.ID == "" {
		return ErrUnauthenticated
	}

	mu, _ := s.locks.LoadOrStore(user.ID, &sync.Mutex{})
	mu.(*sync.Mutex).Lock()
	defer mu.(*sync.Mutex).Unlock()

	cart, err := s.store.LoadCart(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}

	engine := NewCartEngine(user.ID, s.store, cart)
	for _, l := range s.listeners {
		engine.Subscribe(l)
	}
	return fn(engine)
}

// LogListener records cart changes in the service log.
type LogListener struct{}

func (LogListener) CartChanged(_ context.Context, userID string, summary domain.Summary) {
	log.WithFields(log.Fields{
		"user_id":    userID,
		"restaurant": summary.RestaurantID,
		"items":      summary.ItemCount,
		"total":      summary.Total.StringFixed(2),
	}).Debug("cart updated")
}
