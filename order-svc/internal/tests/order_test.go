package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"fastfoodz/order-svc/internal/domain"
	"fastfoodz/order-svc/internal/mocks"
	"fastfoodz/order-svc/internal/service"
	"fastfoodz/orderstatus"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	alice     = &domain.User{ID: "user-1", Email: "alice@example.com", Name: "Alice"}
	fixedTime = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
)

type orderMocks struct {
	repo      *mocks.OrderRepository
	statuses  *mocks.StatusCache
	publisher *mocks.OrderPublisher
	qr        *mocks.QRGenerator
	notifier  *mocks.Notifier
}

func newOrderService(t *testing.T) (*service.OrderService, orderMocks) {
	m := orderMocks{
		repo:      mocks.NewOrderRepository(t),
		statuses:  mocks.NewStatusCache(t),
		publisher: mocks.NewOrderPublisher(t),
		qr:        mocks.NewQRGenerator(t),
		notifier:  mocks.NewNotifier(t),
	}
	svc := service.NewOrderService(m.repo, m.statuses, m.publisher, m.qr, m.notifier).
		WithClock(func() time.Time { return fixedTime })
	return svc, m
}

func filledCart(t *testing.T) *service.CartEngine {
	t.Helper()
	store, _ := newCartStore(t)
	engine := service.NewCartEngine(alice.ID, store, domain.Cart{})
	ctx := context.Background()
	_, err := engine.AddItem(ctx, friedRice, r1, nil)
	require.NoError(t, err)
	require.NoError(t, engine.IncreaseQuantity(ctx, friedRice.ID))
	_, err = engine.AddItem(ctx, noodles, r1, nil)
	require.NoError(t, err)
	return engine
}

func TestOrderService_PlaceOrder(t *testing.T) {
	svc, m := newOrderService(t)
	cart := filledCart(t)

	m.repo.On("CreateOrder", mock.Anything, mock.AnythingOfType("*domain.Order")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Order).ID = "0b7e8f2c-4a44-4f9a-9a57-3f1f3c1b8d11"
		}).
		Return(nil).Once()
	m.publisher.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(e domain.OrderEvent) bool {
		return e.Type == service.EventOrderPlaced && e.OrderID == "0b7e8f2c-4a44-4f9a-9a57-3f1f3c1b8d11" && e.Status == "placed"
	})).Return(nil).Once()
	m.notifier.On("Notify", mock.Anything, service.SeveritySuccess, "Order Placed", mock.Anything).Return().Once()

	order, err := svc.PlaceOrder(context.Background(), alice, cart, domain.DeliveryInfo{Address: " 12 Park Street "})
	require.NoError(t, err)

	assert.Equal(t, "0b7e8f2c-4a44-4f9a-9a57-3f1f3c1b8d11", order.ID)
	assert.Equal(t, alice.ID, order.UserID)
	assert.Equal(t, alice.Email, order.UserEmail)
	assert.Equal(t, "osm_1", order.RestaurantID)
	assert.Equal(t, "Dragon Wok", order.RestaurantName)
	assert.Equal(t, "12 Park Street", order.Address)
	assert.Equal(t, service.DefaultPaymentMethod, order.PaymentMethod)
	assert.Equal(t, orderstatus.Placed, order.Status)
	assert.Equal(t, fixedTime.Add(35*time.Minute), order.EstimatedDelivery)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assertMoney(t, "330.00", order.Subtotal)
	assertMoney(t, "16.50", order.Taxes)
	assertMoney(t, "0.00", order.DeliveryFee)
	assertMoney(t, "346.50", order.Total)

	assert.Equal(t, 0, cart.ItemCount())
}

func TestOrderService_PlaceOrderFailures(t *testing.T) {
	tests := []struct {
		name      string
		user      *domain.User
		emptyCart bool
		info      domain.DeliveryInfo
		setupMock func(orderMocks)
		wantErrIs error
		wantItems int
	}{
		{
			name:      "unauthenticated",
			info:      domain.DeliveryInfo{Address: "Addr"},
			setupMock: func(orderMocks) {},
			wantErrIs: service.ErrUnauthenticated,
			wantItems: 3,
		},
		{
			name:      "empty cart",
			user:      alice,
			emptyCart: true,
			info:      domain.DeliveryInfo{Address: "Addr"},
			setupMock: func(orderMocks) {},
			wantErrIs: service.ErrEmptyCart,
		},
		{
			name:      "missing address",
			user:      alice,
			info:      domain.DeliveryInfo{Address: "  "},
			setupMock: func(orderMocks) {},
			wantErrIs: service.ErrMissingAddress,
			wantItems: 3,
		},
		{
			name: "store failure keeps cart",
			user: alice,
			info: domain.DeliveryInfo{Address: "Addr", PaymentMethod: "UPI"},
			setupMock: func(m orderMocks) {
				m.repo.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o *domain.Order) bool {
					return o.PaymentMethod == "UPI"
				})).Return(errors.New("db down")).Once()
				m.notifier.On("Notify", mock.Anything, service.SeverityError, "Order Failed", mock.Anything).Return().Once()
			},
			wantItems: 3,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, m := newOrderService(t)
			testCase.setupMock(m)

			cart := filledCart(t)
			if testCase.emptyCart {
				require.NoError(t, cart.Clear(context.Background()))
			}

			order, err := svc.PlaceOrder(context.Background(), testCase.user, cart, testCase.info)

			assert.Nil(t, order)
			require.Error(t, err)
			if testCase.wantErrIs != nil {
				assert.ErrorIs(t, err, testCase.wantErrIs)
			}
			assert.Equal(t, testCase.wantItems, cart.ItemCount())
		})
	}
}

func TestOrderService_PublishFailureDoesNotFailOrder(t *testing.T) {
	svc, m := newOrderService(t)

	m.repo.On("CreateOrder", mock.Anything, mock.Anything).Return(nil).Once()
	m.publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(errors.New("kafka down")).Once()
	m.notifier.On("Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return().Once()

	_, err := svc.PlaceOrder(context.Background(), alice, filledCart(t), domain.DeliveryInfo{Address: "Addr"})
	assert.NoError(t, err)
}

func TestOrderService_Get(t *testing.T) {
	tests := []struct {
		name      string
		user      *domain.User
		order     *domain.Order
		repoErr   error
		wantErrIs error
	}{
		{name: "own order", user: alice, order: &domain.Order{ID: "o1", UserID: alice.ID}},
		{name: "someone else's order", user: alice, order: &domain.Order{ID: "o1", UserID: "user-2"}, wantErrIs: service.ErrOrderNotFound},
		{name: "missing", user: alice, repoErr: service.ErrOrderNotFound, wantErrIs: service.ErrOrderNotFound},
		{name: "unauthenticated", wantErrIs: service.ErrUnauthenticated},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, m := newOrderService(t)
			if testCase.user != nil {
				m.repo.On("GetOrder", mock.Anything, "o1").Return(testCase.order, testCase.repoErr).Once()
			}

			order, err := svc.Get(context.Background(), testCase.user, "o1")

			if testCase.wantErrIs != nil {
				assert.ErrorIs(t, err, testCase.wantErrIs)
				assert.Nil(t, order)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "o1", order.ID)
		})
	}
}

func TestOrderService_History(t *testing.T) {
	svc, m := newOrderService(t)
	m.repo.On("ListOrdersByUser", mock.Anything, alice.ID).Return(nil, nil).Once()

	orders, err := svc.History(context.Background(), alice)

	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestOrderService_Status(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(orderMocks)
		want      orderstatus.Status
		wantLabel string
	}{
		{
			name: "cached status wins",
			setupMock: func(m orderMocks) {
				m.statuses.On("GetStatus", mock.Anything, "o1").Return(orderstatus.OutForDelivery, true, nil).Once()
			},
			want:      orderstatus.OutForDelivery,
			wantLabel: "Out for Delivery",
		},
		{
			name: "cache miss uses stored status",
			setupMock: func(m orderMocks) {
				m.statuses.On("GetStatus", mock.Anything, "o1").Return(orderstatus.Status(""), false, nil).Once()
			},
			want:      orderstatus.Placed,
			wantLabel: "Order Placed",
		},
		{
			name: "cache error uses stored status",
			setupMock: func(m orderMocks) {
				m.statuses.On("GetStatus", mock.Anything, "o1").Return(orderstatus.Status(""), false, errors.New("redis down")).Once()
			},
			want:      orderstatus.Placed,
			wantLabel: "Order Placed",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, m := newOrderService(t)
			m.repo.On("GetOrder", mock.Anything, "o1").Return(&domain.Order{ID: "o1", UserID: alice.ID, Status: orderstatus.Placed}, nil).Once()
			testCase.setupMock(m)

			view, err := svc.Status(context.Background(), alice, "o1")

			require.NoError(t, err)
			assert.Equal(t, "o1", view.OrderID)
			assert.Equal(t, testCase.want, view.Status)
			assert.Equal(t, testCase.wantLabel, view.Label)
		})
	}
}

func TestOrderService_Reorder(t *testing.T) {
	svc, m := newOrderService(t)
	previous := &domain.Order{
		ID: "o1", UserID: alice.ID, RestaurantID: r2.ID, RestaurantName: r2.Name,
		Items: []domain.OrderItem{
			{ItemID: biryani.ID, Name: biryani.Name, Price: biryani.Price, Category: biryani.Category, Quantity: 3},
		},
	}
	m.repo.On("GetOrder", mock.Anything, "o1").Return(previous, nil).Once()
	m.notifier.On("Notify", mock.Anything, service.SeveritySuccess, "Items Added", mock.Anything).Return().Once()

	cart := filledCart(t)
	summary, err := svc.Reorder(context.Background(), alice, cart, "o1")

	require.NoError(t, err)
	assert.Equal(t, r2.ID, summary.RestaurantID)
	require.Len(t, summary.Lines, 1)
	assert.Equal(t, 3, summary.Lines[0].Quantity)
	assertMoney(t, "750.00", summary.Subtotal)
}

func TestOrderService_ReorderKeepsCartOnFailure(t *testing.T) {
	tests := []struct {
		name      string
		items     []domain.OrderItem
		saveErr   error
		wantErrIs error
	}{
		{
			name: "invalid line",
			items: []domain.OrderItem{
				{ItemID: biryani.ID, Name: biryani.Name, Price: biryani.Price, Quantity: 1},
				{ItemID: "osm_2_item_9", Name: "Raita", Price: decimal.Zero, Quantity: 1},
			},
			wantErrIs: service.ErrInvalidItem,
		},
		{
			name: "store failure",
			items: []domain.OrderItem{
				{ItemID: biryani.ID, Name: biryani.Name, Price: biryani.Price, Quantity: 2},
			},
			saveErr: errors.New("redis down"),
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, m := newOrderService(t)
			previous := &domain.Order{ID: "o1", UserID: alice.ID, RestaurantID: r2.ID, RestaurantName: r2.Name, Items: testCase.items}
			m.repo.On("GetOrder", mock.Anything, "o1").Return(previous, nil).Once()

			current := domain.Cart{
				RestaurantID: r1.ID, RestaurantName: r1.Name,
				Lines: []domain.CartLine{{MenuItem: friedRice, Quantity: 2, RestaurantID: r1.ID, RestaurantName: r1.Name}},
			}
			store := mocks.NewCartStore(t)
			if testCase.saveErr != nil {
				store.On("SaveCart", mock.Anything, alice.ID, mock.Anything).Return(testCase.saveErr).Once()
			}
			cart := service.NewCartEngine(alice.ID, store, current)

			_, err := svc.Reorder(context.Background(), alice, cart, "o1")

			require.Error(t, err)
			if testCase.wantErrIs != nil {
				assert.ErrorIs(t, err, testCase.wantErrIs)
			}
			assert.Equal(t, current, cart.Cart())
		})
	}
}

func TestOrderService_QRCode(t *testing.T) {
	svc, m := newOrderService(t)
	m.repo.On("GetOrder", mock.Anything, "o1").Return(&domain.Order{ID: "o1", UserID: alice.ID}, nil).Once()
	m.qr.On("Generate", "o1").Return([]byte("png"), nil).Once()

	png, err := svc.QRCode(context.Background(), alice, "o1")

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestDefaultQRGenerator(t *testing.T) {
	png, err := service.DefaultQRGenerator{BaseURL: "http://localhost:8000"}.Generate("o1")

	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}
