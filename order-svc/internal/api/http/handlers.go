package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fastfoodz/order-svc/internal/auth"
	"fastfoodz/order-svc/internal/domain"
	"fastfoodz/order-svc/internal/service"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	Carts        service.CartServiceInterface
	Orders       service.OrderServiceInterface
	Authenticate mux.MiddlewareFunc
}

func NewHandler(carts service.CartServiceInterface, orders service.OrderServiceInterface, authenticate mux.MiddlewareFunc) *Handler {
	return &Handler{Carts: carts, Orders: orders, Authenticate: authenticate}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	if h.Authenticate != nil {
		api.Use(h.Authenticate)
	}

	api.HandleFunc("/cart", h.getCart).Methods("GET")
	api.HandleFunc("/cart", h.clearCart).Methods("DELETE")
	api.HandleFunc("/cart/items", h.addItem).Methods("POST")
	api.HandleFunc("/cart/items/{itemId}/increase", h.increaseItem).Methods("POST")
	api.HandleFunc("/cart/items/{itemId}/decrease", h.decreaseItem).Methods("POST")
	api.HandleFunc("/cart/items/{itemId}", h.setQuantity).Methods("PUT")
	api.HandleFunc("/cart/items/{itemId}", h.removeItem).Methods("DELETE")
	api.HandleFunc("/session/signout", h.signOut).Methods("POST")

	api.HandleFunc("/orders", h.placeOrder).Methods("POST")
	api.HandleFunc("/orders", h.getOrders).Methods("GET")
	api.HandleFunc("/orders/{id}", h.getOrder).Methods("GET")
	api.HandleFunc("/orders/{id}/status", h.getOrderStatus).Methods("GET")
	api.HandleFunc("/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	api.HandleFunc("/orders/{id}/reorder", h.reorder).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

type addItemRequest struct {
	Item       domain.MenuItem      `json:"item"`
	Restaurant domain.RestaurantRef `json:"restaurant"`
	Replace    bool                 `json:"replace"`
}

type addItemResponse struct {
	Added             bool                  `json:"added"`
	CurrentRestaurant *domain.RestaurantRef `json:"current_restaurant,omitempty"`
	Cart              domain.Summary        `json:"cart"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	h.withCart(w, r, func(cart *service.CartEngine) error {
		writeJSON(w, http.StatusOK, cart.Summary())
		return nil
	})
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.mutateCart(w, r, func(cart *service.CartEngine) error {
		return cart.Clear(r.Context())
	})
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	h.withCart(w, r, func(cart *service.CartEngine) error {
		if err := cart.Clear(r.Context()); err != nil {
			return err
		}
		w.WriteHeader(http.StatusNoContent)
		return nil
	})
}

// addItem answers 409 when the cart holds items from another restaurant and
// the client did not ask to replace them.
func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.withCart(w, r, func(cart *service.CartEngine) error {
		added, err := cart.AddItem(r.Context(), req.Item, req.Restaurant, func(_, _ domain.RestaurantRef) bool {
			return req.Replace
		})
		if err != nil {
			return err
		}

		resp := addItemResponse{Added: added, Cart: cart.Summary()}
		if !added {
			current := cart.Restaurant()
			resp.CurrentRestaurant = &current
			writeJSON(w, http.StatusConflict, resp)
			return nil
		}
		writeJSON(w, http.StatusOK, resp)
		return nil
	})
}

func (h *Handler) increaseItem(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]
	h.mutateCart(w, r, func(cart *service.CartEngine) error {
		return cart.IncreaseQuantity(r.Context(), itemID)
	})
}

func (h *Handler) decreaseItem(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]
	h.mutateCart(w, r, func(cart *service.CartEngine) error {
		return cart.DecreaseQuantity(r.Context(), itemID)
	})
}

func (h *Handler) setQuantity(w http.ResponseWriter, r *http.Request) {
	var req quantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	itemID := mux.Vars(r)["itemId"]
	h.mutateCart(w, r, func(cart *service.CartEngine) error {
		return cart.SetQuantity(r.Context(), itemID, req.Quantity)
	})
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]
	h.mutateCart(w, r, func(cart *service.CartEngine) error {
		return cart.RemoveItem(r.Context(), itemID)
	})
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var info domain.DeliveryInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.withCart(w, r, func(cart *service.CartEngine) error {
		order, err := h.Orders.PlaceOrder(r.Context(), auth.UserFromContext(r.Context()), cart, info)
		if err != nil {
			return err
		}
		writeJSON(w, http.StatusCreated, order)
		return nil
	})
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.History(r.Context(), auth.UserFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(r.Context(), auth.UserFromContext(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.Orders.Status(r.Context(), auth.UserFromContext(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Orders.QRCode(r.Context(), auth.UserFromContext(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) reorder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	h.withCart(w, r, func(cart *service.CartEngine) error {
		summary, err := h.Orders.Reorder(r.Context(), auth.UserFromContext(r.Context()), cart, orderID)
		if err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, summary)
		return nil
	})
}

func (h *Handler) withCart(w http.ResponseWriter, r *http.Request, fn func(*service.CartEngine) error) {
	if err := h.Carts.WithCart(r.Context(), auth.UserFromContext(r.Context()), fn); err != nil {
		writeError(w, r, err)
	}
}

// mutateCart runs fn and responds with the resulting cart summary.
func (h *Handler) mutateCart(w http.ResponseWriter, r *http.Request, fn func(*service.CartEngine) error) {
	h.withCart(w, r, func(cart *service.CartEngine) error {
		if err := fn(cart); err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, cart.Summary())
		return nil
	})
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		http.Error(w, "Please sign in to continue", http.StatusUnauthorized)
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidItem),
		errors.Is(err, service.ErrMissingAddress):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrItemNotInCart),
		errors.Is(err, service.ErrOrderNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.WithField("path", r.URL.Path).Error(err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
