package httpapi

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"

	"fastfoodz/catalog-svc/internal/domain"
	"fastfoodz/catalog-svc/internal/service"
	"fastfoodz/geo"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	Loader service.CatalogLoader
}

func NewHandler(loader service.CatalogLoader) *Handler {
	return &Handler{Loader: loader}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "catalog-svc"})
	}).Methods("GET")
	r.HandleFunc("/api/restaurants", h.listRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/cuisines", h.listCuisines).Methods("GET")
	r.HandleFunc("/api/menu/search", h.searchMenu).Methods("GET")
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	catalog, ok := h.catalog(w, r)
	if !ok {
		return
	}

	criteria, err := parseCriteria(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	restaurants := catalog.Apply(criteria)

	withinKm, err := optionalFloat(r.URL.Query().Get("within_km"))
	if err != nil || withinKm < 0 {
		http.Error(w, "within_km must be a positive number", http.StatusBadRequest)
		return
	}
	if withinKm > 0 {
		restaurants = intersect(restaurants, catalog.WithinRadius(withinKm))
	}

	writeJSON(w, http.StatusOK, domain.CatalogResponse{
		Success:     true,
		Total:       len(restaurants),
		Origin:      catalog.Origin(),
		Restaurants: restaurants,
		Source:      "OpenStreetMap",
	})
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	catalog, ok := h.catalog(w, r)
	if !ok {
		return
	}
	restaurant, err := catalog.ByID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	catalog, ok := h.catalog(w, r)
	if !ok {
		return
	}
	menu, err := catalog.Menu(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) listCuisines(w http.ResponseWriter, r *http.Request) {
	catalog, ok := h.catalog(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, catalog.Cuisines())
}

func (h *Handler) searchMenu(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		http.Error(w, "q is required", http.StatusBadRequest)
		return
	}
	catalog, ok := h.catalog(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, catalog.SearchMenuItems(query))
}

// catalog loads the catalog for the request area and writes the error
// response itself when that fails.
func (h *Handler) catalog(w http.ResponseWriter, r *http.Request) (*service.Catalog, bool) {
	hint, err := parseHint(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	load := h.Loader.Load
	if r.URL.Query().Get("refresh") == "true" {
		load = h.Loader.Refresh
	}

	catalog, err := load(r.Context(), hint)
	switch {
	case errors.Is(err, service.ErrLoadInFlight):
		http.Error(w, err.Error(), http.StatusConflict)
		return nil, false
	case err != nil:
		log.WithField("path", r.URL.Path).Error("catalog load failed: ", err)
		http.Error(w, "Failed to fetch restaurants", http.StatusBadGateway)
		return nil, false
	}
	return catalog, true
}

func parseHint(r *http.Request) (domain.Hint, error) {
	q := r.URL.Query()
	hint := domain.Hint{ClientIP: clientIP(r)}

	latRaw, lngRaw := q.Get("lat"), q.Get("lng")
	if latRaw != "" || lngRaw != "" {
		lat, errLat := strconv.ParseFloat(latRaw, 64)
		lng, errLng := strconv.ParseFloat(lngRaw, 64)
		coord := geo.Coordinate{Lat: lat, Lng: lng}
		if errLat != nil || errLng != nil || !coord.Valid() {
			return hint, errors.New("lat and lng must be valid coordinates")
		}
		hint.Coordinate = &coord
	}

	var err error
	if hint.RadiusMeters, err = optionalInt(q.Get("radius")); err != nil {
		return hint, errors.New("radius must be an integer")
	}
	if hint.Limit, err = optionalInt(q.Get("limit")); err != nil {
		return hint, errors.New("limit must be an integer")
	}
	return hint, nil
}

func parseCriteria(r *http.Request) (service.Criteria, error) {
	q := r.URL.Query()
	criteria := service.Criteria{
		Search:  q.Get("q"),
		Cuisine: q.Get("cuisine"),
		VegOnly: q.Get("veg") == "true",
	}

	if raw := q.Get("rating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil || rating < 0 || rating > 5 {
			return criteria, errors.New("rating must be between 0 and 5")
		}
		criteria.MinRating = rating
	}

	maxTime, err := optionalInt(q.Get("max_time"))
	if err != nil || maxTime < 0 {
		return criteria, errors.New("max_time must be a positive integer")
	}
	criteria.MaxDeliveryMinutes = maxTime
	return criteria, nil
}

func optionalInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func optionalFloat(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

// intersect keeps the restaurants of list that also appear in allowed, in list order.
func intersect(list, allowed []domain.Restaurant) []domain.Restaurant {
	ids := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		ids[r.ID] = struct{}{}
	}
	out := make([]domain.Restaurant, 0, len(list))
	for _, r := range list {
		if _, ok := ids[r.ID]; ok {
			out = append(out, r)
		}
	}
	return out
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
