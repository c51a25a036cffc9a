package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	CatalogSvcURL string
	OrderSvcURL   string
	FrontendDir   string
}

type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	return &Gateway{
		config: config,
		client: client,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Info describes the public API at the root path.
func (g *Gateway) Info(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status":  "ok",
		"message": "FastFoodz backend is running",
		"endpoints": map[string]string{
			"restaurants": "/api/restaurants?lat=<latitude>&lng=<longitude>&radius=<meters>&limit=<number>",
			"restaurant":  "/api/restaurants/{id}",
			"menu":        "/api/restaurants/{id}/menu",
			"cuisines":    "/api/cuisines",
			"menu_search": "/api/menu/search?q=<text>",
			"signout":     "/api/session/signout",
			"cart":        "/api/cart",
			"orders":      "/api/orders",
		},
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// ProxyRequest forwards r to targetURL keeping path, query, headers and body.
func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	entry := log.WithFields(log.Fields{
		"request_id": r.Header.Get(RequestIDHeader),
		"method":     r.Method,
		"path":       r.URL.Path,
		"target":     targetURL,
	})
	entry.Debug("proxying request")

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		entry.Error("failed to create request: ", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}
	if ip := clientIP(r); ip != "" {
		req.Header.Set("X-Forwarded-For", ip)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		entry.Error("upstream unavailable: ", err)
		http.Error(w, "Service unavailable", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		entry.Warn("failed to copy response: ", err)
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host := r.RemoteAddr
	if i := strings.LastIndex(host, ":"); i > 0 {
		host = host[:i]
	}
	return strings.Trim(host, "[]")
}

// Target returns the base URL of the service owning path, or "" when no
// service does.
func (g *Gateway) Target(path string) string {
	switch {
	case path == "/api/restaurants" || strings.HasPrefix(path, "/api/restaurants/"),
		path == "/api/cuisines",
		strings.HasPrefix(path, "/api/menu/"):
		return g.config.CatalogSvcURL
	case path == "/api/cart" || strings.HasPrefix(path, "/api/cart/"),
		path == "/api/orders" || strings.HasPrefix(path, "/api/orders/"),
		strings.HasPrefix(path, "/api/session/"):
		return g.config.OrderSvcURL
	}
	return ""
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	if target := g.Target(path); target != "" {
		g.ProxyRequest(w, r, target)
		return
	}

	if strings.HasPrefix(path, "/api/") {
		log.WithField("path", path).Info("unmatched API route")
		http.Error(w, "API route not found", http.StatusNotFound)
		return
	}

	if g.config.FrontendDir == "" {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, filepath.Join(g.config.FrontendDir, "index.html"))
}

// RequestID tags every request with a correlation id, reusing one sent by the client.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
			r.Header.Set(RequestIDHeader, id)
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.Use(RequestID)
	r.HandleFunc("/", g.Info).Methods("GET")
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(g.config.FrontendDir))))
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}
