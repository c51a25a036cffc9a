// Package overpass fetches food places from the OpenStreetMap Overpass API.
package overpass

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"fastfoodz/catalog-svc/internal/domain"
	"fastfoodz/geo"

	log "github.com/sirupsen/logrus"
)

const DefaultURL = "https://overpass-api.de/api/interpreter"

var ErrUpstream = errors.New("overpass upstream error")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL string
	client  HTTPClient
}

func NewClient(baseURL string, client HTTPClient) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &Client{baseURL: baseURL, client: client}
}

type center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat"`
	Lon    *float64          `json:"lon"`
	Center *center           `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type response struct {
	Elements []element `json:"elements"`
}

func buildQuery(origin geo.Coordinate, radiusMeters int) string {
	var b strings.Builder
	b.WriteString("[out:json][timeout:25];\n(\n")
	for _, kind := range []string{"node", "way"} {
		for _, amenity := range []string{"restaurant", "cafe", "fast_food"} {
			fmt.Fprintf(&b, "  %s[\"amenity\"=\"%s\"](around:%d,%f,%f);\n",
				kind, amenity, radiusMeters, origin.Lat, origin.Lng)
		}
	}
	b.WriteString(");\nout center;\n")
	return b.String()
}

// SearchRestaurants returns at most limit named food places within radiusMeters of origin.
func (c *Client) SearchRestaurants(ctx context.Context, origin geo.Coordinate, radiusMeters, limit int) ([]domain.Restaurant, error) {
	form := url.Values{"data": {buildQuery(origin, radiusMeters)}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build overpass request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	log.WithFields(log.Fields{"lat": origin.Lat, "lng": origin.Lng, "radius": radiusMeters}).
		Debug("fetching restaurants from OpenStreetMap")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrUpstream, err)
	}

	restaurants := make([]domain.Restaurant, 0, len(payload.Elements))
	for _, el := range payload.Elements {
		if len(restaurants) >= limit {
			break
		}
		rest, err := transform(el, origin)
		if err != nil {
			log.WithField("element", el.ID).Debug(err)
			continue
		}
		restaurants = append(restaurants, rest)
	}

	log.WithField("count", len(restaurants)).Info("restaurants fetched from OpenStreetMap")
	return restaurants, nil
}
