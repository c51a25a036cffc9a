// Package geoip resolves a client IP to an approximate position via ipapi.co.
package geoip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"fastfoodz/geo"
)

const DefaultURL = "https://ipapi.co"

var ErrNoLocation = errors.New("ip location unavailable")

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
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

type lookup struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	City      string   `json:"city"`
	Country   string   `json:"country_name"`
	Error     bool     `json:"error"`
	Reason    string   `json:"reason"`
}

// Locate looks up ip. An empty or private ip asks the service for the caller's own address.
func (c *Client) Locate(ctx context.Context, ip string) (geo.Coordinate, error) {
	path := "/json/"
	if parsed := net.ParseIP(ip); parsed != nil && !parsed.IsPrivate() && !parsed.IsLoopback() {
		path = "/" + parsed.String() + "/json/"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return geo.Coordinate{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("%w: %v", ErrNoLocation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return geo.Coordinate{}, fmt.Errorf("%w: status %d", ErrNoLocation, resp.StatusCode)
	}

	var body lookup
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return geo.Coordinate{}, fmt.Errorf("%w: %v", ErrNoLocation, err)
	}
	if body.Error || body.Latitude == nil || body.Longitude == nil {
		return geo.Coordinate{}, fmt.Errorf("%w: %s", ErrNoLocation, body.Reason)
	}

	coord := geo.Coordinate{Lat: *body.Latitude, Lng: *body.Longitude}
	if !coord.Valid() {
		return geo.Coordinate{}, fmt.Errorf("%w: invalid coordinate", ErrNoLocation)
	}
	return coord, nil
}
