package domain

import (
	"errors"
	"fmt"
	"strings"

	"fastfoodz/geo"

	"github.com/shopspring/decimal"
)

var ErrInvalidRecord = errors.New("invalid catalog record")

type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	IsVeg       bool            `json:"is_veg"`
	Category    string          `json:"category"`
}

// NewMenuItem validates a menu entry coming from a collaborator.
func NewMenuItem(id, name string, price decimal.Decimal, isVeg bool, category string) (MenuItem, error) {
	if strings.TrimSpace(id) == "" || strings.TrimSpace(name) == "" {
		return MenuItem{}, fmt.Errorf("%w: menu item needs id and name", ErrInvalidRecord)
	}
	if !price.IsPositive() {
		return MenuItem{}, fmt.Errorf("%w: menu item %s has non-positive price %s", ErrInvalidRecord, id, price)
	}
	return MenuItem{ID: id, Name: name, Price: price, IsVeg: isVeg, Category: category}, nil
}

type DeliveryTime struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (d DeliveryTime) String() string {
	return fmt.Sprintf("%d-%d min", d.Min, d.Max)
}

type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

type Restaurant struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Cuisines      []string        `json:"cuisines"`
	Rating        float64         `json:"rating"`
	DeliveryTime  DeliveryTime    `json:"delivery_time"`
	PriceForTwo   decimal.Decimal `json:"price_for_two"`
	Location      Location        `json:"location"`
	IsVeg         bool            `json:"is_veg"`
	IsOpen        bool            `json:"is_open"`
	Menu          []MenuItem      `json:"menu"`
	Distance      float64         `json:"distance"`
	DistanceLabel string          `json:"distance_label"`
	Placeholder   bool            `json:"placeholder"`
	Source        string          `json:"source"`
}

func (r Restaurant) Position() geo.Coordinate {
	return geo.Coordinate{Lat: r.Location.Lat, Lng: r.Location.Lng}
}

// Validate rejects records the rest of the catalog cannot work with.
func (r Restaurant) Validate() error {
	switch {
	case strings.TrimSpace(r.ID) == "":
		return fmt.Errorf("%w: restaurant without id", ErrInvalidRecord)
	case strings.TrimSpace(r.Name) == "":
		return fmt.Errorf("%w: restaurant %s without name", ErrInvalidRecord, r.ID)
	case r.Rating < 0 || r.Rating > 5:
		return fmt.Errorf("%w: restaurant %s rating %.1f out of range", ErrInvalidRecord, r.ID, r.Rating)
	case !r.Position().Valid():
		return fmt.Errorf("%w: restaurant %s has invalid coordinates", ErrInvalidRecord, r.ID)
	}
	return nil
}

// MenuMatch is a menu item found by a cross-restaurant search.
type MenuMatch struct {
	MenuItem
	RestaurantID   string `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
}

// Hint carries whatever the client told us about its position and how far to look.
type Hint struct {
	Coordinate   *geo.Coordinate
	ClientIP     string
	RadiusMeters int
	Limit        int
}

type CatalogResponse struct {
	Success     bool           `json:"success"`
	Total       int            `json:"total"`
	Origin      geo.Coordinate `json:"origin"`
	Restaurants []Restaurant   `json:"restaurants"`
	Source      string         `json:"source"`
}
