// Package geo holds the great-circle helpers shared by the catalog and order services.
package geo

import (
	"fmt"
	"math"
	"sort"
)

const earthRadiusKm = 6371.0

// DefaultLocation is used whenever the user's position cannot be resolved (Kolkata).
var DefaultLocation = Coordinate{Lat: 22.5726, Lng: 88.3639}

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether c is a finite coordinate inside the lat/lng ranges.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// DistanceKm returns the haversine distance between a and b in kilometers,
// rounded to one decimal place. NaN inputs yield NaN.
func DistanceKm(a, b Coordinate) float64 {
	return math.Round(distanceKm(a, b)*10) / 10
}

func distanceKm(a, b Coordinate) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// DistanceMeters is the unrounded distance in meters, used for delivery estimates.
func DistanceMeters(a, b Coordinate) float64 {
	return distanceKm(a, b) * 1000
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// FormatDistance renders sub-kilometer distances in meters.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%d m", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%g km", km)
}

// DeliveryWindow estimates the delivery range in minutes: five minutes per
// started 500 m on top of a fifteen minute base, with a ten minute spread.
func DeliveryWindow(distanceMeters float64) (minMinutes, maxMinutes int) {
	minMinutes = int(math.Ceil(distanceMeters/500))*5 + 15
	return minMinutes, minMinutes + 10
}

// Located is anything with a position.
type Located interface {
	Position() Coordinate
}

// SortByDistance stably sorts items by ascending distance from origin.
func SortByDistance[T Located](origin Coordinate, items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return DistanceKm(origin, items[i].Position()) < DistanceKm(origin, items[j].Position())
	})
}
