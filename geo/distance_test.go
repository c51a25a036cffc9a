package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	kolkata = Coordinate{Lat: 22.5726, Lng: 88.3639}
	howrah  = Coordinate{Lat: 22.5958, Lng: 88.2636}
)

func TestDistanceKm(t *testing.T) {
	tests := []struct {
		name string
		a, b Coordinate
		want float64
	}{
		{name: "same point", a: kolkata, b: kolkata, want: 0},
		{name: "kolkata to howrah", a: kolkata, b: howrah, want: 10.6},
		{name: "one degree of latitude", a: Coordinate{0, 0}, b: Coordinate{1, 0}, want: 111.2},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, DistanceKm(testCase.a, testCase.b))
		})
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	points := []Coordinate{kolkata, howrah, {Lat: -33.86, Lng: 151.2}, {Lat: 51.5, Lng: -0.12}}
	for _, a := range points {
		for _, b := range points {
			assert.Equal(t, DistanceKm(a, b), DistanceKm(b, a))
		}
	}
}

func TestDistanceKm_NaNPropagates(t *testing.T) {
	bad := Coordinate{Lat: math.NaN(), Lng: 88}
	assert.True(t, math.IsNaN(DistanceKm(bad, kolkata)))
	assert.False(t, bad.Valid())
	assert.True(t, kolkata.Valid())
	assert.False(t, Coordinate{Lat: 91, Lng: 0}.Valid())
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "400 m", FormatDistance(0.4))
	assert.Equal(t, "0 m", FormatDistance(0))
	assert.Equal(t, "1 km", FormatDistance(1))
	assert.Equal(t, "2.5 km", FormatDistance(2.5))
}

func TestDeliveryWindow(t *testing.T) {
	tests := []struct {
		meters   float64
		min, max int
	}{
		{meters: 0, min: 15, max: 25},
		{meters: 1, min: 20, max: 30},
		{meters: 500, min: 20, max: 30},
		{meters: 1200, min: 30, max: 40},
	}
	for _, testCase := range tests {
		minutes, maxMinutes := DeliveryWindow(testCase.meters)
		assert.Equal(t, testCase.min, minutes)
		assert.Equal(t, testCase.max, maxMinutes)
	}
}

type place struct {
	name string
	at   Coordinate
}

func (p place) Position() Coordinate { return p.at }

func TestSortByDistance(t *testing.T) {
	places := []place{
		{name: "far", at: Coordinate{Lat: 23.5, Lng: 88.36}},
		{name: "here", at: kolkata},
		{name: "near", at: howrah},
	}

	SortByDistance(kolkata, places)

	assert.Equal(t, []string{"here", "near", "far"}, []string{places[0].name, places[1].name, places[2].name})
}
