package overpass

import (
	"fmt"
	"strconv"
	"strings"

	"fastfoodz/catalog-svc/internal/domain"
	"fastfoodz/geo"
)

const sourceName = "OpenStreetMap"

var amenityCuisine = map[string]string{
	"restaurant": "Restaurant",
	"cafe":       "Cafe",
	"fast_food":  "Fast Food",
}

func transform(el element, origin geo.Coordinate) (domain.Restaurant, error) {
	name := strings.TrimSpace(el.Tags["name"])
	if name == "" {
		return domain.Restaurant{}, fmt.Errorf("%w: element %d has no name", domain.ErrInvalidRecord, el.ID)
	}

	pos := origin
	switch {
	case el.Lat != nil && el.Lon != nil:
		pos = geo.Coordinate{Lat: *el.Lat, Lng: *el.Lon}
	case el.Center != nil:
		pos = geo.Coordinate{Lat: el.Center.Lat, Lng: el.Center.Lon}
	}

	minutes, maxMinutes := geo.DeliveryWindow(geo.DistanceMeters(origin, pos))
	id := fmt.Sprintf("osm_%d", el.ID)
	cuisines := parseCuisines(el.Tags)
	seed := newSeed(id)

	rest := domain.Restaurant{
		ID:           id,
		Name:         name,
		Cuisines:     cuisines,
		DeliveryTime: domain.DeliveryTime{Min: minutes, Max: maxMinutes},
		Location: domain.Location{
			Lat:     pos.Lat,
			Lng:     pos.Lng,
			Address: address(el.Tags, pos),
		},
		IsVeg:       isVeg(el.Tags, name),
		IsOpen:      true,
		Distance:    geo.DistanceKm(origin, pos),
		PriceForTwo: seed.priceForTwo(),
		Menu:        seed.menu(id, cuisines),
		Placeholder: true,
		Source:      sourceName,
	}

	if raw, ok := el.Tags["rating"]; ok {
		if rating, err := strconv.ParseFloat(raw, 64); err == nil {
			rest.Rating = rating
		}
	}
	if rest.Rating == 0 {
		rest.Rating = seed.rating()
	}

	if err := rest.Validate(); err != nil {
		return domain.Restaurant{}, err
	}
	return rest, nil
}

func parseCuisines(tags map[string]string) []string {
	var cuisines []string
	for _, raw := range strings.Split(tags["cuisine"], ";") {
		c := strings.TrimSpace(raw)
		if c == "" {
			continue
		}
		c = strings.ReplaceAll(c, "_", " ")
		r := []rune(c)
		cuisines = append(cuisines, strings.ToUpper(string(r[0]))+string(r[1:]))
	}
	if len(cuisines) == 0 {
		if c, ok := amenityCuisine[tags["amenity"]]; ok {
			cuisines = append(cuisines, c)
		}
	}
	if len(cuisines) == 0 {
		cuisines = append(cuisines, "Multi-Cuisine")
	}
	return cuisines
}

func isVeg(tags map[string]string, name string) bool {
	diet := tags["diet"]
	return diet == "vegetarian" || diet == "vegan" ||
		tags["diet:vegetarian"] == "only" ||
		strings.Contains(strings.ToLower(name), "veg")
}

func address(tags map[string]string, pos geo.Coordinate) string {
	for _, key := range []string{"addr:full", "addr:street", "address"} {
		if v := strings.TrimSpace(tags[key]); v != "" {
			return v
		}
	}
	return fmt.Sprintf("%.4f, %.4f", pos.Lat, pos.Lng)
}
