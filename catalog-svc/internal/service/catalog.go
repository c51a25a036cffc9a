package service

import (
	"sort"
	"strings"

	"fastfoodz/catalog-svc/internal/domain"
	"fastfoodz/geo"
)

type Criteria struct {
	Search             string
	Cuisine            string
	MinRating          float64
	MaxDeliveryMinutes int
	VegOnly            bool
}

func (c Criteria) active() bool {
	return c.Search != "" || c.Cuisine != "" || c.MinRating > 0 || c.MaxDeliveryMinutes > 0 || c.VegOnly
}

// Catalog is the working restaurant list of one session, kept in ascending
// distance order, plus the filter criteria applied to it.
type Catalog struct {
	origin   geo.Coordinate
	all      []domain.Restaurant
	criteria Criteria
	filtered []domain.Restaurant
	computed bool
}

func NewCatalog(origin geo.Coordinate, restaurants []domain.Restaurant) *Catalog {
	list := make([]domain.Restaurant, len(restaurants))
	copy(list, restaurants)
	for i := range list {
		list[i].Distance = geo.DistanceKm(origin, list[i].Position())
		list[i].DistanceLabel = geo.FormatDistance(list[i].Distance)
	}
	geo.SortByDistance(origin, list)
	return &Catalog{origin: origin, all: list}
}

// truncate keeps the n nearest restaurants and drops any computed filter.
func (c *Catalog) truncate(n int) {
	if n >= 0 && len(c.all) > n {
		c.all = c.all[:n]
		c.filtered, c.computed = nil, false
	}
}

func (c *Catalog) Origin() geo.Coordinate { return c.origin }

func (c *Catalog) Criteria() Criteria { return c.criteria }

func (c *Catalog) All() []domain.Restaurant { return c.all }

func (c *Catalog) SetSearch(text string) []domain.Restaurant {
	c.criteria.Search = strings.TrimSpace(text)
	return c.apply()
}

func (c *Catalog) SetCuisine(cuisine string) []domain.Restaurant {
	c.criteria.Cuisine = strings.TrimSpace(cuisine)
	return c.apply()
}

func (c *Catalog) SetRating(min float64) []domain.Restaurant {
	c.criteria.MinRating = min
	return c.apply()
}

func (c *Catalog) SetDeliveryTime(maxMinutes int) []domain.Restaurant {
	c.criteria.MaxDeliveryMinutes = maxMinutes
	return c.apply()
}

func (c *Catalog) SetVeg(vegOnly bool) []domain.Restaurant {
	c.criteria.VegOnly = vegOnly
	return c.apply()
}

// Apply replaces all criteria at once.
func (c *Catalog) Apply(criteria Criteria) []domain.Restaurant {
	c.criteria = criteria
	c.criteria.Search = strings.TrimSpace(criteria.Search)
	c.criteria.Cuisine = strings.TrimSpace(criteria.Cuisine)
	return c.apply()
}

func (c *Catalog) Clear() []domain.Restaurant {
	c.criteria = Criteria{}
	return c.apply()
}

// Restaurants returns the last filtered list. Before any criterion has been
// applied it is the full list.
func (c *Catalog) Restaurants() []domain.Restaurant {
	if !c.computed && !c.criteria.active() {
		return c.all
	}
	return c.filtered
}

func (c *Catalog) apply() []domain.Restaurant {
	out := make([]domain.Restaurant, 0, len(c.all))
	for _, r := range c.all {
		if c.matches(r) {
			out = append(out, r)
		}
	}
	c.filtered = out
	c.computed = true
	return out
}

func (c *Catalog) matches(r domain.Restaurant) bool {
	crit := c.criteria
	if crit.Search != "" && !matchesSearch(r, strings.ToLower(crit.Search)) {
		return false
	}
	if crit.Cuisine != "" && !hasCuisine(r, strings.ToLower(crit.Cuisine)) {
		return false
	}
	if crit.MinRating > 0 && r.Rating < crit.MinRating {
		return false
	}
	if crit.MaxDeliveryMinutes > 0 && r.DeliveryTime.Max > crit.MaxDeliveryMinutes {
		return false
	}
	if crit.VegOnly && !r.IsVeg {
		return false
	}
	return true
}

func matchesSearch(r domain.Restaurant, q string) bool {
	if strings.Contains(strings.ToLower(r.Name), q) {
		return true
	}
	for _, cuisine := range r.Cuisines {
		if strings.Contains(strings.ToLower(cuisine), q) {
			return true
		}
	}
	for _, item := range r.Menu {
		if strings.Contains(strings.ToLower(item.Name), q) {
			return true
		}
	}
	return false
}

func hasCuisine(r domain.Restaurant, cuisine string) bool {
	for _, c := range r.Cuisines {
		if strings.Contains(strings.ToLower(c), cuisine) {
			return true
		}
	}
	return false
}

// Cuisines lists every distinct cuisine in the catalog, sorted.
func (c *Catalog) Cuisines() []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, r := range c.all {
		for _, cuisine := range r.Cuisines {
			if _, ok := seen[cuisine]; ok {
				continue
			}
			seen[cuisine] = struct{}{}
			out = append(out, cuisine)
		}
	}
	sort.Strings(out)
	return out
}

func (c *Catalog) ByID(id string) (domain.Restaurant, error) {
	for _, r := range c.all {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Restaurant{}, ErrRestaurantNotFound
}

func (c *Catalog) Menu(id string) ([]domain.MenuItem, error) {
	r, err := c.ByID(id)
	if err != nil {
		return nil, err
	}
	return r.Menu, nil
}

// SearchMenuItems finds dishes across all restaurants by name or description.
func (c *Catalog) SearchMenuItems(query string) []domain.MenuMatch {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []domain.MenuMatch{}
	if q == "" {
		return out
	}
	for _, r := range c.all {
		for _, item := range r.Menu {
			if strings.Contains(strings.ToLower(item.Name), q) || strings.Contains(strings.ToLower(item.Description), q) {
				out = append(out, domain.MenuMatch{MenuItem: item, RestaurantID: r.ID, RestaurantName: r.Name})
			}
		}
	}
	return out
}

func (c *Catalog) WithinRadius(km float64) []domain.Restaurant {
	out := []domain.Restaurant{}
	for _, r := range c.all {
		if r.Distance <= km {
			out = append(out, r)
		}
	}
	return out
}
