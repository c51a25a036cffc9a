package tests

import (
	"testing"

	"fastfoodz/catalog-svc/internal/domain"
	"fastfoodz/catalog-svc/internal/service"
	"fastfoodz/geo"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuItem(id, name string, price int64, veg bool) domain.MenuItem {
	return domain.MenuItem{ID: id, Name: name, Price: decimal.NewFromInt(price), IsVeg: veg, Category: "Main Course"}
}

// fixtureRestaurants are listed out of distance order on purpose.
func fixtureRestaurants() []domain.Restaurant {
	return []domain.Restaurant{
		{
			ID: "osm_3", Name: "Dragon Wok", Cuisines: []string{"Chinese"}, Rating: 4.2,
			DeliveryTime: domain.DeliveryTime{Min: 35, Max: 45},
			Location:     domain.Location{Lat: 22.62, Lng: 88.40},
			Menu:         []domain.MenuItem{menuItem("osm_3_item_1", "Hakka Noodles", 220, true)},
		},
		{
			ID: "osm_1", Name: "Spice Junction", Cuisines: []string{"Indian"}, Rating: 4.5,
			DeliveryTime: domain.DeliveryTime{Min: 15, Max: 25},
			Location:     domain.Location{Lat: 22.58, Lng: 88.37},
			Menu:         []domain.MenuItem{menuItem("osm_1_item_1", "Butter Chicken", 320, false)},
		},
		{
			ID: "osm_2", Name: "Green Leaf", Cuisines: []string{"South Indian", "Cafe"}, Rating: 3.9,
			DeliveryTime: domain.DeliveryTime{Min: 20, Max: 30}, IsVeg: true,
			Location: domain.Location{Lat: geo.DefaultLocation.Lat, Lng: geo.DefaultLocation.Lng},
			Menu: []domain.MenuItem{
				menuItem("osm_2_item_1", "Masala Dosa", 120, true),
				{ID: "osm_2_item_2", Name: "Filter Coffee", Description: "Chicory blend, brewed strong", Price: decimal.NewFromInt(60), IsVeg: true},
			},
		},
	}
}

func ids(restaurants []domain.Restaurant) []string {
	out := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, r.ID)
	}
	return out
}

func TestNewCatalog_SortsByDistance(t *testing.T) {
	catalog := service.NewCatalog(geo.DefaultLocation, fixtureRestaurants())

	got := catalog.Restaurants()
	assert.Equal(t, []string{"osm_2", "osm_1", "osm_3"}, ids(got))
	assert.Equal(t, 0.0, got[0].Distance)
	assert.Equal(t, "0 m", got[0].DistanceLabel)
	assert.Less(t, got[1].Distance, 2.0)
	assert.Greater(t, got[2].Distance, 5.0)
}

func TestCatalog_Filters(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*service.Catalog) []domain.Restaurant
		want  []string
	}{
		{
			name:  "search matches name",
			apply: func(c *service.Catalog) []domain.Restaurant { return c.SetSearch("wok") },
			want:  []string{"osm_3"},
		},
		{
			name:  "search matches menu item",
			apply: func(c *service.Catalog) []domain.Restaurant { return c.SetSearch("DOSA") },
			want:  []string{"osm_2"},
		},
		{
			name:  "search matches cuisine",
			apply: func(c *service.Catalog) []domain.Restaurant { return c.SetSearch("indian") },
			want:  []string{"osm_2", "osm_1"},
		},
		{
			name: "cuisine and rating are conjunctive",
			apply: func(c *service.Catalog) []domain.Restaurant {
				c.SetCuisine("Indian")
				return c.SetRating(4.0)
			},
			want: []string{"osm_1"},
		},
		{
			name:  "delivery time ceiling is inclusive",
			apply: func(c *service.Catalog) []domain.Restaurant { return c.SetDeliveryTime(30) },
			want:  []string{"osm_2", "osm_1"},
		},
		{
			name:  "veg only",
			apply: func(c *service.Catalog) []domain.Restaurant { return c.SetVeg(true) },
			want:  []string{"osm_2"},
		},
		{
			name: "clear restores everything",
			apply: func(c *service.Catalog) []domain.Restaurant {
				c.SetVeg(true)
				c.SetSearch("wok")
				return c.Clear()
			},
			want: []string{"osm_2", "osm_1", "osm_3"},
		},
		{
			name: "apply replaces all criteria",
			apply: func(c *service.Catalog) []domain.Restaurant {
				c.SetVeg(true)
				return c.Apply(service.Criteria{MinRating: 4.3})
			},
			want: []string{"osm_1"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			catalog := service.NewCatalog(geo.DefaultLocation, fixtureRestaurants())

			got := testCase.apply(catalog)

			assert.Equal(t, testCase.want, ids(got))
			assert.Equal(t, testCase.want, ids(catalog.Restaurants()))
		})
	}
}

func TestCatalog_EmptyFilterResultStaysEmpty(t *testing.T) {
	catalog := service.NewCatalog(geo.DefaultLocation, fixtureRestaurants())

	assert.Empty(t, catalog.SetSearch("pizza"))
	assert.Empty(t, catalog.Restaurants())
}

func TestCatalog_Lookups(t *testing.T) {
	catalog := service.NewCatalog(geo.DefaultLocation, fixtureRestaurants())

	assert.Equal(t, []string{"Cafe", "Chinese", "Indian", "South Indian"}, catalog.Cuisines())

	r, err := catalog.ByID("osm_1")
	require.NoError(t, err)
	assert.Equal(t, "Spice Junction", r.Name)

	_, err = catalog.ByID("osm_404")
	assert.ErrorIs(t, err, service.ErrRestaurantNotFound)

	menu, err := catalog.Menu("osm_2")
	require.NoError(t, err)
	assert.Len(t, menu, 2)

	_, err = catalog.Menu("osm_404")
	assert.ErrorIs(t, err, service.ErrRestaurantNotFound)

	assert.Equal(t, []string{"osm_2", "osm_1"}, ids(catalog.WithinRadius(2)))
}

func TestCatalog_SearchMenuItems(t *testing.T) {
	catalog := service.NewCatalog(geo.DefaultLocation, fixtureRestaurants())

	matches := catalog.SearchMenuItems("noodles")
	require.Len(t, matches, 1)
	assert.Equal(t, "Hakka Noodles", matches[0].Name)
	assert.Equal(t, "osm_3", matches[0].RestaurantID)
	assert.Equal(t, "Dragon Wok", matches[0].RestaurantName)

	matches = catalog.SearchMenuItems("chicory")
	require.Len(t, matches, 1)
	assert.Equal(t, "Filter Coffee", matches[0].Name)

	assert.Empty(t, catalog.SearchMenuItems("  "))
}
