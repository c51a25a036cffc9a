package overpass

import (
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"fastfoodz/catalog-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// OpenStreetMap has no ratings, prices or menus for most places. Those fields
// are derived from the element id so the same place always looks the same, and
// the restaurant is flagged as placeholder data.

type dish struct {
	name     string
	veg      bool
	category string
}

type menuTemplate struct {
	cuisine string
	dishes  []dish
}

var menuTemplates = []menuTemplate{
	{"chinese", []dish{{"Fried Rice", true, "Main Course"}, {"Noodles", true, "Main Course"}, {"Chicken Manchurian", false, "Starters"}, {"Spring Rolls", true, "Starters"}}},
	{"indian", []dish{{"Butter Chicken", false, "Main Course"}, {"Paneer Tikka", true, "Starters"}, {"Chicken Biryani", false, "Main Course"}, {"Dal Makhani", true, "Main Course"}}},
	{"italian", []dish{{"Pasta Alfredo", true, "Pasta"}, {"Margherita Pizza", true, "Pizza"}, {"Lasagna", false, "Main Course"}, {"Risotto", true, "Main Course"}}},
	{"japanese", []dish{{"Sushi Roll", false, "Sushi"}, {"Ramen", false, "Main Course"}, {"Vegetable Tempura", true, "Starters"}, {"Chicken Teriyaki", false, "Main Course"}}},
	{"mexican", []dish{{"Tacos", false, "Main Course"}, {"Bean Burrito", true, "Main Course"}, {"Quesadilla", true, "Main Course"}, {"Nachos", true, "Sides"}}},
	{"fast food", []dish{{"Burger", false, "Burgers"}, {"Fries", true, "Sides"}, {"Pizza", true, "Pizza"}, {"Sandwich", true, "Sandwiches"}}},
	{"cafe", []dish{{"Coffee", true, "Beverages"}, {"Sandwich", true, "Sandwiches"}, {"Pastry", true, "Desserts"}, {"Salad", true, "Salads"}}},
	{"bengali", []dish{{"Fish Curry", false, "Main Course"}, {"Mishti Doi", true, "Desserts"}, {"Rosogolla", true, "Desserts"}, {"Luchi", true, "Breads"}}},
}

var defaultDishes = []dish{
	{"Special Dish", false, "Specials"},
	{"Chef's Special", false, "Specials"},
	{"House Special", true, "Specials"},
	{"Today's Special", true, "Specials"},
}

type seed uint64

func newSeed(key string) seed {
	h := fnv.New64a()
	h.Write([]byte(key))
	return seed(h.Sum64())
}

func (s seed) derive(salt int) seed {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d:%d", uint64(s), salt)
	return seed(h.Sum64())
}

// rating is in [3.5, 5.0] with one decimal.
func (s seed) rating() float64 {
	return math.Round((3.5+float64(uint64(s)%16)/10)*10) / 10
}

// priceForTwo is in [300, 699].
func (s seed) priceForTwo() decimal.Decimal {
	return decimal.NewFromInt(300 + int64(uint64(s.derive(1))%400))
}

func dishesFor(cuisines []string) []dish {
	for _, c := range cuisines {
		lower := strings.ToLower(c)
		for _, tmpl := range menuTemplates {
			if strings.Contains(lower, tmpl.cuisine) {
				return tmpl.dishes
			}
		}
	}
	return defaultDishes
}

// menu prices are in [150, 449].
func (s seed) menu(restaurantID string, cuisines []string) []domain.MenuItem {
	dishes := dishesFor(cuisines)
	items := make([]domain.MenuItem, 0, len(dishes))
	for i, d := range dishes {
		price := decimal.NewFromInt(150 + int64(uint64(s.derive(100+i))%300))
		item, err := domain.NewMenuItem(fmt.Sprintf("%s_item_%d", restaurantID, i+1), d.name, price, d.veg, d.category)
		if err != nil {
			continue
		}
		item.Description = "Freshly prepared " + strings.ToLower(d.name)
		items = append(items, item)
	}
	return items
}
