package service

import (
	"context"

	"fastfoodz/catalog-svc/internal/domain"
	"fastfoodz/geo"
)

type Locator interface {
	Locate(ctx context.Context, ip string) (geo.Coordinate, error)
}

type RestaurantProvider interface {
	SearchRestaurants(ctx context.Context, origin geo.Coordinate, radiusMeters, limit int) ([]domain.Restaurant, error)
}

type RestaurantCache interface {
	AreaKey(origin geo.Coordinate, radiusMeters int) string
	Get(ctx context.Context, key string) ([]domain.Restaurant, bool, error)
	Set(ctx context.Context, key string, restaurants []domain.Restaurant) error
	Delete(ctx context.Context, key string) error
}

type CatalogLoader interface {
	Load(ctx context.Context, hint domain.Hint) (*Catalog, error)
	Refresh(ctx context.Context, hint domain.Hint) (*Catalog, error)
}

var _ CatalogLoader = (*Loader)(nil)
