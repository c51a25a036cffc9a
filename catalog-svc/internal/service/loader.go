package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"fastfoodz/catalog-svc/internal/domain"
	"fastfoodz/geo"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultRadiusMeters = 5000
	DefaultLimit        = 50
	MaxRadiusMeters     = 25000
	MaxLimit            = 200
)

var (
	ErrLoadInFlight       = errors.New("a catalog load for this area is already in progress")
	ErrRestaurantNotFound = errors.New("restaurant not found")
)

// Loader resolves the user location, fetches nearby restaurants and builds a
// fresh Catalog. Only one upstream fetch per area runs at a time; cached
// areas are served without taking the flag.
type Loader struct {
	locator  Locator
	provider RestaurantProvider
	cache    RestaurantCache
	inFlight sync.Map
}

// NewLoader accepts a nil locator or cache; the default coordinate and a
// direct fetch are used instead.
func NewLoader(locator Locator, provider RestaurantProvider, cache RestaurantCache) *Loader {
	return &Loader{locator: locator, provider: provider, cache: cache}
}

func (l *Loader) Load(ctx context.Context, hint domain.Hint) (*Catalog, error) {
	return l.load(ctx, hint, false)
}

// Refresh drops any cached result for the area before loading.
func (l *Loader) Refresh(ctx context.Context, hint domain.Hint) (*Catalog, error) {
	return l.load(ctx, hint, true)
}

func (l *Loader) load(ctx context.Context, hint domain.Hint, refresh bool) (*Catalog, error) {
	origin := l.resolve(ctx, hint)
	radius, limit := bounds(hint)

	key := areaKey(origin, radius)
	if l.cache != nil {
		key = l.cache.AreaKey(origin, radius)
	}

	restaurants, err := l.area(ctx, key, origin, radius, refresh)
	if err != nil {
		return nil, err
	}

	catalog := NewCatalog(origin, restaurants)
	catalog.truncate(limit)
	log.WithFields(log.Fields{"area": key, "count": len(catalog.all)}).Debug("catalog loaded")
	return catalog, nil
}

// area returns every restaurant known for the area, up to MaxLimit. Callers
// trim after sorting so the cached list serves any requested limit.
func (l *Loader) area(ctx context.Context, key string, origin geo.Coordinate, radius int, refresh bool) ([]domain.Restaurant, error) {
	if l.cache != nil {
		if refresh {
			if err := l.cache.Delete(ctx, key); err != nil {
				log.WithField("area", key).Warn("failed to drop cached catalog: ", err)
			}
		} else if cached, ok, err := l.cache.Get(ctx, key); err != nil {
			log.WithField("area", key).Warn("catalog cache unavailable: ", err)
		} else if ok {
			return cached, nil
		}
	}

	if _, busy := l.inFlight.LoadOrStore(key, struct{}{}); busy {
		return nil, ErrLoadInFlight
	}
	defer l.inFlight.Delete(key)

	restaurants, err := l.provider.SearchRestaurants(ctx, origin, radius, MaxLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch restaurants: %w", err)
	}

	if l.cache != nil {
		if err := l.cache.Set(ctx, key, restaurants); err != nil {
			log.WithField("area", key).Warn("failed to cache catalog: ", err)
		}
	}
	return restaurants, nil
}

func (l *Loader) resolve(ctx context.Context, hint domain.Hint) geo.Coordinate {
	if hint.Coordinate != nil && hint.Coordinate.Valid() {
		return *hint.Coordinate
	}
	if l.locator == nil {
		return geo.DefaultLocation
	}
	origin, err := l.locator.Locate(ctx, hint.ClientIP)
	if err != nil || !origin.Valid() {
		log.WithField("ip", hint.ClientIP).Info("location unavailable, using default: ", err)
		return geo.DefaultLocation
	}
	return origin
}

func bounds(hint domain.Hint) (int, int) {
	radius, limit := hint.RadiusMeters, hint.Limit
	if radius <= 0 {
		radius = DefaultRadiusMeters
	}
	if radius > MaxRadiusMeters {
		radius = MaxRadiusMeters
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return radius, limit
}

func areaKey(origin geo.Coordinate, radius int) string {
	return fmt.Sprintf("%.4f_%.4f_%d", origin.Lat, origin.Lng, radius)
}
