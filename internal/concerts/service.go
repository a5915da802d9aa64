package concerts

import (
	"context"
	"strings"
	"time"

	"sonicseats/internal/shared/constants"
	"sonicseats/pkg/cache"
)

type Service interface {
	// SetCacheService injects the optional cache dependency
	SetCacheService(cacheService cache.Service, ttl time.Duration)

	GetConcertByID(ctx context.Context, id int) (*Concert, error)
	ListConcerts(ctx context.Context, query ListQuery) ([]Concert, error)
}

type service struct {
	repo         Repository
	cacheService cache.Service
	cacheTTL     time.Duration
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) SetCacheService(cacheService cache.Service, ttl time.Duration) {
	s.cacheService = cacheService
	s.cacheTTL = ttl
}

// loadCatalog reads the whole catalog, via the cache when one is configured.
func (s *service) loadCatalog(ctx context.Context) ([]Concert, error) {
	if s.cacheService != nil {
		var cached []Concert
		if err := s.cacheService.Get(ctx, constants.CacheKeyConcertCatalog, &cached); err == nil {
			return cached, nil
		}
	}

	catalog, err := s.repo.LoadAll()
	if err != nil {
		return nil, err
	}

	if s.cacheService != nil {
		// Best effort; a cache write failure never fails the read
		_ = s.cacheService.Set(ctx, constants.CacheKeyConcertCatalog, catalog, s.cacheTTL)
	}

	return catalog, nil
}

func (s *service) GetConcertByID(ctx context.Context, id int) (*Concert, error) {
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	if id < 0 || id >= len(catalog) {
		return nil, &OutOfRangeError{Count: len(catalog)}
	}

	return &catalog[id], nil
}

func (s *service) ListConcerts(ctx context.Context, query ListQuery) ([]Concert, error) {
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]Concert, 0, len(catalog))
	for _, concert := range catalog {
		if query.Artist != "" && !strings.Contains(concert.Artist, query.Artist) {
			continue
		}
		if query.Venue != "" && concert.Venue != query.Venue {
			continue
		}
		if query.City != "" && concert.City != query.City {
			continue
		}
		if query.Genre != "" && concert.Genre != query.Genre {
			continue
		}
		filtered = append(filtered, concert)
	}

	if query.Limit > 0 && query.Limit < len(filtered) {
		filtered = filtered[:query.Limit]
	}

	return filtered, nil
}
