// Package service manages the service catalog. The list endpoint is the
// hottest read in the admin UI, so it is served read-through from Redis when
// a cache is configured; every mutation invalidates the cached list. Cache
// failures fail open to the store.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"regdesk/internal/catalog/models"
	"regdesk/internal/catalog/store"
	"regdesk/internal/platform/redis"
	dErrors "regdesk/pkg/domain-errors"
	"regdesk/pkg/platform/sentinel"
)

const listCacheKey = "catalog:services"

type Service struct {
	store  store.Store
	cache  *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// New constructs the catalog service. A nil cache disables caching.
func New(store store.Store, cache *redis.Client, ttl time.Duration, logger *slog.Logger) *Service {
	return &Service{store: store, cache: cache, ttl: ttl, logger: logger}
}

func (s *Service) Create(ctx context.Context, req models.CreateRequest) (*models.Service, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	svc, err := s.store.Insert(ctx, req.Service())
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeStore, "failed to create service")
	}
	s.invalidate(ctx)
	return svc, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*models.Service, error) {
	svc, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "service not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeStore, "failed to fetch service")
	}
	return svc, nil
}

// List serves from Redis when a fresh copy exists, otherwise from the store,
// repopulating the cache on the way out.
func (s *Service) List(ctx context.Context) ([]*models.Service, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, listCacheKey).Bytes()
		if err == nil {
			var cached []*models.Service
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
			s.logger.WarnContext(ctx, "corrupt catalog cache entry, falling back to store")
		}
	}

	list, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeStore, "failed to list services")
	}

	if s.cache != nil {
		if raw, err := json.Marshal(list); err == nil {
			if err := s.cache.Set(ctx, listCacheKey, raw, s.ttl).Err(); err != nil {
				s.logger.WarnContext(ctx, "failed to populate catalog cache", "error", err)
			}
		}
	}
	return list, nil
}

func (s *Service) Update(ctx context.Context, id int64, patch models.Patch) (*models.Service, error) {
	svc, err := s.store.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "service not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeStore, "failed to update service")
	}
	s.invalidate(ctx)
	return svc, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "service not found")
		}
		return dErrors.Wrap(err, dErrors.CodeStore, "failed to delete service")
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, listCacheKey).Err(); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate catalog cache", "error", err)
	}
}
