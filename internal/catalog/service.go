package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yolidayhq/yoliday/internal/apperror"
)

// cacheKey is the Redis key holding the JSON-encoded destination list.
const cacheKey = "catalog:destinations"

// cacheTTL bounds staleness: a reseeded catalog shows up within this window.
const cacheTTL = 5 * time.Minute

// CatalogService defines the business logic contract for the catalog.
type CatalogService interface {
	ListDestinations(ctx context.Context) ([]Destination, error)
}

// catalogService implements CatalogService with a Redis read-through cache
// in front of the repository. Cache failures degrade to direct DB reads --
// the catalog must stay up when Redis doesn't.
type catalogService struct {
	repo  DestinationRepository
	redis *redis.Client
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo DestinationRepository, rdb *redis.Client) CatalogService {
	return &catalogService{repo: repo, redis: rdb}
}

// ListDestinations returns the destination catalog, served from Redis when
// a fresh copy is cached.
func (s *catalogService) ListDestinations(ctx context.Context) ([]Destination, error) {
	if s.redis != nil {
		data, err := s.redis.Get(ctx, cacheKey).Bytes()
		if err == nil {
			var destinations []Destination
			if err := json.Unmarshal(data, &destinations); err == nil {
				return destinations, nil
			}
			// Corrupt cache entry: fall through to the DB and overwrite it.
		} else if err != redis.Nil {
			slog.Warn("catalog cache read failed",
				slog.Any("error", err),
			)
		}
	}

	destinations, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("loading destinations: %w", err))
	}

	if s.redis != nil {
		if data, err := json.Marshal(destinations); err == nil {
			if err := s.redis.Set(ctx, cacheKey, data, cacheTTL).Err(); err != nil {
				slog.Warn("catalog cache write failed",
					slog.Any("error", err),
				)
			}
		}
	}

	return destinations, nil
}
