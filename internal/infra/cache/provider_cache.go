package cache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/haircut-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/haircut-scheduler/internal/models"
)

// ProviderCache wraps a Catalog and caches the user id -> provider profile
// mapping. A user's profile id never changes once created, so entries are
// not invalidated. Misses are not cached: a profile may be created later.
// Services and providers by id always hit the wrapped Catalog.
type ProviderCache struct {
	domain.Catalog

	byUser *lru.Cache[uint, models.HairdresserProfile]
	log    *zap.Logger
}

var _ domain.Catalog = (*ProviderCache)(nil)

func NewProviderCache(next domain.Catalog, size int, log *zap.Logger) (*ProviderCache, error) {
	c, err := lru.New[uint, models.HairdresserProfile](size)
	if err != nil {
		return nil, fmt.Errorf("provider cache: %w", err)
	}

	return &ProviderCache{
		Catalog: next,
		byUser:  c,
		log:     log,
	}, nil
}

func (c *ProviderCache) GetProviderByUserID(
	ctx context.Context,
	userID uint,
) (*models.HairdresserProfile, error) {

	if p, ok := c.byUser.Get(userID); ok {
		c.log.Debug("provider cache hit", zap.Uint("user_id", userID))
		return &p, nil
	}

	p, err := c.Catalog.GetProviderByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	c.byUser.Add(userID, *p)
	return p, nil
}

func (c *ProviderCache) Len() int {
	return c.byUser.Len()
}
