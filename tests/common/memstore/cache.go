//go:build unit

package memstore

import (
	"context"
	"sync"

	"pms-calendar/internal/domain/pricing"
	"pms-calendar/internal/usecase/shared"

	"github.com/google/uuid"
)

// PriceCache is an in-memory shared.PriceRangeCache that records its calls.
type PriceCache struct {
	mu      sync.Mutex
	entries map[uuid.UUID][]pricing.PriceRange

	GetErr        error
	SetErr        error
	InvalidateErr error

	Hits        int
	Misses      int
	Invalidated []uuid.UUID
}

var _ shared.PriceRangeCache = (*PriceCache)(nil)

func NewPriceCache() *PriceCache {
	return &PriceCache{entries: map[uuid.UUID][]pricing.PriceRange{}}
}

func (c *PriceCache) Get(_ context.Context, roomID uuid.UUID) ([]pricing.PriceRange, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.GetErr != nil {
		c.Misses++
		return nil, false, c.GetErr
	}
	ranges, ok := c.entries[roomID]
	if !ok {
		c.Misses++
		return nil, false, nil
	}
	c.Hits++
	return append([]pricing.PriceRange(nil), ranges...), true, nil
}

func (c *PriceCache) Set(_ context.Context, roomID uuid.UUID, ranges []pricing.PriceRange) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.SetErr != nil {
		return c.SetErr
	}
	c.entries[roomID] = append([]pricing.PriceRange(nil), ranges...)
	return nil
}

func (c *PriceCache) Invalidate(_ context.Context, roomIDs ...uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Invalidated = append(c.Invalidated, roomIDs...)
	if c.InvalidateErr != nil {
		return c.InvalidateErr
	}
	for _, id := range roomIDs {
		delete(c.entries, id)
	}
	return nil
}

// Cached reports whether roomID currently has an entry.
func (c *PriceCache) Cached(roomID uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[roomID]
	return ok
}
