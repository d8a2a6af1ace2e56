package cache

import (
	"context"
	"encoding/json"
	"time"

	"pms-calendar/internal/domain/calendar"
	"pms-calendar/internal/domain/pricing"
	"pms-calendar/internal/pkg/errs"
	"pms-calendar/internal/usecase/shared"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const priceKeyPrefix = "pms:prices:"

// cachedRange is the JSON shape of one price range in Redis.
type cachedRange struct {
	ID               uuid.UUID     `json:"id"`
	RoomID           uuid.UUID     `json:"roomId"`
	StartDate        calendar.Date `json:"startDate"`
	EndDate          calendar.Date `json:"endDate"`
	PriceCents       int64         `json:"priceCents"`
	PercentIncrement float64       `json:"percentIncrement"`
}

// RedisPriceCache stores the price ranges of each room under one key, so a
// write invalidates the whole room at once.
type RedisPriceCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ shared.PriceRangeCache = (*RedisPriceCache)(nil)

func NewRedisPriceCache(client redis.Cmdable, ttl time.Duration) *RedisPriceCache {
	return &RedisPriceCache{client: client, ttl: ttl}
}

func (c *RedisPriceCache) Get(ctx context.Context, roomID uuid.UUID) ([]pricing.PriceRange, bool, error) {
	data, err := c.client.Get(ctx, priceKey(roomID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.Wrap(err, "failed to read cached prices")
	}

	ranges, err := decodeRanges(data)
	if err != nil {
		// a broken entry is a miss; the next Set replaces it
		c.client.Del(ctx, priceKey(roomID))
		return nil, false, err
	}
	return ranges, true, nil
}

func (c *RedisPriceCache) Set(ctx context.Context, roomID uuid.UUID, ranges []pricing.PriceRange) error {
	data, err := encodeRanges(ranges)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, priceKey(roomID), data, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to cache prices")
	}
	return nil
}

func (c *RedisPriceCache) Invalidate(ctx context.Context, roomIDs ...uuid.UUID) error {
	if len(roomIDs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(roomIDs))
	for _, id := range roomIDs {
		keys = append(keys, priceKey(id))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errs.Wrapf(err, "failed to invalidate cached prices for %d rooms", len(keys))
	}
	return nil
}

func priceKey(roomID uuid.UUID) string {
	return priceKeyPrefix + roomID.String()
}

func encodeRanges(ranges []pricing.PriceRange) ([]byte, error) {
	out := make([]cachedRange, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, cachedRange{
			ID:               r.ID,
			RoomID:           r.RoomID,
			StartDate:        r.Span.Start(),
			EndDate:          r.Span.End(),
			PriceCents:       r.Payload.Price.Cents(),
			PercentIncrement: r.Payload.PercentIncrement,
		})
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode price ranges")
	}
	return data, nil
}

func decodeRanges(data []byte) ([]pricing.PriceRange, error) {
	var stored []cachedRange
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, errs.Wrap(err, "failed to decode cached price ranges")
	}

	ranges := make([]pricing.PriceRange, 0, len(stored))
	for _, s := range stored {
		span, err := calendar.NewDateRange(s.StartDate, s.EndDate)
		if err != nil {
			return nil, errs.Wrap(err, "cached price range has an invalid span")
		}
		rate, err := pricing.NewRate(s.PriceCents, s.PercentIncrement)
		if err != nil {
			return nil, errs.Wrap(err, "cached price range has an invalid rate")
		}
		ranges = append(ranges, pricing.PriceRange{ID: s.ID, RoomID: s.RoomID, Span: span, Payload: rate})
	}
	return ranges, nil
}

// NoopPriceCache always misses. It stands in when no Redis address is configured.
type NoopPriceCache struct{}

var _ shared.PriceRangeCache = NoopPriceCache{}

func (NoopPriceCache) Get(context.Context, uuid.UUID) ([]pricing.PriceRange, bool, error) {
	return nil, false, nil
}

func (NoopPriceCache) Set(context.Context, uuid.UUID, []pricing.PriceRange) error { return nil }

func (NoopPriceCache) Invalidate(context.Context, ...uuid.UUID) error { return nil }
