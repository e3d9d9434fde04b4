package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Availability responses are cached for roughly one client polling interval.
const slotTTL = 30 * time.Second

// Cache is a thin redis wrapper for availability payloads. A zero-configured
// cache (no address) is a no-op, so the API runs without redis.
type Cache struct {
	rdb *redis.Client
}

func New(addr string) *Cache {
	if addr == "" {
		return &Cache{}
	}
	return &Cache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.rdb != nil
}

func SlotKey(shopID, barberID uint, date string) string {
	return fmt.Sprintf("slots:%d:%d:%s", shopID, barberID, date)
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if !c.Enabled() {
		return nil, false
	}
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *Cache) Set(ctx context.Context, key string, payload []byte) {
	if !c.Enabled() {
		return
	}
	// Best effort; a failed SET just means a recompute on the next poll.
	c.rdb.Set(ctx, key, payload, slotTTL)
}

// InvalidateSlots drops cached availability for a barber's day, both the
// barber-specific key and the shop-wide one (barber id 0).
func (c *Cache) InvalidateSlots(ctx context.Context, shopID, barberID uint, day time.Time) {
	if !c.Enabled() {
		return
	}
	date := day.Format("2006-01-02")
	c.rdb.Del(ctx, SlotKey(shopID, barberID, date), SlotKey(shopID, 0, date))
}
