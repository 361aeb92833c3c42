package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"kennelbook/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Store is the full cache surface: the read-through pair used by the slot
// query and the invalidation hook used by booking writes.
type Store interface {
	Get(ctx context.Context, breederID, appointmentTypeID uuid.UUID, date time.Time) ([]string, bool)
	Set(ctx context.Context, breederID, appointmentTypeID uuid.UUID, date time.Time, slots []string)
	InvalidateDate(ctx context.Context, breederID uuid.UUID, date time.Time)
}

// SlotCache keeps formatted slot lists in Redis for a short TTL. The cache is
// purely an accelerator: every entry for a date is dropped when a booking on
// that date changes state, and misses just recompute.
type SlotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSlotCache(client *redis.Client, cfg config.RedisConfig) *SlotCache {
	return &SlotCache{client: client, ttl: cfg.SlotTTL}
}

func slotKey(breederID, appointmentTypeID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("slots:%s:%s:%s", breederID, appointmentTypeID, date.Format("2006-01-02"))
}

func (c *SlotCache) Get(ctx context.Context, breederID, appointmentTypeID uuid.UUID, date time.Time) ([]string, bool) {
	data, err := c.client.Get(ctx, slotKey(breederID, appointmentTypeID, date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("slot cache read failed", "error", err)
		}
		return nil, false
	}
	var slots []string
	if err := json.Unmarshal(data, &slots); err != nil {
		slog.Warn("slot cache entry corrupt", "error", err)
		return nil, false
	}
	return slots, true
}

func (c *SlotCache) Set(ctx context.Context, breederID, appointmentTypeID uuid.UUID, date time.Time, slots []string) {
	data, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, slotKey(breederID, appointmentTypeID, date), data, c.ttl).Err(); err != nil {
		slog.Warn("slot cache write failed", "error", err)
	}
}

// InvalidateDate drops every appointment type's cached list for the date.
func (c *SlotCache) InvalidateDate(ctx context.Context, breederID uuid.UUID, date time.Time) {
	pattern := fmt.Sprintf("slots:%s:*:%s", breederID, date.Format("2006-01-02"))
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			slog.Warn("slot cache invalidation failed", "key", iter.Val(), "error", err)
		}
	}
	if err := iter.Err(); err != nil {
		slog.Warn("slot cache scan failed", "error", err)
	}
}

// NoopSlotCache serves when Redis is not configured.
type NoopSlotCache struct{}

func NewNoopSlotCache() *NoopSlotCache {
	return &NoopSlotCache{}
}

func (NoopSlotCache) Get(context.Context, uuid.UUID, uuid.UUID, time.Time) ([]string, bool) {
	return nil, false
}

func (NoopSlotCache) Set(context.Context, uuid.UUID, uuid.UUID, time.Time, []string) {}

func (NoopSlotCache) InvalidateDate(context.Context, uuid.UUID, time.Time) {}
