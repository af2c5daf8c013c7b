package calendar

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/channelsync/backend/internal/domain/syncvalidation"
)

// CachedCalendar decorates a CalendarProvider with a Redis cache. Calendar
// answers only change day to day, so entries are keyed per region and local
// day in the inner provider's location, not the instant's own location.
// Cache failures degrade to the inner provider; they never surface.
type CachedCalendar struct {
	inner    syncvalidation.CalendarProvider
	client   *redis.Client
	location *time.Location
	ttl      time.Duration
	logger   *zap.Logger
}

// NewCachedCalendar creates a caching decorator around the given provider.
// location must be the location the inner provider resolves local days in,
// so that cache keys flip on the same day boundary as the answers.
func NewCachedCalendar(inner syncvalidation.CalendarProvider, client *redis.Client, location *time.Location, ttl time.Duration, logger *zap.Logger) *CachedCalendar {
	if location == nil {
		location = time.UTC
	}
	return &CachedCalendar{
		inner:    inner,
		client:   client,
		location: location,
		ttl:      ttl,
		logger:   logger,
	}
}

// InSensitivePeriod reports whether the instant falls in a sensitive period
func (c *CachedCalendar) InSensitivePeriod(ctx context.Context, region string, at time.Time) (bool, error) {
	return c.cachedBool(ctx, "sensitive", region, at, func() (bool, error) {
		return c.inner.InSensitivePeriod(ctx, region, at)
	})
}

// IsHoliday reports whether the instant is a recognized public holiday
func (c *CachedCalendar) IsHoliday(ctx context.Context, region string, at time.Time) (bool, error) {
	return c.cachedBool(ctx, "holiday", region, at, func() (bool, error) {
		return c.inner.IsHoliday(ctx, region, at)
	})
}

// SeasonalMultiplier returns the demand multiplier for the instant
func (c *CachedCalendar) SeasonalMultiplier(ctx context.Context, region string, at time.Time) (float64, error) {
	key := c.key("multiplier", region, at)

	if cached, err := c.client.Get(ctx, key).Result(); err == nil {
		if value, parseErr := strconv.ParseFloat(cached, 64); parseErr == nil {
			return value, nil
		}
	}

	value, err := c.inner.SeasonalMultiplier(ctx, region, at)
	if err != nil {
		return 0, err
	}
	c.store(ctx, key, strconv.FormatFloat(value, 'f', -1, 64))
	return value, nil
}

// ActiveConsiderations returns the cultural considerations for the instant.
// The list is cheap to compute locally, so it is not cached.
func (c *CachedCalendar) ActiveConsiderations(ctx context.Context, region string, at time.Time) ([]string, error) {
	return c.inner.ActiveConsiderations(ctx, region, at)
}

func (c *CachedCalendar) cachedBool(ctx context.Context, kind, region string, at time.Time, lookup func() (bool, error)) (bool, error) {
	key := c.key(kind, region, at)

	if cached, err := c.client.Get(ctx, key).Result(); err == nil {
		return cached == "1", nil
	}

	value, err := lookup()
	if err != nil {
		return false, err
	}

	stored := "0"
	if value {
		stored = "1"
	}
	c.store(ctx, key, stored)
	return value, nil
}

func (c *CachedCalendar) store(ctx context.Context, key, value string) {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to cache calendar lookup",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

func (c *CachedCalendar) key(kind, region string, at time.Time) string {
	return fmt.Sprintf("calendar:%s:%s:%s", region, kind, at.In(c.location).Format("2006-01-02"))
}

var _ syncvalidation.CalendarProvider = (*CachedCalendar)(nil)
