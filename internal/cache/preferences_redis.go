package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/baymax-health/internal/domain/reminder"
	"github.com/BruksfildServices01/baymax-health/internal/models"
)

const keyPrefix = "prefs:"

// absent marks a user known to have no stored preferences
const absent = "null"

// PreferenceCache keeps email preference records in redis so the
// scheduler does not hit the database once per candidate.
type PreferenceCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPreferenceCache(client *redis.Client, ttl time.Duration) *PreferenceCache {
	return &PreferenceCache{client: client, ttl: ttl}
}

// NewClient connects to url and pings it once.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (c *PreferenceCache) Get(ctx context.Context, userID uint) (*models.EmailPreferences, bool, error) {
	raw, err := c.client.Get(ctx, key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	prefs, err := decode(raw)
	if err != nil {
		return nil, false, err
	}
	return prefs, true, nil
}

func (c *PreferenceCache) Set(ctx context.Context, userID uint, prefs *models.EmailPreferences) error {
	raw, err := encode(prefs)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key(userID), raw, c.ttl).Err()
}

func (c *PreferenceCache) Invalidate(ctx context.Context, userID uint) error {
	return c.client.Del(ctx, key(userID)).Err()
}

func key(userID uint) string {
	return fmt.Sprintf("%s%d", keyPrefix, userID)
}

func encode(prefs *models.EmailPreferences) ([]byte, error) {
	if prefs == nil {
		return []byte(absent), nil
	}
	return json.Marshal(prefs)
}

func decode(raw []byte) (*models.EmailPreferences, error) {
	if string(raw) == absent {
		return nil, nil
	}
	var prefs models.EmailPreferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		return nil, fmt.Errorf("decode cached preferences: %w", err)
	}
	return &prefs, nil
}

var _ reminder.PreferenceCache = (*PreferenceCache)(nil)
