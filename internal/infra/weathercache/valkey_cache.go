package weathercache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/closet-stylist/internal/domain/weather"
)

// ValkeyCache stores weather reports as JSON strings with an expiry.
type ValkeyCache struct {
	client valkey.Client
	prefix string
}

// NewValkeyCache constructs a cache backed by Valkey.
func NewValkeyCache(client valkey.Client, prefix string) *ValkeyCache {
	if prefix == "" {
		prefix = "stylist"
	}
	return &ValkeyCache{client: client, prefix: prefix}
}

// Get implements weather.Cache.
func (c *ValkeyCache) Get(ctx context.Context, key string) (weather.Report, bool, error) {
	payload, err := c.client.Do(ctx, c.client.B().Get().Key(c.key(key)).Build()).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return weather.Report{}, false, nil
		}
		return weather.Report{}, false, err
	}
	var report weather.Report
	if err := json.Unmarshal([]byte(payload), &report); err != nil {
		return weather.Report{}, false, fmt.Errorf("decode cached weather: %w", err)
	}
	return report, true, nil
}

// Set implements weather.Cache.
func (c *ValkeyCache) Set(ctx context.Context, key string, report weather.Report, ttl time.Duration) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}
	builder := c.client.B().Set().Key(c.key(key)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return c.client.Do(ctx, cmd).Error()
}

func (c *ValkeyCache) key(location string) string {
	return fmt.Sprintf("%s:weather:%s", c.prefix, location)
}

var _ weather.Cache = (*ValkeyCache)(nil)
