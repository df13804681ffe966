package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

const keyPrefix = "salon:catalog:"

// Cache read-through кеш справочника сотрудников и услуг в Redis.
// Ошибки "не найдено" не кешируются. При недоступности Redis запросы идут напрямую в репозиторий
type Cache struct {
	repo   Repository
	rdb    *redis.Client
	ttl    time.Duration
	logger Logger
}

// NewCache создает кеширующую обёртку над репозиторием справочника
func NewCache(repo Repository, rdb *redis.Client, ttl time.Duration, logger Logger) *Cache {
	return &Cache{repo: repo, rdb: rdb, ttl: ttl, logger: logger}
}

func (c *Cache) ListStaff(ctx context.Context) ([]*domain.StaffMember, error) {
	return readThrough(ctx, c, keyPrefix+"staff", func() ([]*domain.StaffMember, error) {
		return c.repo.ListStaff(ctx)
	})
}

func (c *Cache) GetStaffByID(ctx context.Context, id int64) (*domain.StaffMember, error) {
	return readThrough(ctx, c, fmt.Sprintf("%sstaff:%d", keyPrefix, id), func() (*domain.StaffMember, error) {
		return c.repo.GetStaffByID(ctx, id)
	})
}

func (c *Cache) ListServices(ctx context.Context) ([]*domain.Service, error) {
	return readThrough(ctx, c, keyPrefix+"services", func() ([]*domain.Service, error) {
		return c.repo.ListServices(ctx)
	})
}

func (c *Cache) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	return readThrough(ctx, c, fmt.Sprintf("%sservice:id:%d", keyPrefix, id), func() (*domain.Service, error) {
		return c.repo.GetServiceByID(ctx, id)
	})
}

func (c *Cache) GetServiceByName(ctx context.Context, name string) (*domain.Service, error) {
	return readThrough(ctx, c, keyPrefix+"service:name:"+name, func() (*domain.Service, error) {
		return c.repo.GetServiceByName(ctx, name)
	})
}

// Invalidate удаляет все ключи справочника
func (c *Cache) Invalidate(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan catalog keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

func readThrough[T any](ctx context.Context, c *Cache, key string, load func() (T, error)) (T, error) {
	var cached T

	data, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
		c.logger.Warn("catalog cache: corrupted value for key=%s, reloading", key)
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("catalog cache: get key=%s failed: %v", key, err)
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("catalog cache: encode key=%s failed: %v", key, err)
		return value, nil
	}
	if err := c.rdb.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
		c.logger.Warn("catalog cache: set key=%s failed: %v", key, err)
	}

	return value, nil
}
