package logs

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisSlot stores the slot under a single string key.
type RedisSlot struct {
	name string
	rdb  redis.Cmdable
}

func NewRedisSlot(rdb redis.Cmdable, name string) *RedisSlot {
	return &RedisSlot{
		name: name,
		rdb:  rdb,
	}
}

func (s *RedisSlot) Name() string {
	return s.name
}

func (s *RedisSlot) key() string {
	return "fitcal::slot::" + s.name
}

func (s *RedisSlot) Read(ctx context.Context) ([]byte, error) {
	data, err := s.rdb.Get(ctx, s.key()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSlotEmpty
		}
		return nil, fmt.Errorf("redis get slot: %w", err)
	}
	return data, nil
}

func (s *RedisSlot) Write(ctx context.Context, data []byte) error {
	// no expiration, the slot lives until overwritten
	if err := s.rdb.Set(ctx, s.key(), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set slot: %w", err)
	}
	return nil
}
