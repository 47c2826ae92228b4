package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisFlagStore persists tour flags in Redis under tour:seen:<player>.
// Flags carry no TTL; the tour is shown once per player, ever.
type RedisFlagStore struct {
	Client *redis.Client
}

func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

func NewRedisFlagStore(client *redis.Client) *RedisFlagStore {
	return &RedisFlagStore{Client: client}
}

func flagKey(player string) string {
	return fmt.Sprintf("tour:seen:%s", player)
}

func (s *RedisFlagStore) Seen(ctx context.Context, player string) (bool, error) {
	val, err := s.Client.Get(ctx, flagKey(player)).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get tour flag from redis: %w", err)
	}
	return val == "1", nil
}

func (s *RedisFlagStore) MarkSeen(ctx context.Context, player string) error {
	if err := s.Client.Set(ctx, flagKey(player), "1", 0).Err(); err != nil {
		return fmt.Errorf("failed to set tour flag in redis: %w", err)
	}
	return nil
}

func (s *RedisFlagStore) Close() error {
	if s.Client != nil {
		return s.Client.Close()
	}
	return nil
}
