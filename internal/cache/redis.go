package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const agePrefix = "agify:age:"

type RedisClient struct {
	client *redis.Client
}

// NewRedisClient connects to redisURL and verifies the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*RedisClient, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{client: client}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func (r *RedisClient) Health(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// GetAge returns a cached predicted age.
func (r *RedisClient) GetAge(ctx context.Context, name string) (int, bool, error) {
	val, err := r.client.Get(ctx, agePrefix+name).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get age from Redis: %w", err)
	}

	age, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt cached age for %q: %w", name, err)
	}
	return age, true, nil
}

// SetAge stores a predicted age with expiration.
func (r *RedisClient) SetAge(ctx context.Context, name string, age int, ttl time.Duration) error {
	if err := r.client.Set(ctx, agePrefix+name, strconv.Itoa(age), ttl).Err(); err != nil {
		return fmt.Errorf("failed to store age in Redis: %w", err)
	}
	return nil
}
