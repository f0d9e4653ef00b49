package session

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr, password string, db int) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisStore{client: client}
}

func (s *RedisStore) Set(ctx context.Context, token, userID string) error {
	return s.client.Set(ctx, key(token), userID, TTL).Err()
}

func (s *RedisStore) Get(ctx context.Context, token string) (string, error) {
	v, err := s.client.Get(ctx, key(token)).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func key(token string) string {
	return "session:" + token
}
