package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOTPStore 以 Redis 保存一次性驗證碼，並由 TTL 控制過期
type RedisOTPStore struct {
	client *redis.Client
}

func NewRedisOTPStore(addr, password string, db int) (*RedisOTPStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %v", err)
	}

	return &RedisOTPStore{client: client}, nil
}

func (s *RedisOTPStore) key(phone string) string {
	return "otp:" + phone
}

func (s *RedisOTPStore) Set(ctx context.Context, phone, code string, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(phone), code, ttl).Err()
}

// Get 取出驗證碼，不存在或已過期時回傳 ("", nil)
func (s *RedisOTPStore) Get(ctx context.Context, phone string) (string, error) {
	code, err := s.client.Get(ctx, s.key(phone)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return code, nil
}

func (s *RedisOTPStore) Delete(ctx context.Context, phone string) error {
	return s.client.Del(ctx, s.key(phone)).Err()
}

func (s *RedisOTPStore) Close() error {
	return s.client.Close()
}
