package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var ErrCacheMiss = errors.New("redis: key not found")

type Config struct {
	Address  string
	Password string
	DB       int
}

type IRedis interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	RPush(ctx context.Context, key string, values ...string) error
	LRange(ctx context.Context, key string) ([]string, error)
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

type redisClient struct {
	client *redis.Client
	log    *logrus.Logger
}

func New(cfg Config, logger *logrus.Logger) IRedis {
	logger.Infof("Connecting to Redis at %s...", cfg.Address)

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logger.Errorf("Failed to connect to Redis: %v", err)
	} else {
		logger.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client, log: logger}
}

func (r *redisClient) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		r.log.Debugf("Key %s not found", key)
		return "", ErrCacheMiss
	} else if err != nil {
		r.log.Errorf("Error getting key %s: %v", key, err)
		return "", err
	}
	return val, nil
}

func (r *redisClient) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	if err := r.client.Set(ctx, key, value, expiration).Err(); err != nil {
		r.log.Errorf("Error setting key %s: %v", key, err)
		return err
	}
	return nil
}

func (r *redisClient) RPush(ctx context.Context, key string, values ...string) error {
	args := make([]interface{}, len(values))
	for i, v := range values {
		args[i] = v
	}
	if err := r.client.RPush(ctx, key, args...).Err(); err != nil {
		r.log.Errorf("Error appending to list %s: %v", key, err)
		return err
	}
	return nil
}

// LRange returns the whole list, empty when the key does not exist.
func (r *redisClient) LRange(ctx context.Context, key string) ([]string, error) {
	vals, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		r.log.Errorf("Error reading list %s: %v", key, err)
		return nil, err
	}
	return vals, nil
}

func (r *redisClient) Delete(ctx context.Context, key string) error {
	result, err := r.client.Del(ctx, key).Result()
	if err != nil {
		r.log.Errorf("Error deleting key %s: %v", key, err)
		return err
	}
	if result == 0 {
		r.log.Debugf("Key %s not found for deletion", key)
	}
	return nil
}

func (r *redisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *redisClient) Close() error {
	return r.client.Close()
}
