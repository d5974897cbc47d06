// Package rediscache is a redis cache backend.
package rediscache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("package", "rediscache")

// Storage stores cached content in redis, shared between engine replicas.
type Storage struct {
	client *redis.Client
}

// NewStorage creates new instance of Storage.
func NewStorage(client *redis.Client) *Storage {
	return &Storage{client: client}
}

// Get returns stored content or nil when the key is absent.
// Redis failures degrade to a cache miss.
func (s *Storage) Get(key string) []byte {
	b, err := s.client.Get(context.Background(), key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.WithError(err).Error("failed to get cached content")
		}
		return nil
	}

	return b
}

// Set stores content for ttl.
func (s *Storage) Set(key string, content []byte, ttl time.Duration) {
	if err := s.client.Set(context.Background(), key, content, ttl).Err(); err != nil {
		log.WithError(err).Error("failed to set cached content")
	}
}
