package session

import (
	"context"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"
)

// RedisSlot persists the session in a Redis key and broadcasts every
// write on a companion channel so other client instances can follow.
type RedisSlot struct {
	client *redis.Client
	key    string
	ctx    context.Context

	mu  sync.Mutex
	sub *redis.PubSub
}

func NewRedisSlot(client *redis.Client, key string) *RedisSlot {
	return &RedisSlot{
		client: client,
		key:    key,
		ctx:    context.Background(),
	}
}

func (s *RedisSlot) channel() string {
	return s.key + ":changed"
}

func (s *RedisSlot) Load() ([]byte, error) {
	data, err := s.client.Get(s.ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisSlot) Save(data []byte) error {
	if err := s.client.Set(s.ctx, s.key, data, 0).Err(); err != nil {
		return err
	}
	return s.client.Publish(s.ctx, s.channel(), data).Err()
}

// Watch subscribes to the change channel. Self-originated writes are
// delivered too; the session handler is idempotent, so replaying the
// instance's own state is harmless.
func (s *RedisSlot) Watch(fn func(data []byte)) error {
	sub := s.client.Subscribe(s.ctx, s.channel())
	if _, err := sub.Receive(s.ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.sub = sub
	s.mu.Unlock()

	go func() {
		for msg := range sub.Channel() {
			if msg.Payload == "" {
				fn(nil)
				continue
			}
			fn([]byte(msg.Payload))
		}
	}()
	return nil
}

// Close unsubscribes and stops the watch goroutine. Safe to call
// without a prior Watch.
func (s *RedisSlot) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sub == nil {
		return nil
	}
	err := s.sub.Close()
	s.sub = nil
	return err
}
