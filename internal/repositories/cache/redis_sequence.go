package cache

import (
	"context"
	"fmt"
	"time"

	portsrepo "github.com/SscSPs/jewel_ledger/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const defaultSequenceKeyPrefix = "jewel:payment_seq:"

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// counter is the slice of the Redis client the sequence needs.
type counter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// RedisSequence hands out payment sequence values with INCR on one key per shop.
// INCR is atomic across instances; values burnt by failed payments are not reused.
type RedisSequence struct {
	client    counter
	keyPrefix string
}

var _ portsrepo.PaymentNumberSequence = (*RedisSequence)(nil)

// NewRedisSequence connects to Redis and returns a sequence backed by it.
func NewRedisSequence(cfg RedisConfig) (*RedisSequence, *redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisSequenceWithClient(client, ""), client, nil
}

// NewRedisSequenceWithClient builds a sequence on an existing client.
func NewRedisSequenceWithClient(client counter, keyPrefix string) *RedisSequence {
	if keyPrefix == "" {
		keyPrefix = defaultSequenceKeyPrefix
	}
	return &RedisSequence{client: client, keyPrefix: keyPrefix}
}

func (s *RedisSequence) NextPaymentSequence(ctx context.Context, shopID string) (int64, error) {
	next, err := s.client.Incr(ctx, s.keyPrefix+shopID).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment payment sequence for shop %s: %w", shopID, err)
	}
	return next, nil
}
