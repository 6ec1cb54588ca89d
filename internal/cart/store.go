package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store persists serialized carts at the boundary. Load of a missing key
// returns an empty cart, never an error.
type Store interface {
	Save(ctx context.Context, userID uint, c Cart) error
	Load(ctx context.Context, userID uint) (Cart, error)
}

const cartTTL = 30 * 24 * time.Hour

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("cart: parsing redis url: %w", err)
	}
	return &RedisStore{client: redis.NewClient(opts)}, nil
}

func cartKey(userID uint) string {
	return "cart:" + strconv.FormatUint(uint64(userID), 10)
}

func (s *RedisStore) Save(ctx context.Context, userID uint, c Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("cart: marshal: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(userID), data, cartTTL).Err(); err != nil {
		return fmt.Errorf("cart: save: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, userID uint) (Cart, error) {
	data, err := s.client.Get(ctx, cartKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return New(), nil
	}
	if err != nil {
		return Cart{}, fmt.Errorf("cart: load: %w", err)
	}

	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return Cart{}, fmt.Errorf("cart: unmarshal: %w", err)
	}
	if c.Items == nil {
		c.Items = map[uint]int{}
	}
	return c, nil
}
