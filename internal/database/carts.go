package database

import (
	"context"
	"encoding/json"
	"time"

	"joedank_back_end/internal/models"

	"github.com/redis/go-redis/v9"
)

// Durée de vie d'un panier anonyme (30 jours, comme la session Redis du cart)
const CartTTL = 30 * 24 * time.Hour

// CartStore abstrait le stockage du panier pour pouvoir le mocker en test
type CartStore interface {
	GetCart(ctx context.Context, cartID string) ([]models.CartItem, error)
	SaveCart(ctx context.Context, cartID string, items []models.CartItem) error
	DeleteCart(ctx context.Context, cartID string) error
}

type redisCartStore struct {
	client *redis.Client
}

// NewRedisCartStore retourne le store Redis utilisé en production
func NewRedisCartStore(client *redis.Client) CartStore {
	return &redisCartStore{client: client}
}

func cartKey(cartID string) string {
	return "cart:" + cartID
}

func (s *redisCartStore) GetCart(ctx context.Context, cartID string) ([]models.CartItem, error) {
	data, err := s.client.Get(ctx, cartKey(cartID)).Result()
	if err == redis.Nil || data == "" {
		return []models.CartItem{}, nil // panier vide
	}
	if err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *redisCartStore) SaveCart(ctx context.Context, cartID string, items []models.CartItem) error {
	jsonData, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKey(cartID), jsonData, CartTTL).Err()
}

func (s *redisCartStore) DeleteCart(ctx context.Context, cartID string) error {
	return s.client.Del(ctx, cartKey(cartID)).Err()
}
