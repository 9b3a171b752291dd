package database

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Les marqueurs d'événements traités expirent après 30 jours : Stripe ne
// redélivre jamais un événement aussi vieux
const eventTTL = 30 * 24 * time.Hour

// EventStore garde la trace des événements webhook déjà traités,
// pour ignorer les redéliveries Stripe sans refaire le fulfilment
type EventStore interface {
	// MarkProcessed retourne true si l'événement est nouveau,
	// false s'il a déjà été traité
	MarkProcessed(ctx context.Context, eventID string) (bool, error)
}

type redisEventStore struct {
	client *redis.Client
}

func NewRedisEventStore(client *redis.Client) EventStore {
	return &redisEventStore{client: client}
}

func (s *redisEventStore) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	// SETNX : un seul appel gagne, les redéliveries voient false
	return s.client.SetNX(ctx, "webhook:event:"+eventID, "1", eventTTL).Result()
}
