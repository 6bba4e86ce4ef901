package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	dispatchQueueKey = "dispatch_events"

	EventSOSCreated = "sos.created"
	EventSOSStopped = "sos.stopped"
)

// DispatchEvent - событие для дежурной части участка
type DispatchEvent struct {
	Type         string    `json:"type"`
	SOSID        uuid.UUID `json:"sos_id"`
	CitizenEmail string    `json:"citizen_email,omitempty"`
	Subdivision  string    `json:"subdivision,omitempty"`
	Latitude     float64   `json:"latitude,omitempty"`
	Longitude    float64   `json:"longitude,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// DispatchPublisher - интерфейс для публикации событий диспетчеризации
type DispatchPublisher interface {
	Publish(ctx context.Context, event DispatchEvent) error
}

// RedisDispatchPublisher - реализация DispatchPublisher поверх очереди Redis
type RedisDispatchPublisher struct {
	redisClient *redis.Client
}

func NewRedisDispatchPublisher(client *redis.Client) *RedisDispatchPublisher {
	return &RedisDispatchPublisher{
		redisClient: client,
	}
}

// Publish кладет событие в очередь Redis
func (p *RedisDispatchPublisher) Publish(ctx context.Context, event DispatchEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch event: %w", err)
	}

	// LPUSH в левую часть списка, воркер читает справа
	if err := p.redisClient.LPush(ctx, dispatchQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish dispatch event to Redis: %w", err)
	}
	return nil
}
