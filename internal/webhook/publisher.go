package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fieldops/visit_tracking_system/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	webhookQueueKey = "visit_webhook_events"

	EventCheckIn  = "check_in"
	EventCheckOut = "check_out"
)

// VisitEvent - структура для данных вебхука о событии визита.
// OverrideUsed выставляется, когда работник прошел несмотря на вердикт геозоны,
// чтобы супервизоры получали уведомления об override.
type VisitEvent struct {
	Type          string               `json:"type"`
	VisitID       uuid.UUID            `json:"visit_id"`
	WorkerID      string               `json:"worker_id"`
	PropertyID    uuid.UUID            `json:"property_id"`
	VerdictStatus models.VerdictStatus `json:"verdict_status"`
	OverrideUsed  bool                 `json:"override_used"`
	Timestamp     time.Time            `json:"timestamp"`
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event VisitEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие визита в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event VisitEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal visit event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish visit event to Redis: %w", err)
	}
	return nil
}
