package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	broadcastQueueKey = "broadcast_messages"
)

// Message - рассылка, отправленная оператором из админ-консоли
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mock.go -package=mocks

// Publisher - интерфейс для публикации рассылок
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

// RedisPublisher кладет рассылки в очередь Redis, откуда их забирает Worker
type RedisPublisher struct {
	redisClient *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует рассылку в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal broadcast message: %w", err)
	}

	if err := p.redisClient.LPush(ctx, broadcastQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish broadcast message to Redis: %w", err)
	}
	return nil
}

// LogPublisher используется, когда Redis не настроен: рассылка только пишется в лог
type LogPublisher struct {
	logger *logrus.Logger
}

func NewLogPublisher(logger *logrus.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, msg Message) error {
	p.logger.WithFields(logrus.Fields{
		"broadcast_id": msg.ID,
		"length":       len(msg.Text),
	}).Info("Broadcast queue is disabled, message logged only")
	return nil
}
