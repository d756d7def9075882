package broadcast

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// popTimeout ограничивает BRPOP, чтобы воркер замечал отмену контекста
const popTimeout = time.Second

// WorkerConfig - параметры доставки рассылок во внешний вебхук
type WorkerConfig struct {
	URL     string
	Secret  string
	Timeout time.Duration
}

// Worker забирает рассылки из очереди Redis и доставляет их во внешний вебхук.
// Каждое сообщение отправляется ровно один раз, без повторов.
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         WorkerConfig
	httpClient  *http.Client
}

func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg WorkerConfig) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Run обрабатывает очередь до отмены контекста
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Info("Starting broadcast worker...")
	for {
		if ctx.Err() != nil {
			w.logger.Info("Stopping broadcast worker.")
			return nil
		}

		// result[0] - ключ, result[1] - значение
		result, err := w.redisClient.BRPop(ctx, popTimeout, broadcastQueueKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || ctx.Err() != nil {
				continue
			}
			w.logger.WithError(err).Error("Failed to pop broadcast message from Redis")
			select {
			case <-ctx.Done():
			case <-time.After(popTimeout):
			}
			continue
		}

		w.process(ctx, result[1])
	}
}

func (w *Worker) process(ctx context.Context, payload string) {
	var msg Message
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal broadcast message from Redis")
		return
	}

	log := w.logger.WithField("broadcast_id", msg.ID)
	if err := w.deliver(ctx, payload); err != nil {
		log.WithError(err).Error("Failed to deliver broadcast")
		return
	}
	log.Info("Broadcast delivered successfully.")
}

// deliver делает одну попытку POST во внешний вебхук
func (w *Worker) deliver(ctx context.Context, payload string) error {
	if w.cfg.URL == "" {
		w.logger.Warn("Broadcast webhook URL is not configured. Skipping delivery.")
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.URL, bytes.NewBufferString(payload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если секрет задан
	if w.cfg.Secret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(payload, w.cfg.Secret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded with status code %d", resp.StatusCode)
	}
	return nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
