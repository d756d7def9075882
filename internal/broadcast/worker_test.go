package broadcast

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(cfg WorkerConfig) *Worker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewWorker(nil, logger, cfg)
}

func TestDeliver_SignsPayload(t *testing.T) {
	payload := `{"id":"b1","text":"Evacuate sector 4"}`
	var gotBody, gotSignature string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	worker := newTestWorker(WorkerConfig{URL: server.URL, Secret: "s3cret"})

	err := worker.deliver(context.Background(), payload)

	require.NoError(t, err)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
}

func TestDeliver_SingleAttemptOnFailure(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	worker := newTestWorker(WorkerConfig{URL: server.URL})

	err := worker.deliver(context.Background(), `{}`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Equal(t, 1, calls)
}

func TestDeliver_NoURLSkips(t *testing.T) {
	worker := newTestWorker(WorkerConfig{})

	assert.NoError(t, worker.deliver(context.Background(), `{}`))
}

func TestProcess_InvalidPayloadIsDropped(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	worker := newTestWorker(WorkerConfig{URL: server.URL})
	worker.process(context.Background(), "not-json")

	assert.Equal(t, 0, calls)
}

func TestLogPublisher_Publish(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)

	err := NewLogPublisher(logger).Publish(context.Background(), Message{ID: "b1", Text: "hello"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "b1")
}

func TestGenerateHMACSHA256_Deterministic(t *testing.T) {
	a := generateHMACSHA256("data", "key")
	b := generateHMACSHA256("data", "key")
	c := generateHMACSHA256("data", "other")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
