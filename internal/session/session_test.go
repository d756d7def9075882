package session

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/rescuenet_portal/internal/staticdata"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestRegistry(ttl time.Duration) (*Registry, *fakeClock) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	clock := &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	registry := NewRegistry(Dependencies{
		Store:  staticdata.MustLoadEmbedded(),
		Logger: logger,
	}, ttl)
	registry.now = clock.Now
	return registry, clock
}

func TestRegistry_ResolveReusesSession(t *testing.T) {
	registry, _ := newTestRegistry(time.Minute)

	a := registry.Resolve("abc")
	b := registry.Resolve("abc")

	assert.Same(t, a, b)
	assert.Equal(t, 1, registry.Len())
}

func TestRegistry_ResolveGeneratesID(t *testing.T) {
	registry, _ := newTestRegistry(time.Minute)

	empty := registry.Resolve("")
	long := registry.Resolve(strings.Repeat("x", 100))

	assert.NotEmpty(t, empty.ID)
	assert.NotEqual(t, empty.ID, long.ID)
	assert.LessOrEqual(t, len(long.ID), maxIDLength)
}

func TestRegistry_SessionsAreIsolated(t *testing.T) {
	registry, _ := newTestRegistry(time.Minute)

	_, err := registry.Resolve("one").Map.Select("z1")
	require.NoError(t, err)

	assert.Nil(t, registry.Resolve("two").Map.Snapshot().Selected)
}

func TestRegistry_SweepExpiresIdleSessions(t *testing.T) {
	defer goleak.VerifyNone(t)
	registry, clock := newTestRegistry(time.Minute)

	idle := registry.Resolve("idle")
	idle.Shell.TriggerSOS()
	clock.Advance(45 * time.Second)
	registry.Resolve("active")
	clock.Advance(30 * time.Second)

	expired := registry.Sweep()

	assert.Equal(t, 1, expired)
	assert.Equal(t, 1, registry.Len())
	assert.NotSame(t, idle, registry.Resolve("idle"), "expired session is recreated from scratch")

	registry.Close()
}

func TestRegistry_RunClosesOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)
	registry, _ := newTestRegistry(time.Minute)
	registry.Resolve("a").Shell.TriggerSOS()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- registry.Run(ctx, time.Millisecond) }()

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, 0, registry.Len())
}
