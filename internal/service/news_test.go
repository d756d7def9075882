package service

import (
	"context"
	"testing"
	"time"

	"github.com/shenikar/rescuenet_portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func alerts(titles ...string) []models.NewsUpdate {
	items := make([]models.NewsUpdate, 0, len(titles))
	for i, title := range titles {
		items = append(items, models.NewsUpdate{
			ID:       string(rune('a' + i)),
			Title:    title,
			Category: models.NewsCategoryUpdate,
		})
	}
	return items
}

func TestNewsFeed_RefreshAppliesResult(t *testing.T) {
	client := newTestClient(t)
	feed := NewNewsFeed(client, newTestLogger(), "New York Metro Area", time.Minute)
	ctx := context.Background()

	client.EXPECT().
		FetchAlerts(gomock.Any(), "New York Metro Area").
		Return(alerts("Flood warning")).
		Times(1)

	snapshot := feed.Refresh(ctx)

	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, "Flood warning", snapshot.Items[0].Title)
	assert.Equal(t, uint64(1), snapshot.Generation)
	assert.False(t, snapshot.Loading)
	assert.False(t, snapshot.FetchedAt.IsZero())
}

func TestNewsFeed_FailureEmptiesFeed(t *testing.T) {
	client := newTestClient(t)
	feed := NewNewsFeed(client, newTestLogger(), "Metro", time.Minute)
	ctx := context.Background()

	gomock.InOrder(
		client.EXPECT().FetchAlerts(gomock.Any(), "Metro").Return(alerts("one", "two")),
		client.EXPECT().FetchAlerts(gomock.Any(), "Metro").Return([]models.NewsUpdate{}),
	)

	feed.Refresh(ctx)
	snapshot := feed.Refresh(ctx)

	assert.NotNil(t, snapshot.Items)
	assert.Empty(t, snapshot.Items)
}

func TestNewsFeed_StaleResultDiscarded(t *testing.T) {
	client := newTestClient(t)
	feed := NewNewsFeed(client, newTestLogger(), "Metro", time.Minute)
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})

	gomock.InOrder(
		client.EXPECT().FetchAlerts(gomock.Any(), "Metro").DoAndReturn(
			func(context.Context, string) []models.NewsUpdate {
				close(entered)
				<-release
				return alerts("stale")
			}),
		client.EXPECT().FetchAlerts(gomock.Any(), "Metro").Return(alerts("fresh")),
	)

	slowDone := make(chan models.NewsFeedSnapshot)
	go func() { slowDone <- feed.Refresh(ctx) }()
	<-entered

	assert.True(t, feed.Snapshot().Loading)

	fresh := feed.Refresh(ctx)
	require.Len(t, fresh.Items, 1)
	assert.Equal(t, "fresh", fresh.Items[0].Title)

	close(release)
	late := <-slowDone

	require.Len(t, late.Items, 1)
	assert.Equal(t, "fresh", late.Items[0].Title, "older generation must not overwrite newer data")
	assert.Equal(t, uint64(2), feed.Snapshot().Generation)
	assert.False(t, feed.Snapshot().Loading)
}

func TestNewsFeed_PollerStopsCleanly(t *testing.T) {
	defer goleak.VerifyNone(t)

	client := newTestClient(t)
	feed := NewNewsFeed(client, newTestLogger(), "Metro", 10*time.Millisecond)

	client.EXPECT().
		FetchAlerts(gomock.Any(), "Metro").
		Return(alerts("tick")).
		MinTimes(2)

	feed.Start(context.Background())
	feed.Start(context.Background()) // повторный запуск игнорируется

	assert.Eventually(t, func() bool {
		return feed.Snapshot().Generation >= 2
	}, time.Second, 5*time.Millisecond)

	feed.Stop()
	feed.Stop()
}

func TestNewsFeed_PollerStopsOnContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	client := newTestClient(t)
	feed := NewNewsFeed(client, newTestLogger(), "Metro", time.Hour)

	client.EXPECT().FetchAlerts(gomock.Any(), "Metro").Return(alerts("first")).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	feed.Start(ctx)

	assert.Eventually(t, func() bool {
		return feed.Snapshot().Generation == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	feed.Stop()
}
