package repository_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shenikar/rescuenet_portal/internal/broadcast"
	"github.com/shenikar/rescuenet_portal/internal/models"
	"github.com/shenikar/rescuenet_portal/internal/repository"
	"github.com/shenikar/rescuenet_portal/internal/service"
	"github.com/shenikar/rescuenet_portal/internal/staticdata"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func TestAdminConsole_DeleteRemovesIncident(t *testing.T) {
	ctx := context.Background()
	store := staticdata.MustLoadEmbedded()
	logger := newTestLogger()
	console := service.NewAdminConsole(
		repository.NewIncidentRepository(store.SeedIncidents(time.Now())),
		broadcast.NewLogPublisher(logger),
		logger,
	)

	before, err := console.ListIncidents(ctx, 1, 100)
	require.NoError(t, err)
	require.NotEmpty(t, before)
	removed := before[1].ID

	require.NoError(t, console.DeleteIncident(ctx, removed))

	after, err := console.ListIncidents(ctx, 1, 100)
	require.NoError(t, err)
	assert.Len(t, after, len(before)-1)
	for _, incident := range after {
		assert.NotEqual(t, removed, incident.ID)
	}

	assert.ErrorIs(t, console.DeleteIncident(ctx, removed), service.ErrIncidentNotFound)
}

func TestAdminConsole_CreatedIncidentListedFirst(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()
	console := service.NewAdminConsole(repository.NewIncidentRepository(nil), broadcast.NewLogPublisher(logger), logger)

	require.NoError(t, console.CreateIncident(ctx, &models.Incident{Name: "Old"}))
	fresh := &models.Incident{Name: "New", Severity: models.IncidentSeverityCritical}
	require.NoError(t, console.CreateIncident(ctx, fresh))

	list, err := console.ListIncidents(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, fresh.ID, list[0].ID)
}

func TestSupportDesk_SubmitAppendsToBoundedLog(t *testing.T) {
	ctx := context.Background()
	store := staticdata.MustLoadEmbedded()
	activity := repository.NewActivityLog(repository.DefaultActivityCapacity, store.SeedActivity(time.Now()))
	desk := service.NewSupportDesk(activity, newTestLogger())

	form := &models.SupportForm{
		Name:         "Test User",
		Phone:        "555-0100",
		Email:        "test@example.com",
		Availability: "Available Immediately",
	}

	for i := 0; i < 4; i++ {
		before, err := activity.List(ctx)
		require.NoError(t, err)

		snapshot, err := desk.Submit(ctx, form)
		require.NoError(t, err)
		assert.Regexp(t, `^RN-\d{4}$`, snapshot.TrackingCode)

		after, err := activity.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, min(len(before)+1, repository.DefaultActivityCapacity), len(after))
		assert.Equal(t, "Test User", after[0].Name)
		assert.Equal(t, "Registered as General Volunteer", after[0].Description)
		// Самая старая запись вытесняется, остальные сдвигаются
		assert.Equal(t, before[:len(after)-1], after[1:])

		desk.Reset()
	}
}
