package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/rescuenet_portal/internal/models"
	"github.com/shenikar/rescuenet_portal/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIncident(name string) *models.Incident {
	now := time.Now()
	return &models.Incident{
		ID:          uuid.New(),
		Name:        name,
		Severity:    models.IncidentSeverityHigh,
		Status:      models.IncidentStatusReported,
		Location:    "Sector 4",
		CreatedAt:   now,
		LastUpdated: now,
	}
}

func TestIncidentRepository_CreatePrepends(t *testing.T) {
	ctx := context.Background()
	first := newIncident("first")
	repo := NewIncidentRepository([]*models.Incident{first})

	second := newIncident("second")
	require.NoError(t, repo.Create(ctx, second))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)

	assert.Error(t, repo.Create(ctx, second), "duplicate id must be rejected")
}

func TestIncidentRepository_DeleteRemovesEntry(t *testing.T) {
	ctx := context.Background()
	a, b, c := newIncident("a"), newIncident("b"), newIncident("c")
	repo := NewIncidentRepository([]*models.Incident{a, b, c})

	require.NoError(t, repo.Delete(ctx, b.ID))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	for _, incident := range all {
		assert.NotEqual(t, b.ID, incident.ID)
	}

	err = repo.Delete(ctx, b.ID)
	assert.ErrorIs(t, err, service.ErrIncidentNotFound)
}

func TestIncidentRepository_GetByIDReturnsCopy(t *testing.T) {
	ctx := context.Background()
	a := newIncident("a")
	repo := NewIncidentRepository([]*models.Incident{a})

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	got.Name = "changed"

	again, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", again.Name)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, service.ErrIncidentNotFound)
}

func TestIncidentRepository_Update(t *testing.T) {
	ctx := context.Background()
	a := newIncident("a")
	repo := NewIncidentRepository([]*models.Incident{a})

	updated := *a
	updated.Status = models.IncidentStatusResolved
	require.NoError(t, repo.Update(ctx, &updated))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusResolved, got.Status)

	missing := newIncident("missing")
	assert.ErrorIs(t, repo.Update(ctx, missing), service.ErrIncidentNotFound)
}

func TestIncidentRepository_ListIncidentsPaginates(t *testing.T) {
	ctx := context.Background()
	var seed []*models.Incident
	for i := 0; i < 5; i++ {
		seed = append(seed, newIncident("incident"))
	}
	repo := NewIncidentRepository(seed)

	page1, err := repo.ListIncidents(ctx, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page1, 2)
	assert.Equal(t, seed[0].ID, page1[0].ID)

	page3, err := repo.ListIncidents(ctx, 3, 2)
	require.NoError(t, err)
	assert.Len(t, page3, 1)
	assert.Equal(t, seed[4].ID, page3[0].ID)

	page4, err := repo.ListIncidents(ctx, 4, 2)
	require.NoError(t, err)
	assert.Empty(t, page4)
}
