package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/rescuenet_portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegionalExplorer_LookupSuccess(t *testing.T) {
	client := newTestClient(t)
	explorer := NewRegionalExplorer(client, newTestLogger())
	profile := &models.LocationProfile{
		Name:    "Kochi",
		State:   "Kerala",
		Sources: []models.Link{{Title: "Source", URI: "https://example.org"}},
	}

	client.EXPECT().FetchLocationProfile(gomock.Any(), "Kochi").Return(profile, nil).Times(1)

	got, err := explorer.Lookup(context.Background(), "Kochi")

	require.NoError(t, err)
	assert.Equal(t, profile, got)
	snapshot := explorer.Snapshot()
	assert.Equal(t, "Kochi", snapshot.Query)
	assert.Empty(t, snapshot.Error)
	assert.Equal(t, profile, snapshot.Profile)
}

func TestRegionalExplorer_LookupFailureClearsProfile(t *testing.T) {
	client := newTestClient(t)
	explorer := NewRegionalExplorer(client, newTestLogger())
	lookupErr := errors.New("lookup failed")

	gomock.InOrder(
		client.EXPECT().FetchLocationProfile(gomock.Any(), "Kochi").Return(&models.LocationProfile{Name: "Kochi"}, nil),
		client.EXPECT().FetchLocationProfile(gomock.Any(), "Atlantis").Return(nil, lookupErr),
	)

	_, err := explorer.Lookup(context.Background(), "Kochi")
	require.NoError(t, err)

	_, err = explorer.Lookup(context.Background(), "Atlantis")

	assert.ErrorIs(t, err, lookupErr)
	snapshot := explorer.Snapshot()
	assert.Nil(t, snapshot.Profile)
	assert.Equal(t, LookupFailedMessage, snapshot.Error)
}

func TestRegionalExplorer_EmptyQuery(t *testing.T) {
	explorer := NewRegionalExplorer(newTestClient(t), newTestLogger())

	_, err := explorer.Lookup(context.Background(), "")

	assert.ErrorIs(t, err, ErrValidation)
}
