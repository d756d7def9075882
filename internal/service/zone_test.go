package service

import (
	"testing"

	"github.com/shenikar/rescuenet_portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoneColor(t *testing.T) {
	tests := []struct {
		level    models.RiskLevel
		expected string
	}{
		{models.RiskLevelRed, "#ef4444"},
		{models.RiskLevelYellow, "#eab308"},
		{models.RiskLevelGreen, "#22c55e"},
		{models.RiskLevel("PURPLE"), "#6b7280"},
		{models.RiskLevel(""), "#6b7280"},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			assert.Equal(t, tt.expected, ZoneColor(tt.level))
		})
	}
}

func TestZoneInspector_SelectThenClear(t *testing.T) {
	inspector := NewZoneInspector(newTestStore(), newTestLogger())

	snapshot, err := inspector.Select("z1")
	require.NoError(t, err)
	require.NotNil(t, snapshot.Selected)
	assert.Equal(t, "z1", snapshot.Selected.ID)
	for _, marker := range snapshot.Markers {
		assert.Equal(t, marker.Zone.ID == "z1", marker.Highlighted)
	}

	cleared := inspector.Clear()
	assert.Nil(t, cleared.Selected)
	for _, marker := range cleared.Markers {
		assert.False(t, marker.Highlighted, "zone %s must not be highlighted", marker.Zone.ID)
	}
}

func TestZoneInspector_SelectUnknown(t *testing.T) {
	inspector := NewZoneInspector(newTestStore(), newTestLogger())
	_, err := inspector.Select("z1")
	require.NoError(t, err)

	snapshot, err := inspector.Select("nope")

	assert.ErrorIs(t, err, ErrZoneNotFound)
	require.NotNil(t, snapshot.Selected, "failed selection keeps the previous one")
	assert.Equal(t, "z1", snapshot.Selected.ID)
}

func TestZoneInspector_MarkersColored(t *testing.T) {
	store := newTestStore()
	inspector := NewZoneInspector(store, newTestLogger())

	snapshot := inspector.Snapshot()

	require.Len(t, snapshot.Markers, len(store.Zones()))
	for _, marker := range snapshot.Markers {
		assert.Equal(t, ZoneColor(marker.Zone.RiskLevel), marker.Color)
	}
	assert.Equal(t, store.DefaultCenter(), snapshot.Center)
}

func TestZoneInspector_SetCenter(t *testing.T) {
	inspector := NewZoneInspector(newTestStore(), newTestLogger())
	target := models.Coordinates{Lat: 28.6139, Lng: 77.209}

	snapshot, err := inspector.SetCenter(target)
	require.NoError(t, err)
	assert.Equal(t, target, snapshot.Center)
	assert.Equal(t, uint64(1), snapshot.CenterRevision)

	// Та же точка не увеличивает ревизию
	snapshot, err = inspector.SetCenter(target)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), snapshot.CenterRevision)

	_, err = inspector.SetCenter(models.Coordinates{Lat: 91})
	assert.ErrorIs(t, err, ErrValidation)
}
