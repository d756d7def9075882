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

var pngImage = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func TestReporting_LoadImage(t *testing.T) {
	controller := NewReportingController(newTestClient(t), newTestLogger())

	snapshot, err := controller.LoadImage(pngImage, "image/jpeg")

	require.NoError(t, err)
	assert.Equal(t, models.ReportStateImageLoaded, snapshot.State)
	assert.True(t, snapshot.HasImage)
	assert.Equal(t, "image/png", snapshot.MIMEType, "content sniffing wins over declared type")
	assert.Nil(t, snapshot.Analysis)
}

func TestReporting_LoadImageRejectsNonImage(t *testing.T) {
	controller := NewReportingController(newTestClient(t), newTestLogger())

	_, err := controller.LoadImage([]byte("just some text"), "image/png")
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	_, err = controller.LoadImage(nil, "image/png")
	assert.ErrorIs(t, err, ErrNoImage)

	assert.Equal(t, models.ReportStateEmpty, controller.Snapshot().State)
}

func TestReporting_AnalyzeSuccess(t *testing.T) {
	client := newTestClient(t)
	controller := NewReportingController(client, newTestLogger())
	analysis := &models.IncidentAnalysis{
		Severity:        models.AnalysisSeverityHigh,
		Summary:         "Collapsed wall",
		SafetySteps:     []string{"Keep away"},
		EstimatedImpact: "Road blocked",
	}

	client.EXPECT().
		AnalyzeIncidentImage(gomock.Any(), pngImage, "image/png").
		Return(analysis, nil).
		Times(1)

	_, err := controller.LoadImage(pngImage, "")
	require.NoError(t, err)

	snapshot, err := controller.Analyze(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.ReportStateAnalyzed, snapshot.State)
	require.NotNil(t, snapshot.Analysis)
	assert.Equal(t, *analysis, *snapshot.Analysis)
}

func TestReporting_AnalyzeFailureKeepsImage(t *testing.T) {
	client := newTestClient(t)
	controller := NewReportingController(client, newTestLogger())
	serviceErr := errors.New("service failure")

	gomock.InOrder(
		client.EXPECT().AnalyzeIncidentImage(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&models.IncidentAnalysis{Severity: models.AnalysisSeverityLow}, nil),
		client.EXPECT().AnalyzeIncidentImage(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, serviceErr),
	)

	_, err := controller.LoadImage(pngImage, "")
	require.NoError(t, err)
	_, err = controller.Analyze(context.Background())
	require.NoError(t, err)

	snapshot, err := controller.Analyze(context.Background())

	assert.ErrorIs(t, err, serviceErr)
	assert.Equal(t, models.ReportStateImageLoaded, snapshot.State)
	assert.True(t, snapshot.HasImage, "image must stay displayed")
	assert.Nil(t, snapshot.Analysis, "stale analysis must be cleared")
}

func TestReporting_ImageSurvivesFailedAnalysis(t *testing.T) {
	client := newTestClient(t)
	controller := NewReportingController(client, newTestLogger())

	_, _, err := controller.Image()
	assert.ErrorIs(t, err, ErrNoImage)

	client.EXPECT().AnalyzeIncidentImage(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("service failure")).
		Times(1)

	_, err = controller.LoadImage(pngImage, "image/jpeg")
	require.NoError(t, err)
	_, err = controller.Analyze(context.Background())
	require.Error(t, err)

	data, mimeType, err := controller.Image()
	require.NoError(t, err)
	assert.Equal(t, pngImage, data)
	assert.Equal(t, "image/png", mimeType, "type comes from content, not the declared value")

	// Копия не должна менять состояние контроллера
	data[0] = 0
	stored, _, err := controller.Image()
	require.NoError(t, err)
	assert.Equal(t, pngImage[0], stored[0])

	controller.RemoveImage()
	_, _, err = controller.Image()
	assert.ErrorIs(t, err, ErrNoImage)
}

func TestReporting_SnapshotIsolatesSafetySteps(t *testing.T) {
	client := newTestClient(t)
	controller := NewReportingController(client, newTestLogger())

	client.EXPECT().AnalyzeIncidentImage(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.IncidentAnalysis{
			Severity:    models.AnalysisSeverityHigh,
			SafetySteps: []string{"Evacuate", "Call 112"},
		}, nil).
		Times(1)

	_, err := controller.LoadImage(pngImage, "")
	require.NoError(t, err)
	snapshot, err := controller.Analyze(context.Background())
	require.NoError(t, err)

	snapshot.Analysis.SafetySteps[0] = "Stay inside"

	assert.Equal(t, []string{"Evacuate", "Call 112"}, controller.Snapshot().Analysis.SafetySteps)
}

func TestReporting_AnalyzeWithoutImage(t *testing.T) {
	controller := NewReportingController(newTestClient(t), newTestLogger())

	_, err := controller.Analyze(context.Background())

	assert.ErrorIs(t, err, ErrNoImage)
}

func TestReporting_AnalyzeWhileAnalyzing(t *testing.T) {
	client := newTestClient(t)
	controller := NewReportingController(client, newTestLogger())
	entered := make(chan struct{})
	release := make(chan struct{})

	client.EXPECT().AnalyzeIncidentImage(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, []byte, string) (*models.IncidentAnalysis, error) {
			close(entered)
			<-release
			return &models.IncidentAnalysis{Severity: models.AnalysisSeverityMedium}, nil
		}).
		Times(1)

	_, err := controller.LoadImage(pngImage, "")
	require.NoError(t, err)

	done := make(chan error)
	go func() {
		_, err := controller.Analyze(context.Background())
		done <- err
	}()
	<-entered

	assert.Equal(t, models.ReportStateAnalyzing, controller.Snapshot().State)
	_, err = controller.Analyze(context.Background())
	assert.ErrorIs(t, err, ErrAnalysisInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, models.ReportStateAnalyzed, controller.Snapshot().State)
}

func TestReporting_RemoveImageDuringAnalysis(t *testing.T) {
	client := newTestClient(t)
	controller := NewReportingController(client, newTestLogger())
	entered := make(chan struct{})
	release := make(chan struct{})

	client.EXPECT().AnalyzeIncidentImage(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, []byte, string) (*models.IncidentAnalysis, error) {
			close(entered)
			<-release
			return &models.IncidentAnalysis{Severity: models.AnalysisSeverityCritical}, nil
		}).
		Times(1)

	_, err := controller.LoadImage(pngImage, "")
	require.NoError(t, err)

	done := make(chan error)
	go func() {
		_, err := controller.Analyze(context.Background())
		done <- err
	}()
	<-entered

	removed := controller.RemoveImage()
	assert.Equal(t, models.ReportStateEmpty, removed.State)

	close(release)
	assert.ErrorIs(t, <-done, ErrSuperseded)

	snapshot := controller.Snapshot()
	assert.Equal(t, models.ReportStateEmpty, snapshot.State)
	assert.False(t, snapshot.HasImage)
	assert.Nil(t, snapshot.Analysis)
}
