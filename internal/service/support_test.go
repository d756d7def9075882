package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/shenikar/rescuenet_portal/internal/models"
	"github.com/shenikar/rescuenet_portal/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var trackingCodePattern = regexp.MustCompile(`^RN-\d{4}$`)

func newTestSupportDesk(t *testing.T) (*SupportDesk, *mocks.MockActivityRepository) {
	ctrl := gomock.NewController(t)
	activityMock := mocks.NewMockActivityRepository(ctrl)
	return NewSupportDesk(activityMock, newTestLogger()), activityMock
}

func volunteerForm() *models.SupportForm {
	return &models.SupportForm{
		Name:         "Test User",
		Phone:        "+91 98765 43210",
		Email:        "test.user@example.com",
		Availability: "Weekends Only",
	}
}

func TestNewTrackingCode(t *testing.T) {
	for i := 0; i < 200; i++ {
		assert.Regexp(t, trackingCodePattern, NewTrackingCode())
	}
}

func TestTrack(t *testing.T) {
	assert.Equal(t, models.TrackingStatusUnderReview, Track("RN-1234").Status)
	assert.Equal(t, models.TrackingStatusNotFound, Track("XYZ").Status)
	assert.NotEmpty(t, Track("XYZ").Message)
}

func TestSupportDesk_SubmitVolunteer(t *testing.T) {
	desk, activityMock := newTestSupportDesk(t)

	var recorded models.ActivityEntry
	activityMock.EXPECT().
		Prepend(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.ActivityEntry) error {
			recorded = entry
			return nil
		}).
		Times(1)

	_, err := desk.ToggleSkill("First Aid")
	require.NoError(t, err)

	snapshot, err := desk.Submit(context.Background(), volunteerForm())

	require.NoError(t, err)
	assert.True(t, snapshot.Submitted)
	assert.Regexp(t, trackingCodePattern, snapshot.TrackingCode)
	assert.Equal(t, models.ActivityTypeVolunteer, recorded.Type)
	assert.Equal(t, "Test User", recorded.Name)
	// Навыки из сессии сохраняются, если в форме их нет
	assert.Equal(t, "Registered as First Aid Volunteer", recorded.Description)
}

func TestSupportDesk_SubmitDonationIgnoresVolunteerFields(t *testing.T) {
	desk, activityMock := newTestSupportDesk(t)
	desk.newCode = func() string { return "RN-4242" }

	activityMock.EXPECT().
		Prepend(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.ActivityEntry) error {
			assert.Equal(t, models.ActivityTypeDonation, entry.Type)
			assert.Equal(t, "Donated to Relief efforts", entry.Description)
			return nil
		}).
		Times(1)

	_, err := desk.SetMode(models.SupportModeDonate)
	require.NoError(t, err)

	form := volunteerForm()
	form.Availability = "" // не проверяется в режиме пожертвования
	form.DonationType = models.DonationTypeFunds
	form.Amount = "2500"

	snapshot, err := desk.Submit(context.Background(), form)

	require.NoError(t, err)
	assert.Equal(t, "RN-4242", snapshot.TrackingCode)
}

func TestSupportDesk_SubmitKeepsDefaults(t *testing.T) {
	desk, activityMock := newTestSupportDesk(t)
	activityMock.EXPECT().Prepend(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	// Availability не передана: должна остаться форма по умолчанию
	snapshot, err := desk.Submit(context.Background(), &models.SupportForm{
		Name:  "Test User",
		Phone: "123",
		Email: "a@b.co",
	})

	require.NoError(t, err)
	assert.True(t, snapshot.Submitted)
	assert.Regexp(t, trackingCodePattern, snapshot.TrackingCode)
	assert.Equal(t, "Available Immediately", snapshot.Form.Availability)
	assert.Equal(t, models.DonationTypeFunds, snapshot.Form.DonationType)
	assert.Equal(t, "Test User", snapshot.Form.Name)
}

func TestSupportDesk_SubmitKeepsEarlierFields(t *testing.T) {
	desk, activityMock := newTestSupportDesk(t)
	activityMock.EXPECT().Prepend(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := desk.SetMode(models.SupportModeDonate)
	require.NoError(t, err)

	// Первая попытка без контактов отклоняется, но сумма запоминается
	_, err = desk.Submit(context.Background(), &models.SupportForm{Amount: "500"})
	require.ErrorIs(t, err, ErrValidation)

	form := volunteerForm()
	form.Availability = ""
	snapshot, err := desk.Submit(context.Background(), form)

	require.NoError(t, err)
	assert.Equal(t, "500", snapshot.Form.Amount)
	assert.Equal(t, "Available Immediately", snapshot.Form.Availability)
}

func TestSupportDesk_SubmitValidation(t *testing.T) {
	tests := []struct {
		name   string
		mode   models.SupportMode
		modify func(f *models.SupportForm)
	}{
		{"missing name", models.SupportModeVolunteer, func(f *models.SupportForm) { f.Name = " " }},
		{"bad email", models.SupportModeVolunteer, func(f *models.SupportForm) { f.Email = "nope" }},
		{"missing phone", models.SupportModeVolunteer, func(f *models.SupportForm) { f.Phone = "" }},
		{"unknown availability", models.SupportModeVolunteer, func(f *models.SupportForm) { f.Availability = "Never" }},
		{"zero amount", models.SupportModeDonate, func(f *models.SupportForm) {
			f.DonationType = models.DonationTypeFunds
			f.Amount = "0"
		}},
		{"items without details", models.SupportModeDonate, func(f *models.SupportForm) {
			f.DonationType = models.DonationTypeItems
			f.DonationDetails = ""
		}},
		{"unknown donation type", models.SupportModeDonate, func(f *models.SupportForm) {
			f.DonationType = "crypto"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desk, _ := newTestSupportDesk(t)
			_, err := desk.SetMode(tt.mode)
			require.NoError(t, err)

			form := volunteerForm()
			tt.modify(form)
			snapshot, err := desk.Submit(context.Background(), form)

			assert.ErrorIs(t, err, ErrValidation)
			assert.False(t, snapshot.Submitted)
		})
	}
}

func TestSupportDesk_ActivityFailure(t *testing.T) {
	desk, activityMock := newTestSupportDesk(t)
	activityMock.EXPECT().Prepend(gomock.Any(), gomock.Any()).Return(errors.New("boom")).Times(1)

	snapshot, err := desk.Submit(context.Background(), volunteerForm())

	assert.Error(t, err)
	assert.False(t, snapshot.Submitted)
}

func TestSupportDesk_ToggleSkill(t *testing.T) {
	desk, _ := newTestSupportDesk(t)

	snapshot, err := desk.ToggleSkill("Cooking")
	require.NoError(t, err)
	assert.Equal(t, []string{"Cooking"}, snapshot.Form.Skills)

	snapshot, err = desk.ToggleSkill("Cooking")
	require.NoError(t, err)
	assert.Empty(t, snapshot.Form.Skills)

	_, err = desk.ToggleSkill("Juggling")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSupportDesk_SetModeLeavesSubmittedView(t *testing.T) {
	desk, activityMock := newTestSupportDesk(t)
	activityMock.EXPECT().Prepend(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := desk.Submit(context.Background(), volunteerForm())
	require.NoError(t, err)

	snapshot, err := desk.SetMode(models.SupportModeDonate)

	require.NoError(t, err)
	assert.False(t, snapshot.Submitted)
	assert.Equal(t, "Test User", snapshot.Form.Name, "fields survive a mode switch")

	_, err = desk.SetMode("sponsor")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSupportDesk_Reset(t *testing.T) {
	desk, activityMock := newTestSupportDesk(t)
	activityMock.EXPECT().Prepend(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := desk.Submit(context.Background(), volunteerForm())
	require.NoError(t, err)

	snapshot := desk.Reset()

	assert.False(t, snapshot.Submitted)
	assert.Empty(t, snapshot.TrackingCode)
	assert.Empty(t, snapshot.Form.Name)
	assert.Equal(t, "Available Immediately", snapshot.Form.Availability)
	assert.Equal(t, models.DonationTypeFunds, snapshot.Form.DonationType)
}
