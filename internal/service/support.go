package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/rescuenet_portal/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=support.go -destination=mocks/activity_mock.go -package=mocks

// ActivityRepository определяет контракт для ленты активности сообщества
type ActivityRepository interface {
	Prepend(ctx context.Context, entry models.ActivityEntry) error
	List(ctx context.Context) ([]models.ActivityEntry, error)
}

const (
	trackingCodePrefix  = "RN-"
	defaultAvailability = "Available Immediately"

	trackingUnderReviewMessage = "Your application has been received and is currently being verified by our regional coordinators."
	trackingNotFoundMessage    = "The provided tracking code does not match our records. Please verify and try again."
)

// VolunteerSkills - навыки, которые можно отметить в анкете волонтера
var VolunteerSkills = []string{
	"First Aid",
	"SAR (Search/Rescue)",
	"Cooking",
	"Heavy Vehicle",
	"Data Entry",
	"Language Support",
	"Counseling",
	"Electrical",
}

// NewTrackingCode генерирует код вида RN-#### (1000-9999).
// Уникальность не проверяется, совпадения допустимы.
func NewTrackingCode() string {
	return fmt.Sprintf("%s%d", trackingCodePrefix, 1000+rand.IntN(9000))
}

// Track проверяет код отслеживания.
// Это только проверка формата, реестра заявок нет.
func Track(code string) models.TrackingResult {
	if strings.HasPrefix(strings.TrimSpace(code), trackingCodePrefix) {
		return models.TrackingResult{
			Status:  models.TrackingStatusUnderReview,
			Message: trackingUnderReviewMessage,
		}
	}
	return models.TrackingResult{
		Status:  models.TrackingStatusNotFound,
		Message: trackingNotFoundMessage,
	}
}

// contactFields проверяются в обоих режимах
type contactFields struct {
	Name  string `validate:"required,max=100"`
	Phone string `validate:"required,max=32"`
	Email string `validate:"required,email"`
}

type volunteerFields struct {
	Availability string `validate:"required,oneof='Available Immediately' 'Within 24 Hours' 'Weekends Only' 'Remote/Virtual Support'"`
}

type donationFields struct {
	DonationType models.DonationType `validate:"required,oneof=funds items other"`
}

// SupportDesk - анкета волонтера или жертвователя одной сессии
type SupportDesk struct {
	activity ActivityRepository
	logger   *logrus.Logger
	validate *validator.Validate
	newCode  func() string
	now      func() time.Time

	mu           sync.Mutex
	mode         models.SupportMode
	submitted    bool
	trackingCode string
	form         models.SupportForm
}

func NewSupportDesk(activity ActivityRepository, logger *logrus.Logger) *SupportDesk {
	return &SupportDesk{
		activity: activity,
		logger:   logger,
		validate: validator.New(),
		newCode:  NewTrackingCode,
		now:      time.Now,
		mode:     models.SupportModeVolunteer,
		form:     defaultSupportForm(),
	}
}

func defaultSupportForm() models.SupportForm {
	return models.SupportForm{
		Skills:       []string{},
		Availability: defaultAvailability,
		DonationType: models.DonationTypeFunds,
	}
}

// SetMode переключает режим и уходит с экрана подтверждения. Введенные поля сохраняются.
func (s *SupportDesk) SetMode(mode models.SupportMode) (models.SupportSnapshot, error) {
	if mode != models.SupportModeVolunteer && mode != models.SupportModeDonate {
		return s.Snapshot(), fmt.Errorf("service: support mode %q: %w", mode, ErrValidation)
	}

	s.mu.Lock()
	s.mode = mode
	s.submitted = false
	s.mu.Unlock()

	return s.Snapshot(), nil
}

// ToggleSkill отмечает навык или снимает отметку
func (s *SupportDesk) ToggleSkill(skill string) (models.SupportSnapshot, error) {
	if !slices.Contains(VolunteerSkills, skill) {
		return s.Snapshot(), fmt.Errorf("service: skill %q: %w", skill, ErrValidation)
	}

	s.mu.Lock()
	if i := slices.Index(s.form.Skills, skill); i >= 0 {
		s.form.Skills = slices.Delete(s.form.Skills, i, i+1)
	} else {
		s.form.Skills = append(s.form.Skills, skill)
	}
	s.mu.Unlock()

	return s.Snapshot(), nil
}

// Submit сохраняет переданные поля и отправляет анкету.
// Проверяются только поля активного режима, остальные не трогаются.
func (s *SupportDesk) Submit(ctx context.Context, form *models.SupportForm) (models.SupportSnapshot, error) {
	s.mu.Lock()
	if form != nil {
		s.form = mergeForm(s.form, *form)
	}
	mode := s.mode
	current := s.form
	s.mu.Unlock()

	log := s.logger.WithFields(logrus.Fields{
		"service": "support",
		"method":  "Submit",
		"mode":    mode,
	})

	if err := s.validateForm(mode, current); err != nil {
		log.WithError(err).Warn("Support form rejected")
		return s.Snapshot(), err
	}

	code := s.newCode()
	entry := models.ActivityEntry{
		ID:        uuid.NewString(),
		Name:      current.Name,
		CreatedAt: s.now(),
	}
	if mode == models.SupportModeVolunteer {
		skill := "General"
		if len(current.Skills) > 0 {
			skill = current.Skills[0]
		}
		entry.Type = models.ActivityTypeVolunteer
		entry.Description = fmt.Sprintf("Registered as %s Volunteer", skill)
	} else {
		entry.Type = models.ActivityTypeDonation
		entry.Description = "Donated to Relief efforts"
	}

	if err := s.activity.Prepend(ctx, entry); err != nil {
		log.WithError(err).Error("Failed to record activity entry")
		return s.Snapshot(), fmt.Errorf("service: could not record activity: %w", err)
	}

	s.mu.Lock()
	s.submitted = true
	s.trackingCode = code
	s.mu.Unlock()

	log.WithField("tracking_code", code).Info("Support application submitted")
	return s.Snapshot(), nil
}

// mergeForm переносит в форму только заполненные поля запроса,
// остальные (в том числе значения по умолчанию) остаются прежними
func mergeForm(current, posted models.SupportForm) models.SupportForm {
	set := func(dst *string, value string) {
		if strings.TrimSpace(value) != "" {
			*dst = value
		}
	}
	set(&current.Name, posted.Name)
	set(&current.Phone, posted.Phone)
	set(&current.Email, posted.Email)
	set(&current.Availability, posted.Availability)
	set(&current.DonationDetails, posted.DonationDetails)
	set(&current.Amount, posted.Amount)
	if posted.DonationType != "" {
		current.DonationType = posted.DonationType
	}
	if posted.Skills != nil {
		current.Skills = slices.Clone(posted.Skills)
	}
	return current
}

func (s *SupportDesk) validateForm(mode models.SupportMode, form models.SupportForm) error {
	contact := contactFields{
		Name:  strings.TrimSpace(form.Name),
		Phone: strings.TrimSpace(form.Phone),
		Email: strings.TrimSpace(form.Email),
	}
	if err := s.validate.Struct(contact); err != nil {
		return fmt.Errorf("service: %s: %w", err.Error(), ErrValidation)
	}

	if mode == models.SupportModeVolunteer {
		if err := s.validate.Struct(volunteerFields{Availability: form.Availability}); err != nil {
			return fmt.Errorf("service: %s: %w", err.Error(), ErrValidation)
		}
		return nil
	}

	if err := s.validate.Struct(donationFields{DonationType: form.DonationType}); err != nil {
		return fmt.Errorf("service: %s: %w", err.Error(), ErrValidation)
	}
	if form.DonationType == models.DonationTypeFunds {
		amount, err := strconv.ParseFloat(strings.TrimSpace(form.Amount), 64)
		if err != nil || amount <= 0 {
			return fmt.Errorf("service: donation amount must be a positive number: %w", ErrValidation)
		}
		return nil
	}
	if strings.TrimSpace(form.DonationDetails) == "" {
		return fmt.Errorf("service: donation details are required: %w", ErrValidation)
	}
	return nil
}

// Reset возвращает пустую анкету, режим не меняется
func (s *SupportDesk) Reset() models.SupportSnapshot {
	s.mu.Lock()
	s.submitted = false
	s.trackingCode = ""
	s.form = defaultSupportForm()
	s.mu.Unlock()

	return s.Snapshot()
}

// Activity возвращает общую ленту активности, новые записи первыми
func (s *SupportDesk) Activity(ctx context.Context) ([]models.ActivityEntry, error) {
	entries, err := s.activity.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list activity: %w", err)
	}
	return entries, nil
}

func (s *SupportDesk) Snapshot() models.SupportSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	form := s.form
	form.Skills = slices.Clone(s.form.Skills)
	return models.SupportSnapshot{
		Mode:         s.mode,
		Submitted:    s.submitted,
		TrackingCode: s.trackingCode,
		Form:         form,
	}
}
