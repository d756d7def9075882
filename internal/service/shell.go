package service

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/shenikar/rescuenet_portal/internal/models"
	"github.com/sirupsen/logrus"
)

// LanguageCatalog - список поддерживаемых языков интерфейса
type LanguageCatalog interface {
	HasLanguage(code string) bool
	DefaultLanguage() string
}

const (
	sosCountdownFrom = 5
	sosTick          = time.Second
)

// Shell хранит активную вкладку, язык и обратный отсчет SOS одной сессии
type Shell struct {
	languages LanguageCatalog
	logger    *logrus.Logger
	tick      time.Duration

	mu       sync.Mutex
	tab      models.Tab
	language string
	sos      models.SOSState
	run      uint64
	stop     chan struct{}
	done     chan struct{}
}

func NewShell(languages LanguageCatalog, logger *logrus.Logger) *Shell {
	return &Shell{
		languages: languages,
		logger:    logger,
		tick:      sosTick,
		tab:       models.TabMap,
		language:  languages.DefaultLanguage(),
	}
}

func (s *Shell) SelectTab(tab models.Tab) (models.ShellState, error) {
	if !slices.Contains(models.Tabs, tab) {
		return s.State(), fmt.Errorf("service: tab %q: %w", tab, ErrInvalidTab)
	}

	s.mu.Lock()
	s.tab = tab
	s.mu.Unlock()

	return s.State(), nil
}

func (s *Shell) SelectLanguage(code string) (models.ShellState, error) {
	if !s.languages.HasLanguage(code) {
		return s.State(), fmt.Errorf("service: language %q: %w", code, ErrUnknownLanguage)
	}

	s.mu.Lock()
	s.language = code
	s.mu.Unlock()

	return s.State(), nil
}

// TriggerSOS запускает обратный отсчет. Повторное нажатие начинает отсчет заново.
// Замена отсчета делается под одной блокировкой, вытесненный отсчет
// останавливается и дожидается до возврата.
func (s *Shell) TriggerSOS() models.ShellState {
	stop := make(chan struct{})
	done := make(chan struct{})

	s.mu.Lock()
	prevStop, prevDone := s.stop, s.done
	s.sos = models.SOSState{Active: true, Remaining: sosCountdownFrom}
	s.stop, s.done = stop, done
	s.run++
	run := s.run
	s.mu.Unlock()

	go s.runCountdown(run, stop, done)
	if prevStop != nil {
		close(prevStop)
		<-prevDone
	}

	s.logger.WithField("service", "shell").Info("SOS countdown started")
	return s.State()
}

// CancelSOS останавливает отсчет и закрывает окно SOS
func (s *Shell) CancelSOS() models.ShellState {
	s.stopCountdown()

	s.mu.Lock()
	s.sos = models.SOSState{}
	s.mu.Unlock()

	return s.State()
}

// Close останавливает таймеры сессии
func (s *Shell) Close() {
	s.stopCountdown()
}

func (s *Shell) State() models.ShellState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.ShellState{
		ActiveTab: s.tab,
		Language:  s.language,
		SOS:       s.sos,
	}
}

func (s *Shell) stopCountdown() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.mu.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}
}

// runCountdown уменьшает счетчик, пока запуск run остается текущим
func (s *Shell) runCountdown(run uint64, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			if s.run != run {
				s.mu.Unlock()
				return
			}
			s.sos.Remaining--
			dispatched := s.sos.Remaining <= 0
			if dispatched {
				s.sos.Remaining = 0
				s.sos.Dispatched = true
			}
			s.mu.Unlock()

			if dispatched {
				s.logger.WithField("service", "shell").Warn("SOS alert dispatched")
				return
			}
		}
	}
}
