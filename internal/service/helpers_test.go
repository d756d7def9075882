package service

import (
	"bytes"
	"testing"

	"github.com/shenikar/rescuenet_portal/internal/service/mocks"
	"github.com/shenikar/rescuenet_portal/internal/staticdata"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func newTestClient(t *testing.T) *mocks.MockIntelligenceClient {
	ctrl := gomock.NewController(t)
	return mocks.NewMockIntelligenceClient(ctrl)
}

func newTestStore() *staticdata.Store {
	return staticdata.MustLoadEmbedded()
}
