package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp переводит тест в пустой каталог, чтобы не подхватить чужой .env
func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-3-flash-preview", cfg.GeminiModel)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiMapsModel)
	assert.Equal(t, 5*time.Minute, cfg.NewsPollInterval)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 5, cfg.AIRateBurst)
	assert.False(t, cfg.BroadcastEnabled())
}

func TestLoadConfig_Overrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("NEWS_POLL_INTERVAL", "90s")
	t.Setenv("AI_RATE_LIMIT", "2.5")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.NewsPollInterval)
	assert.Equal(t, 2.5, cfg.AIRateLimit)
	assert.Equal(t, 0, cfg.RedisDB) // Некорректное значение заменяется значением по умолчанию
	assert.True(t, cfg.BroadcastEnabled())
}

func TestLoadConfig_LegacyAPIKey(t *testing.T) {
	chdirTemp(t)
	t.Setenv("GEMINI_API_KEY", "")
	os.Unsetenv("GEMINI_API_KEY")
	t.Setenv("API_KEY", "legacy-key")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "legacy-key", cfg.GeminiAPIKey)
}

func TestLoadConfig_MissingAPIKey(t *testing.T) {
	chdirTemp(t)
	t.Setenv("GEMINI_API_KEY", "")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoadConfig_InvalidPollInterval(t *testing.T) {
	chdirTemp(t)
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("NEWS_POLL_INTERVAL", "-1m")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "NEWS_POLL_INTERVAL")
}

func TestLoadConfig_InvalidRateLimit(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero rate", "AI_RATE_LIMIT", "0"},
		{"negative rate", "AI_RATE_LIMIT", "-2"},
		{"zero burst", "AI_RATE_BURST", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			t.Setenv("GEMINI_API_KEY", "test-key")
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
