package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithDefaults(t *testing.T) {
	t.Setenv("SLIDECAST_LLM_GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.Server.BaseURL)
	assert.Equal(t, "static", cfg.Server.StaticDir)
	assert.Equal(t, 5, cfg.LLM.SlideCount)
	assert.Equal(t, 40, cfg.LLM.WordsPerSlide)
	assert.Equal(t, 10, cfg.LLM.QuizQuestionCount)
	assert.Equal(t, "pt", cfg.TTS.Language)
	assert.Equal(t, 500, cfg.TTS.PacingMs)
	assert.Empty(t, cfg.TTS.ElevenLabsAPIKey, "premium TTS credential is optional")
}

func TestLoadMissingGeminiKeyFails(t *testing.T) {
	t.Setenv("SLIDECAST_LLM_GEMINI_API_KEY", "")

	_, err := Load()
	require.Error(t, err, "a missing generation credential is startup-fatal")
	assert.Contains(t, err.Error(), "GeminiAPIKey")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SLIDECAST_LLM_GEMINI_API_KEY", "k")
	t.Setenv("SLIDECAST_SERVER_PORT", "9999")
	t.Setenv("SLIDECAST_SERVER_BASE_URL", "https://lessons.example.com")
	t.Setenv("SLIDECAST_TTS_ELEVEN_LABS_API_KEY", "el-key")
	t.Setenv("SLIDECAST_LLM_SLIDE_COUNT", "6")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "https://lessons.example.com", cfg.Server.BaseURL)
	assert.Equal(t, "el-key", cfg.TTS.ElevenLabsAPIKey)
	assert.Equal(t, 6, cfg.LLM.SlideCount)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("SLIDECAST_LLM_GEMINI_API_KEY", "k")
	t.Setenv("SLIDECAST_SERVER_LOG_LEVEL", "loud")

	_, err := Load()
	require.Error(t, err)
}
