package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("ELEVENLABS_API_KEY", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ELEVENLABS_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "https://api.elevenlabs.io/v1", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "21m00Tcm4TlvDq8ikWAM", cfg.VoiceID)
	assert.Equal(t, "eleven_multilingual_v2", cfg.ModelID)
	assert.Equal(t, 0.5, cfg.VoiceSettings.Stability)
	assert.Equal(t, 0.75, cfg.VoiceSettings.SimilarityBoost)
	assert.Equal(t, 0.0, cfg.VoiceSettings.Style)
	assert.True(t, cfg.VoiceSettings.UseSpeakerBoost)
	assert.Equal(t, "audio", cfg.Storage.Path)
	assert.Equal(t, "/audio", cfg.Storage.PublicBaseURL)
	assert.Equal(t, 60*time.Minute, cfg.Storage.TTL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.SpeechPerMinute)
	assert.Equal(t, 30, cfg.VoicesPerMinute)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ELEVENLABS_API_KEY", "test-key")
	t.Setenv("ELEVENLABS_BASE_URL", "http://localhost:9000/v1")
	t.Setenv("ELEVENLABS_TIMEOUT_SECONDS", "5")
	t.Setenv("ELEVENLABS_VOICE_ID", "custom-voice")
	t.Setenv("ELEVENLABS_MODEL_ID", "eleven_turbo_v2")
	t.Setenv("ELEVENLABS_STABILITY", "0.3")
	t.Setenv("ELEVENLABS_USE_SPEAKER_BOOST", "false")
	t.Setenv("AUDIO_STORAGE_PATH", "/var/audio")
	t.Setenv("AUDIO_TTL_MINUTES", "0")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/v1", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "custom-voice", cfg.VoiceID)
	assert.Equal(t, "eleven_turbo_v2", cfg.ModelID)
	assert.Equal(t, 0.3, cfg.VoiceSettings.Stability)
	assert.False(t, cfg.VoiceSettings.UseSpeakerBoost)
	assert.Equal(t, "/var/audio", cfg.Storage.Path)
	assert.Equal(t, time.Duration(0), cfg.Storage.TTL, "zero TTL means unbounded retention")
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("ELEVENLABS_API_KEY", "test-key")
	t.Setenv("ELEVENLABS_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("ELEVENLABS_STABILITY", "1.5")
	t.Setenv("AUDIO_TTL_MINUTES", "-10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 0.5, cfg.VoiceSettings.Stability, "out-of-range tuning value falls back")
	assert.Equal(t, 60*time.Minute, cfg.Storage.TTL, "negative TTL falls back")
}
