// Package config loads the process configuration from the environment.
// The resulting Config is built once at startup and never mutated.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

const (
	defaultBaseURL        = "https://api.elevenlabs.io/v1"
	defaultVoiceID        = "21m00Tcm4TlvDq8ikWAM" // Rachel voice
	defaultModelID        = "eleven_multilingual_v2"
	defaultTimeoutSeconds = 30

	defaultStability       = 0.5
	defaultSimilarityBoost = 0.75
	defaultStyle           = 0.0

	defaultStoragePath = "audio"
	defaultTTLMinutes  = 60

	defaultPort            = "8080"
	defaultSpeechPerMinute = 10
	defaultVoicesPerMinute = 30
	defaultPublicURLPrefix = "/audio"
)

// ErrMissingAPIKey is returned when ELEVENLABS_API_KEY is not set.
// The server cannot do anything useful without it.
var ErrMissingAPIKey = errors.New("ELEVENLABS_API_KEY is required")

// VoiceSettings holds the tuning parameters sent with every synthesis request.
type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
}

// StorageConfig describes where artifacts live and how long they are kept.
type StorageConfig struct {
	// Path is the directory audio files are written to.
	Path string
	// PublicBaseURL prefixes the artifact name to form its public URL.
	PublicBaseURL string
	// TTL bounds artifact lifetime; zero means keep forever.
	TTL time.Duration
}

// Config is the immutable process-wide configuration.
type Config struct {
	APIKey        string
	BaseURL       string
	Timeout       time.Duration
	VoiceID       string
	ModelID       string
	VoiceSettings VoiceSettings
	Storage       StorageConfig

	Port            string
	SpeechPerMinute int
	VoicesPerMinute int
}

// Load reads the configuration from environment variables, applying
// defaults for everything except the API key.
func Load() (*Config, error) {
	apiKey := os.Getenv("ELEVENLABS_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &Config{
		APIKey:  apiKey,
		BaseURL: envString("ELEVENLABS_BASE_URL", defaultBaseURL),
		Timeout: time.Duration(envInt("ELEVENLABS_TIMEOUT_SECONDS", defaultTimeoutSeconds)) * time.Second,
		VoiceID: envString("ELEVENLABS_VOICE_ID", defaultVoiceID),
		ModelID: envString("ELEVENLABS_MODEL_ID", defaultModelID),
		VoiceSettings: VoiceSettings{
			Stability:       envFloat("ELEVENLABS_STABILITY", defaultStability),
			SimilarityBoost: envFloat("ELEVENLABS_SIMILARITY_BOOST", defaultSimilarityBoost),
			Style:           envFloat("ELEVENLABS_STYLE", defaultStyle),
			UseSpeakerBoost: envBool("ELEVENLABS_USE_SPEAKER_BOOST", true),
		},
		Storage: StorageConfig{
			Path:          envString("AUDIO_STORAGE_PATH", defaultStoragePath),
			PublicBaseURL: envString("AUDIO_PUBLIC_BASE_URL", defaultPublicURLPrefix),
			TTL:           time.Duration(envInt("AUDIO_TTL_MINUTES", defaultTTLMinutes)) * time.Minute,
		},
		Port:            envString("PORT", defaultPort),
		SpeechPerMinute: envInt("SPEECH_RATE_LIMIT_PER_MINUTE", defaultSpeechPerMinute),
		VoicesPerMinute: envInt("VOICES_RATE_LIMIT_PER_MINUTE", defaultVoicesPerMinute),
	}

	return cfg, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
