// Package tts implements the Synthesizer interface against the
// ElevenLabs HTTP API.
package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/hanifn/suara/domain/entities"
	"github.com/hanifn/suara/domain/repositories"
	"github.com/hanifn/suara/internal/config"
)

// SynthesisError is a classified failure of a remote speech API call.
// StatusCode carries an HTTP-style classification; Body holds the raw
// remote payload when one was received.
type SynthesisError struct {
	Message    string
	StatusCode int
	Body       string
	Err        error
}

func (e *SynthesisError) Error() string {
	return e.Message
}

func (e *SynthesisError) Unwrap() error {
	return e.Err
}

// ElevenLabs calls the ElevenLabs text-to-speech API.
type ElevenLabs struct {
	apiKey        string
	baseURL       string
	modelID       string
	voiceSettings config.VoiceSettings
	client        *http.Client
	logger        *zap.Logger
}

// Ensure ElevenLabs implements the Synthesizer interface
var _ repositories.Synthesizer = (*ElevenLabs)(nil)

// synthesisRequest is the JSON body sent to the text-to-speech endpoint.
type synthesisRequest struct {
	Text          string               `json:"text"`
	ModelID       string               `json:"model_id"`
	VoiceSettings config.VoiceSettings `json:"voice_settings"`
}

// NewElevenLabs creates a new ElevenLabs client from the process configuration.
func NewElevenLabs(cfg *config.Config, logger *zap.Logger) (*ElevenLabs, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("eleven labs API key is required")
	}

	return &ElevenLabs{
		apiKey:        cfg.APIKey,
		baseURL:       cfg.BaseURL,
		modelID:       cfg.ModelID,
		voiceSettings: cfg.VoiceSettings,
		client:        &http.Client{Timeout: cfg.Timeout},
		logger:        logger,
	}, nil
}

// Synthesize converts text to speech and returns the raw MP3 bytes.
// Any failure is returned as a *SynthesisError; no retry is attempted.
func (e *ElevenLabs) Synthesize(ctx context.Context, text string, voiceID string) ([]byte, error) {
	requestBody, err := json.Marshal(synthesisRequest{
		Text:          text,
		ModelID:       e.modelID,
		VoiceSettings: e.voiceSettings,
	})
	if err != nil {
		return nil, &SynthesisError{
			Message:    "error calling remote speech API",
			StatusCode: http.StatusInternalServerError,
			Err:        err,
		}
	}

	url := fmt.Sprintf("%s/text-to-speech/%s", e.baseURL, voiceID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(requestBody))
	if err != nil {
		return nil, &SynthesisError{
			Message:    "error calling remote speech API",
			StatusCode: http.StatusInternalServerError,
			Err:        err,
		}
	}

	httpReq.Header.Set("xi-api-key", e.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "audio/mpeg")

	e.logger.Debug("Sending synthesis request",
		zap.String("voiceID", voiceID),
		zap.Int("textLength", len(text)))

	resp, err := e.client.Do(httpReq)
	if err != nil {
		// Covers timeouts as well as connection failures.
		return nil, &SynthesisError{
			Message:    fmt.Sprintf("error connecting to remote speech API: %v", err),
			StatusCode: http.StatusInternalServerError,
			Err:        err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		synthErr := classifyStatus(resp.StatusCode, errorBody)
		e.logger.Error("Eleven Labs API returned error",
			zap.Int("statusCode", resp.StatusCode),
			zap.String("response", synthErr.Body))
		return nil, synthErr
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &SynthesisError{
			Message:    fmt.Sprintf("error connecting to remote speech API: %v", err),
			StatusCode: http.StatusInternalServerError,
			Err:        err,
		}
	}

	if len(audio) == 0 {
		return nil, &SynthesisError{
			Message:    "response body is empty",
			StatusCode: http.StatusInternalServerError,
		}
	}

	return audio, nil
}

// Voices retrieves the available voices from the ElevenLabs API.
func (e *ElevenLabs) Voices(ctx context.Context) ([]entities.Voice, error) {
	url := fmt.Sprintf("%s/voices", e.baseURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &SynthesisError{
			Message:    "error fetching available voices",
			StatusCode: http.StatusInternalServerError,
			Err:        err,
		}
	}

	httpReq.Header.Set("xi-api-key", e.apiKey)

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, &SynthesisError{
			Message:    "error fetching available voices",
			StatusCode: http.StatusInternalServerError,
			Err:        err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &SynthesisError{
			Message:    "error fetching available voices",
			StatusCode: resp.StatusCode,
			Body:       string(errorBody),
		}
	}

	var voicesResponse struct {
		Voices []entities.Voice `json:"voices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&voicesResponse); err != nil {
		return nil, &SynthesisError{
			Message:    "error fetching available voices",
			StatusCode: http.StatusInternalServerError,
			Err:        err,
		}
	}

	e.logger.Debug("Retrieved available voices", zap.Int("count", len(voicesResponse.Voices)))

	if voicesResponse.Voices == nil {
		return []entities.Voice{}, nil
	}
	return voicesResponse.Voices, nil
}

// classifyStatus maps a non-200 remote status code to a user-facing error.
func classifyStatus(statusCode int, body []byte) *SynthesisError {
	synthErr := &SynthesisError{
		StatusCode: statusCode,
		Body:       string(body),
	}

	switch statusCode {
	case http.StatusUnauthorized:
		synthErr.Message = "API key is invalid or unauthorized"
	case http.StatusNotFound:
		synthErr.Message = "voice id not found"
	case http.StatusUnprocessableEntity:
		synthErr.Message = fmt.Sprintf("invalid parameters: %s", detailMessage(body))
	case http.StatusTooManyRequests:
		synthErr.Message = "rate limit exceeded, retry shortly"
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		synthErr.Message = "internal error in the remote speech API, retry"
	default:
		synthErr.Message = "error calling remote speech API"
	}

	return synthErr
}

// detailMessage extracts the validation detail from a 422 response body.
func detailMessage(body []byte) string {
	var payload struct {
		Detail struct {
			Message string `json:"message"`
		} `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail.Message != "" {
		return payload.Detail.Message
	}
	return "unknown error"
}
