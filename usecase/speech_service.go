package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hanifn/suara/domain/entities"
	"github.com/hanifn/suara/domain/repositories"
	"github.com/hanifn/suara/internal/config"
)

const (
	maxTextLength    = 5000
	maxVoiceIDLength = 100
)

// ValidationError reports a malformed or out-of-bounds input field.
// It is produced before any outbound call or storage write.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// SynthesisResult is the outcome of a successful synthesis call.
type SynthesisResult struct {
	URL        string
	Filename   string
	TextLength int
}

// SpeechService orchestrates the synthesis flow: validate the input,
// call the remote speech API, persist the audio, and hand back a URL.
type SpeechService struct {
	synthesizer    repositories.Synthesizer
	store          repositories.Storage
	defaultVoiceID string
	ttl            time.Duration
	logger         *zap.Logger
}

// NewSpeechService creates a new speech service.
func NewSpeechService(
	synthesizer repositories.Synthesizer,
	store repositories.Storage,
	cfg *config.Config,
	logger *zap.Logger,
) *SpeechService {
	return &SpeechService{
		synthesizer:    synthesizer,
		store:          store,
		defaultVoiceID: cfg.VoiceID,
		ttl:            cfg.Storage.TTL,
		logger:         logger,
	}
}

// Synthesize validates text, converts it to speech, stores the audio
// artifact, and returns its public URL. Validation failures short-circuit
// before any side effect; remote failures propagate unchanged.
func (s *SpeechService) Synthesize(ctx context.Context, text string, voiceID string) (*SynthesisResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Field: "text", Message: "text must not be empty"}
	}

	textLength := utf8.RuneCountInString(text)
	if textLength > maxTextLength {
		return nil, &ValidationError{Field: "text", Message: "text exceeds the 5000 character limit"}
	}

	if utf8.RuneCountInString(voiceID) > maxVoiceIDLength {
		return nil, &ValidationError{Field: "voice_id", Message: "voice id exceeds the 100 character limit"}
	}

	if voiceID == "" {
		voiceID = s.defaultVoiceID
	}

	audio, err := s.synthesizer.Synthesize(ctx, text, voiceID)
	if err != nil {
		s.logger.Error("Speech synthesis failed",
			zap.String("voiceID", voiceID),
			zap.Int("textLength", textLength),
			zap.Error(err))
		return nil, err
	}

	filename := fmt.Sprintf("tts_%s.mp3", uuid.New().String())
	if err := s.store.Put(filename, audio); err != nil {
		s.logger.Error("Failed to store audio artifact",
			zap.String("filename", filename),
			zap.Error(err))
		return nil, fmt.Errorf("store audio artifact: %w", err)
	}

	url := s.store.URL(filename)

	s.logger.Info("Speech synthesized",
		zap.String("filename", filename),
		zap.String("voiceID", voiceID),
		zap.Int("textLength", textLength),
		zap.Int("audioBytes", len(audio)))

	return &SynthesisResult{
		URL:        url,
		Filename:   filename,
		TextLength: textLength,
	}, nil
}

// Voices fetches the catalog of available voices from the remote API.
// Every call re-fetches; nothing is cached.
func (s *SpeechService) Voices(ctx context.Context) ([]entities.Voice, error) {
	return s.synthesizer.Voices(ctx)
}

// Cleanup deletes every stored artifact last modified strictly before
// now minus the configured TTL and returns how many were removed.
// A zero TTL means unbounded retention. A failed delete is skipped and
// the scan continues; the joined failures are returned alongside the
// partial count.
func (s *SpeechService) Cleanup() (int, error) {
	if s.ttl == 0 {
		return 0, nil
	}

	names, err := s.store.Files()
	if err != nil {
		return 0, fmt.Errorf("list artifacts: %w", err)
	}

	threshold := time.Now().Add(-s.ttl)
	deleted := 0

	var errs []error
	for _, name := range names {
		lastModified, err := s.store.LastModified(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !lastModified.Before(threshold) {
			continue
		}
		if err := s.store.Delete(name); err != nil {
			errs = append(errs, err)
			continue
		}
		deleted++
	}

	return deleted, errors.Join(errs...)
}
