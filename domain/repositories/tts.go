package repositories

import (
	"context"

	"github.com/hanifn/suara/domain/entities"
)

// Synthesizer converts text into audio through a remote speech API.
type Synthesizer interface {
	// Synthesize returns the raw audio bytes for the given text and voice.
	Synthesize(ctx context.Context, text string, voiceID string) ([]byte, error)
	// Voices fetches the catalog of available voices.
	Voices(ctx context.Context) ([]entities.Voice, error)
}
