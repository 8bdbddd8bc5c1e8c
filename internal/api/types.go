package api

import "github.com/hanifn/suara/domain/entities"

// SynthesisRequest represents the request payload for speech synthesis
type SynthesisRequest struct {
	Text    string `json:"text"`
	VoiceID string `json:"voice_id,omitempty"`
}

// SynthesisResponse represents the response payload for a successful synthesis
type SynthesisResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	AudioURL   string `json:"audio_url"`
	TextLength int    `json:"text_length"`
}

// VoicesResponse represents the response payload for the voice catalog
type VoicesResponse struct {
	Success bool             `json:"success"`
	Voices  []entities.Voice `json:"voices"`
}

// ValidationErrorResponse reports field-level validation failures
type ValidationErrorResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// ErrorResponse represents a synthesis or internal error
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ErrorCode int    `json:"error_code,omitempty"`
}
