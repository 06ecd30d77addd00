package gemini

import (
	pkghttp "engagement-srv/pkg/http"
)

const (
	// BaseURL is the Gemini generateContent endpoint prefix.
	BaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-1.5-pro"

	// DefaultTemperature keeps reply drafts on-message without sounding canned.
	DefaultTemperature = 0.7
	// DefaultMaxOutputTokens bounds drafts to short social replies.
	DefaultMaxOutputTokens = 256
)

// GeminiConfig is the configuration for the Gemini client.
type GeminiConfig struct {
	APIKey string
	Model  string

	// Zero values fall back to the reply-drafting defaults above.
	Temperature     float64
	MaxOutputTokens int
}

// geminiImpl implements IGemini.
type geminiImpl struct {
	apiKey          string
	model           string
	temperature     float64
	maxOutputTokens int
	httpClient      pkghttp.IClient
}

// Request is the generateContent request body.
type Request struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

// GenerationConfig tunes the completion for short reply drafting.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// Content is a single message in the request.
type Content struct {
	Parts []Part `json:"parts"`
}

// Part is a text fragment.
type Part struct {
	Text string `json:"text"`
}

// Response is the generateContent response body.
type Response struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate is a generated completion.
type Candidate struct {
	Content Content `json:"content"`
}
