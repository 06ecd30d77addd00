package gemini

import (
	"context"
	"time"

	pkghttp "engagement-srv/pkg/http"
)

// IGemini generates text completions via the Gemini REST API.
// Implementations are safe for concurrent use.
type IGemini interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// New creates a new Gemini client. Returns the interface.
func New(cfg GeminiConfig) IGemini {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = DefaultTemperature
	}
	maxTokens := cfg.MaxOutputTokens
	if maxTokens == 0 {
		maxTokens = DefaultMaxOutputTokens
	}
	return &geminiImpl{
		apiKey:          cfg.APIKey,
		model:           model,
		temperature:     temperature,
		maxOutputTokens: maxTokens,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   60 * time.Second,
			Retries:   3,
			RetryWait: 1 * time.Second,
		}),
	}
}
