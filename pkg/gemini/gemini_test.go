package gemini

import "testing"

func TestNew(t *testing.T) {
	t.Run("defaults tune for short reply drafts", func(t *testing.T) {
		g, ok := New(GeminiConfig{APIKey: "k"}).(*geminiImpl)
		if !ok {
			t.Fatal("unexpected implementation type")
		}
		if g.model != DefaultModel {
			t.Errorf("model = %q, want %q", g.model, DefaultModel)
		}
		if g.temperature != DefaultTemperature {
			t.Errorf("temperature = %v, want %v", g.temperature, DefaultTemperature)
		}
		if g.maxOutputTokens != DefaultMaxOutputTokens {
			t.Errorf("maxOutputTokens = %d, want %d", g.maxOutputTokens, DefaultMaxOutputTokens)
		}
	})

	t.Run("explicit generation settings win", func(t *testing.T) {
		g, ok := New(GeminiConfig{
			APIKey:          "k",
			Model:           "gemini-1.5-flash",
			Temperature:     0.2,
			MaxOutputTokens: 64,
		}).(*geminiImpl)
		if !ok {
			t.Fatal("unexpected implementation type")
		}
		if g.model != "gemini-1.5-flash" || g.temperature != 0.2 || g.maxOutputTokens != 64 {
			t.Errorf("config not applied: %+v", g)
		}
	})
}
