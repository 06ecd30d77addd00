package usecase

import (
	"strings"

	"engagement-srv/internal/model"
)

// matchTrigger reports whether an interaction matches a rule trigger.
// Every populated criterion must match; an empty criterion matches all.
func matchTrigger(t model.RuleTrigger, it model.Interaction) bool {
	if len(t.Platforms) > 0 && !containsPlatform(t.Platforms, it.Platform) {
		return false
	}
	if len(t.Kinds) > 0 && !containsKind(t.Kinds, it.Kind) {
		return false
	}
	if len(t.Sentiments) > 0 && !containsSentiment(t.Sentiments, it.Sentiment) {
		return false
	}
	if len(t.Keywords) > 0 && !containsKeyword(t.Keywords, it.Content) {
		return false
	}
	return true
}

func containsPlatform(platforms []model.Platform, p model.Platform) bool {
	for _, v := range platforms {
		if v == p {
			return true
		}
	}
	return false
}

func containsKind(kinds []model.InteractionKind, k model.InteractionKind) bool {
	for _, v := range kinds {
		if v == k {
			return true
		}
	}
	return false
}

func containsSentiment(sentiments []model.Sentiment, s model.Sentiment) bool {
	for _, v := range sentiments {
		if v == s {
			return true
		}
	}
	return false
}

func containsKeyword(keywords []string, content string) bool {
	lowered := strings.ToLower(content)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
