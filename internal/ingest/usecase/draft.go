package usecase

import (
	"context"
	"fmt"
	"strings"

	"engagement-srv/internal/model"
)

// draftResponse produces the reply text a matched rule proposes. Template
// rules expand placeholders locally; AI rules go through Gemini.
func (uc *implUseCase) draftResponse(ctx context.Context, rule model.AutomationRule, it model.Interaction) (string, error) {
	if rule.Response.GenerateWithAI && uc.gemini != nil {
		draft, err := uc.gemini.Generate(ctx, buildDraftPrompt(rule, it))
		if err != nil {
			return "", fmt.Errorf("generate draft: %w", err)
		}
		return strings.TrimSpace(draft), nil
	}
	return expandTemplate(rule.Response.Template, it), nil
}

func expandTemplate(template string, it model.Interaction) string {
	r := strings.NewReplacer(
		"{author}", it.Author.Name,
		"{platform}", string(it.Platform),
		"{content}", it.Content,
	)
	return r.Replace(template)
}

func buildDraftPrompt(rule model.AutomationRule, it model.Interaction) string {
	var b strings.Builder
	b.WriteString("Draft a short reply to this ")
	b.WriteString(string(it.Kind))
	b.WriteString(" on ")
	b.WriteString(string(it.Platform))
	b.WriteString(".\n")
	if it.Sentiment != "" {
		fmt.Fprintf(&b, "The sentiment is %s.\n", it.Sentiment)
	}
	if it.Rating != nil {
		fmt.Fprintf(&b, "The rating is %d out of 5.\n", *it.Rating)
	}
	if rule.Response.Template != "" {
		fmt.Fprintf(&b, "Follow this guidance: %s\n", rule.Response.Template)
	}
	fmt.Fprintf(&b, "Author: %s\nMessage: %s\n", it.Author.Name, it.Content)
	b.WriteString("Reply with the response text only.")
	return b.String()
}
