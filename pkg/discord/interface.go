package discord

import (
	"context"
	"errors"
	"net/http"
	"time"

	"engagement-srv/pkg/log"
)

// IDiscord sends operational alerts to a Discord webhook.
// Implementations are safe for concurrent use.
type IDiscord interface {
	SendError(ctx context.Context, title, description string) error
	SendWarning(ctx context.Context, title, description string) error
	SendInfo(ctx context.Context, title, description string) error
}

// ErrWebhookNotConfigured is returned by New when the webhook ID or token is missing.
var ErrWebhookNotConfigured = errors.New("discord: webhook not configured")

// New creates a new Discord notifier. Returns the interface.
func New(l log.Logger, webhook *DiscordWebhook) (IDiscord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, ErrWebhookNotConfigured
	}

	return &discordImpl{
		l:       l,
		webhook: webhook,
		config: Config{
			Timeout:         10 * time.Second,
			DefaultUsername: "engagement-srv",
		},
		client: &http.Client{Timeout: 10 * time.Second},
	}, nil
}
