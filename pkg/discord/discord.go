package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

func (d *discordImpl) SendError(ctx context.Context, title, description string) error {
	return d.send(ctx, title, description, colorError)
}

func (d *discordImpl) SendWarning(ctx context.Context, title, description string) error {
	return d.send(ctx, title, description, colorWarning)
}

func (d *discordImpl) SendInfo(ctx context.Context, title, description string) error {
	return d.send(ctx, title, description, colorInfo)
}

func (d *discordImpl) send(ctx context.Context, title, description string, color int) error {
	payload := webhookPayload{
		Username: d.config.DefaultUsername,
		Embeds: []Embed{
			{
				Title:       title,
				Description: description,
				Color:       color,
				Timestamp:   time.Now().UTC().Format(time.RFC3339),
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord: failed to marshal payload: %w", err)
	}

	url := fmt.Sprintf("https://discord.com/api/webhooks/%s/%s", d.webhook.ID, d.webhook.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("discord: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("discord: webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		d.l.Warnf(ctx, "discord: webhook returned status %d", resp.StatusCode)
		return fmt.Errorf("discord: webhook returned status %d", resp.StatusCode)
	}
	return nil
}
