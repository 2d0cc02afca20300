package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var errWebhookRequired = errors.New("discord: webhook ID and token are required")

const (
	colorError = 0xE74C3C
	colorInfo  = 0x3498DB
)

// SendMessage sends a plain content message to the webhook.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{Content: content})
}

// SendError sends an error embed with the wrapped error as a field.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	embed := Embed{
		Title:       title,
		Description: description,
		Color:       colorError,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	if err != nil {
		embed.Fields = append(embed.Fields, EmbedField{Name: "Error", Value: err.Error()})
	}
	return d.send(ctx, WebhookPayload{Embeds: []Embed{embed}})
}

// ReportBug sends an unexpected-failure report.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.send(ctx, WebhookPayload{
		Embeds: []Embed{{
			Title:       "Bug Report",
			Description: message,
			Color:       colorError,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		}},
	})
}

// GetWebhookURL returns the full webhook URL.
func (d *discordImpl) GetWebhookURL() string {
	return fmt.Sprintf("%s/%s/%s", webhookBaseURL, d.webhook.ID, d.webhook.Token)
}

// Close releases resources. No-op for webhook transport.
func (d *discordImpl) Close() error {
	return nil
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	body, status, err := d.client.Post(ctx, d.GetWebhookURL(), payload, nil)
	if err != nil {
		return fmt.Errorf("discord: webhook call failed: %w", err)
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		return fmt.Errorf("discord: webhook returned status %d, body: %s", status, string(body))
	}
	return nil
}
