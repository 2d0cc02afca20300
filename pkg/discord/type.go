package discord

import (
	"time"

	pkghttp "insight-srv/pkg/http"
	"insight-srv/pkg/log"
)

const (
	// webhookBaseURL is the Discord webhook endpoint prefix.
	webhookBaseURL = "https://discord.com/api/webhooks"
	// requestTimeout bounds each webhook call.
	requestTimeout = 10 * time.Second
)

// discordImpl implements IDiscord.
type discordImpl struct {
	l       log.Logger
	webhook *DiscordWebhook
	client  pkghttp.IClient
}

func newHTTPClient() pkghttp.IClient {
	return pkghttp.NewClient(pkghttp.ClientConfig{
		Timeout: requestTimeout,
		Retries: 0,
	})
}

// EmbedField represents a field in a Discord embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Embed represents a Discord embed message.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

// WebhookPayload represents the payload sent to Discord webhook.
type WebhookPayload struct {
	Content  string  `json:"content,omitempty"`
	Username string  `json:"username,omitempty"`
	Embeds   []Embed `json:"embeds,omitempty"`
}
