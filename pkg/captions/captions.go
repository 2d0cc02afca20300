package captions

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strings"
)

// GetTranscript implements ICaptions.
func (c *captionsImpl) GetTranscript(ctx context.Context, videoID string) (string, bool, error) {
	for _, lang := range c.config.Languages {
		text, ok, err := c.fetchTrack(ctx, videoID, lang)
		if err != nil {
			return "", false, err
		}
		if ok {
			c.l.Debugf(ctx, "captions.GetTranscript: videoID=%s lang=%s length=%d", videoID, lang, len(text))
			return text, true, nil
		}
	}
	return "", false, nil
}

func (c *captionsImpl) fetchTrack(ctx context.Context, videoID, lang string) (string, bool, error) {
	params := url.Values{}
	params.Set("v", videoID)
	params.Set("lang", lang)
	endpoint := fmt.Sprintf("%s?%s", c.config.BaseURL, params.Encode())

	body, status, err := c.client.Get(ctx, endpoint, nil)
	if err != nil {
		return "", false, fmt.Errorf("captions: fetch track %s/%s: %w", videoID, lang, err)
	}
	// The endpoint answers 200 with an empty body when no track exists.
	if status != http.StatusOK || len(strings.TrimSpace(string(body))) == 0 {
		return "", false, nil
	}

	var doc transcript
	if err := xml.Unmarshal(body, &doc); err != nil {
		c.l.Warnf(ctx, "captions.fetchTrack: bad XML for %s/%s: %v", videoID, lang, err)
		return "", false, nil
	}
	if len(doc.Texts) == 0 {
		return "", false, nil
	}

	parts := make([]string, 0, len(doc.Texts))
	for _, t := range doc.Texts {
		s := strings.TrimSpace(html.UnescapeString(t.Content))
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " "), len(parts) > 0, nil
}
