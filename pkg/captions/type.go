package captions

import (
	"time"

	pkghttp "insight-srv/pkg/http"
	pkglog "insight-srv/pkg/log"
)

// CaptionsConfig is the configuration for the captions client.
type CaptionsConfig struct {
	BaseURL   string
	Languages []string
	Timeout   time.Duration
}

type captionsImpl struct {
	l      pkglog.Logger
	config CaptionsConfig
	client pkghttp.IClient
}

// transcript is the timedtext XML document.
type transcript struct {
	Texts []transcriptText `xml:"text"`
}

type transcriptText struct {
	Start   string `xml:"start,attr"`
	Dur     string `xml:"dur,attr"`
	Content string `xml:",chardata"`
}
