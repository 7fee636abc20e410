// Package translate wraps the machine-translation service used for news
// headlines. The service is an opaque text-in/text-out collaborator; the
// assembler falls back to the original text whenever it fails.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"MarketWarRoom/internal/metrics"
)

// Translator translates a single text into the configured target language.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// GoogleTranslator calls the public Google translate endpoint.
type GoogleTranslator struct {
	Client     *http.Client
	TargetLang string
}

// NewGoogleTranslator creates a translator for the given target language
// with optional proxy support.
func NewGoogleTranslator(targetLang, proxyURL string) *GoogleTranslator {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &GoogleTranslator{
		Client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
		TargetLang: targetLang,
	}
}

// Translate returns the translated text. The response is a nested JSON
// array; the first element holds the translated segments.
func (g *GoogleTranslator) Translate(ctx context.Context, text string) (string, error) {
	endpoint := fmt.Sprintf(
		"https://translate.googleapis.com/translate_a/single?client=gtx&sl=en&tl=%s&dt=t&q=%s",
		url.QueryEscape(g.TargetLang), url.QueryEscape(text))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := g.Client.Do(req)
	if err != nil {
		metrics.Translations.WithLabelValues("error").Inc()
		return "", fmt.Errorf("translate fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.Translations.WithLabelValues("error").Inc()
		return "", fmt.Errorf("translate read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		metrics.Translations.WithLabelValues("error").Inc()
		return "", fmt.Errorf("translate: status %d", resp.StatusCode)
	}

	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		metrics.Translations.WithLabelValues("error").Inc()
		return "", fmt.Errorf("translate decode: %w", err)
	}
	if len(payload) == 0 {
		metrics.Translations.WithLabelValues("error").Inc()
		return "", fmt.Errorf("translate: empty response")
	}

	var segments [][]interface{}
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		metrics.Translations.WithLabelValues("error").Inc()
		return "", fmt.Errorf("translate decode segments: %w", err)
	}

	out := ""
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		if s, ok := seg[0].(string); ok {
			out += s
		}
	}
	if out == "" {
		metrics.Translations.WithLabelValues("error").Inc()
		return "", fmt.Errorf("translate: no translated text")
	}
	metrics.Translations.WithLabelValues("ok").Inc()
	return out, nil
}

// NoopTranslator returns the input unchanged, used when translation is
// disabled in config.
type NoopTranslator struct{}

func (NoopTranslator) Translate(_ context.Context, text string) (string, error) {
	return text, nil
}
