package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"tripideas/metrics"
)

// ImageFinder looks up a single image URL for a query. An empty result
// means no image was found; lookups never fail loudly.
type ImageFinder interface {
	FindImage(ctx context.Context, query string) string
}

// ImageClient queries the Google Custom Search JSON API in image mode.
type ImageClient struct {
	apiKey     string
	engineID   string
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *zap.Logger
}

func NewImageClient(apiKey, engineID, baseURL string, timeout time.Duration, logger *zap.Logger) *ImageClient {
	return &ImageClient{
		apiKey:   apiKey,
		engineID: engineID,
		baseURL:  baseURL,
		timeout:  timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.Named("images"),
	}
}

// Configured reports whether both the key and the engine id are present.
func (c *ImageClient) Configured() bool {
	return c.apiKey != "" && c.engineID != ""
}

func (c *ImageClient) FindImage(ctx context.Context, query string) string {
	if !c.Configured() {
		metrics.ImageLookups.WithLabelValues(metrics.ImageSkipped).Inc()
		return ""
	}

	link, err := c.search(ctx, query)
	if err != nil {
		metrics.ImageLookups.WithLabelValues(metrics.ImageError).Inc()
		c.logger.Warn("image search failed", zap.String("query", query), zap.Error(err))
		return ""
	}
	if link == "" {
		metrics.ImageLookups.WithLabelValues(metrics.ImageEmpty).Inc()
		return ""
	}

	metrics.ImageLookups.WithLabelValues(metrics.ImageFound).Inc()
	return link
}

func (c *ImageClient) search(ctx context.Context, query string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	searchURL, err := c.buildSearchURL(query)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("custom search error (%d): %s", resp.StatusCode, string(body))
	}
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("custom search returned malformed JSON")
	}

	return gjson.GetBytes(body, "items.0.link").String(), nil
}

func (c *ImageClient) buildSearchURL(query string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid image search URL: %w", err)
	}
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("cx", c.engineID)
	params.Set("q", query)
	params.Set("searchType", "image")
	params.Set("num", "1")
	params.Set("safe", "active")
	u.RawQuery = params.Encode()
	return u.String(), nil
}
