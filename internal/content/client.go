package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is an HTTP client for the learning content service.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the service at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Ayah fetches one verse with its word glosses. Requests for surahs
// outside the served range fail with *SurahUnsupportedError without
// hitting the network.
func (c *Client) Ayah(ctx context.Context, surah, ayah int) (*Ayah, error) {
	if !Supported(surah) {
		return nil, &SurahUnsupportedError{Surah: surah}
	}

	raw, err := c.get(ctx, fmt.Sprintf("/api/ayah/%d/%d", surah, ayah))
	if err != nil {
		return nil, err
	}
	if err := validateAyah(raw); err != nil {
		return nil, err
	}

	var out Ayah
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &InvalidPayloadError{Err: err}
	}
	return &out, nil
}

// Lexicon fetches the global word gloss list used for quiz distractors.
func (c *Client) Lexicon(ctx context.Context) ([]LexiconEntry, error) {
	raw, err := c.get(ctx, "/api/lexicon")
	if err != nil {
		return nil, err
	}
	var out []LexiconEntry
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &InvalidPayloadError{Err: err}
	}
	return out, nil
}

// AyahIndex fetches the list of served surahs with their ayah counts.
func (c *Client) AyahIndex(ctx context.Context) ([]SurahInfo, error) {
	raw, err := c.get(ctx, "/api/ayah_index")
	if err != nil {
		return nil, err
	}
	var out []SurahInfo
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &InvalidPayloadError{Err: err}
	}
	return out, nil
}

// Next returns the ayah that follows the given one in study order, or
// nil when the given ayah is the last one served.
func (c *Client) Next(ctx context.Context, surah, ayah int) (*Ref, error) {
	if !Supported(surah) {
		return nil, &SurahUnsupportedError{Surah: surah}
	}

	raw, err := c.get(ctx, fmt.Sprintf("/api/next?surah=%d&ayah=%d", surah, ayah))
	if err != nil {
		return nil, err
	}

	// The service answers {"done": true} past the last ayah.
	var probe struct {
		Done bool `json:"done"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, &InvalidPayloadError{Err: err}
	}
	if probe.Done {
		return nil, nil
	}

	var out Ref
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &InvalidPayloadError{Err: err}
	}
	return &out, nil
}

// CheckHealth probes the service health endpoint.
func (c *Client) CheckHealth(ctx context.Context) (*Health, error) {
	raw, err := c.get(ctx, "/health")
	if err != nil {
		return nil, err
	}
	var out Health
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &InvalidPayloadError{Err: err}
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("content service request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &ServiceError{StatusCode: resp.StatusCode, Body: snippet(body)}
	}
	return body, nil
}

func snippet(body []byte) string {
	const max = 512
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max]
	}
	return s
}
