// Package asr is the client for the pronunciation evaluation service.
// The scoring itself (DTW over mel features) lives in the service; this
// client only ships audio and decodes results.
package asr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// uploadName is the filename the service expects for the audio part.
const uploadName = "recording.wav"

// Result is the raw evaluation payload. Classification into feedback
// tiers happens in the pronounce package; everything here is passed
// through opaquely.
type Result struct {
	DTWDistance  float64 `json:"dtw_distance"`
	AvgCost      float64 `json:"avg_cost"`
	ScorePercent float64 `json:"score_percent"`
	Label        string  `json:"label"`
	LabelDisplay string  `json:"label_display"`
	Color        string  `json:"color"`
}

// Health is the liveness payload of GET /health.
type Health struct {
	Status string `json:"status"`
}

// Client talks to the pronunciation service. No automatic retries:
// failures surface once to the caller.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the service at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// EvaluateWord scores a recording of a single word.
func (c *Client) EvaluateWord(ctx context.Context, audio []byte, surah, ayah, word int) (*Result, error) {
	fields := map[string]string{
		"surah": strconv.Itoa(surah),
		"ayah":  strconv.Itoa(ayah),
		"word":  strconv.Itoa(word),
	}
	return c.evaluate(ctx, "/evaluate/word", audio, fields)
}

// EvaluateAyah scores a recording of a full ayah.
func (c *Client) EvaluateAyah(ctx context.Context, audio []byte, surah, ayah int) (*Result, error) {
	fields := map[string]string{
		"surah": strconv.Itoa(surah),
		"ayah":  strconv.Itoa(ayah),
	}
	return c.evaluate(ctx, "/evaluate/ayah", audio, fields)
}

// EvaluateSurah scores a recording of a whole surah.
func (c *Client) EvaluateSurah(ctx context.Context, audio []byte, surah int) (*Result, error) {
	fields := map[string]string{
		"surah": strconv.Itoa(surah),
	}
	return c.evaluate(ctx, "/evaluate/surah", audio, fields)
}

// CheckHealth probes the service's liveness endpoint.
func (c *Client) CheckHealth(ctx context.Context) (*Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pronunciation service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pronunciation service: health returned %s", resp.Status)
	}
	var h Health
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil {
		return nil, fmt.Errorf("pronunciation service: decode health: %w", err)
	}
	return &h, nil
}

func (c *Client) evaluate(ctx context.Context, path string, audio []byte, fields map[string]string) (*Result, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("audio", uploadName)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(audio); err != nil {
		return nil, err
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pronunciation service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("pronunciation service: %s returned %s: %s",
			path, resp.Status, strings.TrimSpace(string(snippet)))
	}

	var res Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("pronunciation service: decode result: %w", err)
	}
	return &res, nil
}
