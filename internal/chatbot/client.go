// Package chatbot talks to the Quran Q&A service. The service answers a
// free-text query either with a retrieval-grounded answer or, for
// how-do-I-say questions, with a pronunciation guide. The two shapes are
// distinguished by which keys the response carries.
package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Query parameters fixed by the product: three retrieval candidates,
// tafsir snippets included.
const (
	defaultTopK = 3
	showTafsir  = true
)

// Pronunciation is one word of a pronunciation guide.
type Pronunciation struct {
	Arabic          string `json:"arabic"`
	Transliteration string `json:"transliteration"`
}

// Guide is the pronunciation-guide answer shape.
type Guide struct {
	Pronunciations []Pronunciation `json:"pronunciations"`
	Cautions       []string        `json:"cautions"`
}

// Candidate is one retrieval candidate behind an answer.
type Candidate struct {
	Ref   string  `json:"ref"`
	Score float64 `json:"score"`
}

// Answer is the retrieval-grounded answer shape.
type Answer struct {
	Response      string   `json:"response"`
	AyahRef       string   `json:"ayah_ref"`
	AyahArabic    string   `json:"ayah_arabic"`
	Translation   string   `json:"translation"`
	TafsirSnippet string   `json:"tafsir_snippet"`
	KeyThemes     []string `json:"key_themes"`
	Cautions      []string `json:"cautions"`
	Retrieval     struct {
		Candidates []Candidate `json:"candidates"`
	} `json:"retrieval"`
}

// Reply is the decoded union. Exactly one of Answer and Guide is set.
type Reply struct {
	Answer *Answer
	Guide  *Guide
}

// Health is the service health payload.
type Health struct {
	Status string `json:"status"`
}

// ServiceError is returned when the chatbot service answers with a
// non-success status.
type ServiceError struct {
	StatusCode int
	Body       string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("chatbot service returned %d: %s", e.StatusCode, e.Body)
}

// Client is an HTTP client for the chatbot service.
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

// Query sends a free-text question and decodes the union reply. lang is
// the answer language code ("en", "ur").
func (c *Client) Query(ctx context.Context, query, lang string) (*Reply, error) {
	payload, err := json.Marshal(map[string]any{
		"query":       query,
		"lang":        lang,
		"top_k":       defaultTopK,
		"show_tafsir": showTafsir,
	})
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/query", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return decodeReply(body)
}

// CheckHealth probes the service health endpoint.
func (c *Client) CheckHealth(ctx context.Context) (*Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	var out Health
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode health: %w", err)
	}
	return &out, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chatbot service request: %w", err)
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

// decodeReply picks the union branch: a "pronunciations" key marks a
// pronunciation guide, anything else is a grounded answer.
func decodeReply(body []byte) (*Reply, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, fmt.Errorf("decode reply: %w", err)
	}

	if _, ok := probe["pronunciations"]; ok {
		var g Guide
		if err := json.Unmarshal(body, &g); err != nil {
			return nil, fmt.Errorf("decode pronunciation guide: %w", err)
		}
		return &Reply{Guide: &g}, nil
	}

	var a Answer
	if err := json.Unmarshal(body, &a); err != nil {
		return nil, fmt.Errorf("decode answer: %w", err)
	}
	return &Reply{Answer: &a}, nil
}

func snippet(body []byte) string {
	const max = 512
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max]
	}
	return s
}
