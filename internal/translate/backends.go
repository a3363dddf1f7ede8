package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rikdas/dobhashi/internal/domain"
)

// LLMBackend is the primary machine-translation backend: a prompt against
// an OpenAI-compatible chat completions endpoint.
type LLMBackend struct {
	endpoint string
	apiKey   string
	model    string
	client   *http.Client
}

func NewLLMBackend(endpoint, apiKey, model string) *LLMBackend {
	return &LLMBackend{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		model:    model,
		client:   &http.Client{},
	}
}

func (b *LLMBackend) Name() string { return "llm" }

func (b *LLMBackend) Translate(ctx context.Context, text string, from, to domain.Language) (string, error) {
	type chatMessage struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	payload := struct {
		Model    string        `json:"model"`
		Messages []chatMessage `json:"messages"`
	}{
		Model: b.model,
		Messages: []chatMessage{
			{Role: "system", Content: fmt.Sprintf(
				"You translate chat messages from %s to %s. Reply with the translation only, no commentary.",
				from.Name(), to.Name())},
			{Role: "user", Content: text},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if b.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+b.apiKey)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("llm backend: status %d", resp.StatusCode)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("llm backend: no choices")
	}
	return out.Choices[0].Message.Content, nil
}

// GoogleBackend is the secondary backend: the unauthenticated web translate
// endpoint. Response is a nested array; the first element holds the
// translated segments.
type GoogleBackend struct {
	endpoint string
	client   *http.Client
}

func NewGoogleBackend(endpoint string) *GoogleBackend {
	return &GoogleBackend{endpoint: endpoint, client: &http.Client{}}
}

func (b *GoogleBackend) Name() string { return "google" }

func (b *GoogleBackend) Translate(ctx context.Context, text string, from, to domain.Language) (string, error) {
	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", string(from))
	q.Set("tl", string(to))
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("google backend: status %d", resp.StatusCode)
	}

	var raw []any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("google backend: empty response")
	}
	segments, ok := raw[0].([]any)
	if !ok {
		return "", fmt.Errorf("google backend: unexpected response shape")
	}

	var sb strings.Builder
	for _, seg := range segments {
		parts, ok := seg.([]any)
		if !ok || len(parts) == 0 {
			continue
		}
		if s, ok := parts[0].(string); ok {
			sb.WriteString(s)
		}
	}
	return sb.String(), nil
}
