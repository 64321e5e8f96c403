package knowledge

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

const (
	ollamaEmbedBatchSize = 64
	ollamaEmbedDelay     = 200 * time.Millisecond
)

type OllamaEmbedder struct {
	client    *http.Client
	model     string
	dimension int
	endpoint  string
}

type ollamaEmbedRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type ollamaEmbedResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
}

func NewOllamaEmbedder(model string, dim int, baseURL string) *OllamaEmbedder {
	url := ollamaEndpoint(baseURL, "/api/embed")
	return &OllamaEmbedder{
		client: &http.Client{
			Timeout: 90 * time.Second,
		},
		model:     model,
		dimension: dim,
		endpoint:  url,
	}
}

func ollamaEndpoint(baseURL, path string) string {
	url := strings.TrimSpace(baseURL)
	if url == "" {
		url = "http://127.0.0.1:11434"
	}
	url = strings.TrimRight(url, "/")
	if !strings.HasSuffix(url, path) {
		url += path
	}
	return url
}

func (o *OllamaEmbedder) Dimension() int {
	return o.dimension
}

func (o *OllamaEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if strings.TrimSpace(o.model) == "" {
		return nil, fmt.Errorf("ollama embedding model is required")
	}
	if len(texts) == 0 {
		return nil, nil
	}

	out := make([][]float32, 0, len(texts))
	for i := 0; i < len(texts); i += ollamaEmbedBatchSize {
		if i > 0 {
			if !waitOrCancel(ctx, ollamaEmbedDelay) {
				return nil, ctx.Err()
			}
		}
		end := i + ollamaEmbedBatchSize
		if end > len(texts) {
			end = len(texts)
		}
		batch := texts[i:end]

		vecs, err := o.embedBatch(ctx, batch)
		if err != nil {
			return nil, err
		}
		out = append(out, vecs...)
	}
	return out, nil
}

func (o *OllamaEmbedder) embedBatch(ctx context.Context, batch []string) ([][]float32, error) {
	body, err := json.Marshal(ollamaEmbedRequest{Model: o.model, Input: batch})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("ollama embed request failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var parsed ollamaEmbedResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Embeddings) != len(batch) {
		return nil, fmt.Errorf("embedding count mismatch: got %d, expected %d", len(parsed.Embeddings), len(batch))
	}
	return parsed.Embeddings, nil
}

// OllamaSummarizer implements Summarizer against a local Ollama instance.
type OllamaSummarizer struct {
	client   *http.Client
	model    string
	endpoint string
}

type ollamaGenerateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options,omitempty"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
}

func NewOllamaSummarizer(model, baseURL string) *OllamaSummarizer {
	return &OllamaSummarizer{
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
		model:    model,
		endpoint: ollamaEndpoint(baseURL, "/api/generate"),
	}
}

func (s *OllamaSummarizer) Summarize(ctx context.Context, prompt string, minTokens, maxTokens int) (string, error) {
	if strings.TrimSpace(s.model) == "" {
		return "", fmt.Errorf("ollama model is required")
	}

	instruction := fmt.Sprintf("%s\n\nRespond with a summary between %d and %d tokens.", prompt, minTokens, maxTokens)
	body, err := json.Marshal(ollamaGenerateRequest{
		Model:  s.model,
		Prompt: instruction,
		Stream: false,
		Options: map[string]any{
			"temperature": 0,
			"num_predict": maxTokens,
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("ollama generate request failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var parsed ollamaGenerateResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", err
	}
	text := strings.TrimSpace(parsed.Response)
	if text == "" {
		return "", fmt.Errorf("model returned empty summary")
	}
	return cleanMarkdownOutput(text), nil
}
