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
	openAIEmbedBatchSize = 64
	openAIEmbedDelay     = 400 * time.Millisecond
	openAIEmbedRetries   = 5
	openAIRetryDelay     = 3 * time.Second
)

type OpenAIEmbedder struct {
	client    *http.Client
	apiKey    string
	model     string
	dimension int
	endpoint  string
}

type openAIEmbeddingRequest struct {
	Model      string   `json:"model"`
	Input      []string `json:"input"`
	Dimensions *int     `json:"dimensions,omitempty"`
}

type openAIEmbeddingItem struct {
	Object    string    `json:"object"`
	Index     int       `json:"index"`
	Embedding []float32 `json:"embedding"`
}

type openAIEmbeddingResponse struct {
	Object string                `json:"object"`
	Data   []openAIEmbeddingItem `json:"data"`
	Model  string                `json:"model"`
}

type openAIErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	} `json:"error"`
}

func NewOpenAIEmbedder(apiKey, model string, dim int, baseURL string) *OpenAIEmbedder {
	endpoint := strings.TrimSpace(baseURL)
	if endpoint == "" {
		endpoint = "https://api.openai.com/v1/embeddings"
	}
	return &OpenAIEmbedder{
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
		apiKey:    apiKey,
		model:     model,
		dimension: dim,
		endpoint:  endpoint,
	}
}

func (o *OpenAIEmbedder) Dimension() int {
	return o.dimension
}

func (o *OpenAIEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if strings.TrimSpace(o.apiKey) == "" {
		return nil, fmt.Errorf("openai api key is required")
	}
	if strings.TrimSpace(o.model) == "" {
		return nil, fmt.Errorf("openai embedding model is required")
	}
	if len(texts) == 0 {
		return nil, nil
	}

	results := make([][]float32, 0, len(texts))
	for i := 0; i < len(texts); i += openAIEmbedBatchSize {
		if i > 0 {
			if !waitOrCancel(ctx, openAIEmbedDelay) {
				return nil, ctx.Err()
			}
		}
		end := i + openAIEmbedBatchSize
		if end > len(texts) {
			end = len(texts)
		}
		batch := texts[i:end]
		vecs, err := o.embedBatch(ctx, batch)
		if err != nil {
			return nil, err
		}
		results = append(results, vecs...)
	}
	return results, nil
}

func (o *OpenAIEmbedder) embedBatch(ctx context.Context, batch []string) ([][]float32, error) {
	if len(batch) == 0 {
		return nil, nil
	}

	payload := openAIEmbeddingRequest{
		Model: o.model,
		Input: batch,
	}
	if o.dimension > 0 {
		payload.Dimensions = &o.dimension
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt <= openAIEmbedRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+o.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := o.client.Do(req)
		if err != nil {
			lastErr = err
			if attempt == openAIEmbedRetries {
				break
			}
			if !waitOrCancel(ctx, openAIRetryDelay) {
				return nil, ctx.Err()
			}
			continue
		}

		data, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if readErr != nil {
			return nil, readErr
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("openai embeddings request failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(data)))
			if attempt == openAIEmbedRetries {
				break
			}
			if !waitOrCancel(ctx, openAIRetryDelay) {
				return nil, ctx.Err()
			}
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			msg := strings.TrimSpace(string(data))
			var errBody openAIErrorBody
			if json.Unmarshal(data, &errBody) == nil && strings.TrimSpace(errBody.Error.Message) != "" {
				msg = strings.TrimSpace(errBody.Error.Message)
			}
			return nil, fmt.Errorf("openai embeddings request failed (%d): %s", resp.StatusCode, msg)
		}

		var parsed openAIEmbeddingResponse
		if err := json.Unmarshal(data, &parsed); err != nil {
			return nil, err
		}
		if len(parsed.Data) != len(batch) {
			return nil, fmt.Errorf("embedding count mismatch: got %d, expected %d", len(parsed.Data), len(batch))
		}

		out := make([][]float32, len(batch))
		for _, item := range parsed.Data {
			if item.Index < 0 || item.Index >= len(batch) {
				continue
			}
			out[item.Index] = item.Embedding
		}
		for i := range out {
			if len(out[i]) == 0 {
				return nil, fmt.Errorf("embedding missing at index %d", i)
			}
		}
		return out, nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("openai embeddings request failed")
	}
	return nil, lastErr
}

type OpenAISummarizer struct {
	client   *http.Client
	apiKey   string
	model    string
	endpoint string
}

type openAIChatRequest struct {
	Model       string              `json:"model"`
	Messages    []openAIChatMessage `json:"messages"`
	Temperature float64             `json:"temperature"`
	MaxTokens   int                 `json:"max_tokens,omitempty"`
}

type openAIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message openAIChatMessage `json:"message"`
	} `json:"choices"`
}

func NewOpenAISummarizer(apiKey, model, baseURL string) *OpenAISummarizer {
	endpoint := strings.TrimSpace(baseURL)
	if endpoint == "" {
		endpoint = "https://api.openai.com/v1/chat/completions"
	} else {
		endpoint = strings.TrimRight(endpoint, "/")
		if !strings.HasSuffix(endpoint, "/chat/completions") {
			if strings.HasSuffix(endpoint, "/v1") {
				endpoint += "/chat/completions"
			} else {
				endpoint += "/v1/chat/completions"
			}
		}
	}
	return &OpenAISummarizer{
		client: &http.Client{
			Timeout: 90 * time.Second,
		},
		apiKey:   apiKey,
		model:    model,
		endpoint: endpoint,
	}
}

func (s *OpenAISummarizer) Summarize(ctx context.Context, prompt string, minTokens, maxTokens int) (string, error) {
	if strings.TrimSpace(s.apiKey) == "" {
		return "", fmt.Errorf("openai api key is required")
	}
	if strings.TrimSpace(s.model) == "" {
		return "", fmt.Errorf("openai model is required")
	}

	instruction := fmt.Sprintf("%s\n\nRespond with a summary between %d and %d tokens.", prompt, minTokens, maxTokens)
	reqBody := openAIChatRequest{
		Model: s.model,
		Messages: []openAIChatMessage{
			{Role: "user", Content: instruction},
		},
		Temperature: 0,
		MaxTokens:   maxTokens,
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("openai chat request failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed openAIChatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("openai chat response contained no choices")
	}
	text := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("model returned empty summary")
	}
	return cleanMarkdownOutput(text), nil
}
