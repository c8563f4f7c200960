package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const defaultAIEndpoint = "https://api.openai.com/v1/chat/completions"

// AIConfig is the provider configuration read from the ai_config
// singleton on every call, so coach-side edits apply immediately.
type AIConfig struct {
	Enabled      bool
	APIKey       string
	Model        string
	SystemPrompt string
	Endpoint     string
}

// AIConfigSource yields the current provider configuration
type AIConfigSource interface {
	AIConfig(ctx context.Context) (AIConfig, error)
}

// AIClient relays visitor messages to an OpenAI-compatible chat
// completion endpoint. A shared limiter caps relay volume across all
// sessions.
type AIClient struct {
	source  AIConfigSource
	httpc   *http.Client
	limiter *rate.Limiter
}

func NewAIClient(source AIConfigSource, requestsPerMinute int) *AIClient {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 30
	}
	return &AIClient{
		source:  source,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), requestsPerMinute),
	}
}

type aiChatRequest struct {
	Model    string          `json:"model"`
	Messages []aiChatMessage `json:"messages"`
}

type aiChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type aiChatResponse struct {
	Choices []struct {
		Message aiChatMessage `json:"message"`
	} `json:"choices"`
}

// Respond sends one user message and returns the assistant's reply
func (c *AIClient) Respond(ctx context.Context, message string) (string, error) {
	if !c.limiter.Allow() {
		return "", fmt.Errorf("%w: ai relay", ErrRateLimited)
	}

	cfg, err := c.source.AIConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load ai config: %w", err)
	}
	if !cfg.Enabled || cfg.APIKey == "" {
		return "", fmt.Errorf("ai assistant is not configured")
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultAIEndpoint
	}
	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	messages := []aiChatMessage{}
	if cfg.SystemPrompt != "" {
		messages = append(messages, aiChatMessage{Role: "system", Content: cfg.SystemPrompt})
	}
	messages = append(messages, aiChatMessage{Role: "user", Content: message})

	body, err := json.Marshal(aiChatRequest{Model: model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("failed to encode ai request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build ai request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("ai request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("ai provider returned %d: %s", resp.StatusCode, raw)
	}

	var parsed aiChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode ai response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("ai provider returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
