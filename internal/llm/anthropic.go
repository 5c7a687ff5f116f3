package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AnthropicClient implements Client for the Anthropic messages API.
type AnthropicClient struct {
	apiKey     string
	baseURL    string
	model      string
	maxTokens  int
	httpClient *http.Client
	logger     *zap.Logger
}

// AnthropicConfig holds configuration for the Anthropic client.
type AnthropicConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
	Logger    *zap.Logger
}

// DefaultAnthropicConfig returns sensible defaults.
func DefaultAnthropicConfig(apiKey string) AnthropicConfig {
	return AnthropicConfig{
		APIKey:    apiKey,
		BaseURL:   "https://api.anthropic.com/v1",
		Model:     "claude-sonnet-4-20250514",
		MaxTokens: defaultMaxTokens,
		Timeout:   defaultTimeout,
	}
}

// NewAnthropicClient creates an Anthropic client with default config.
func NewAnthropicClient(apiKey string) *AnthropicClient {
	return NewAnthropicClientWithConfig(DefaultAnthropicConfig(apiKey))
}

// NewAnthropicClientWithConfig creates an Anthropic client with custom config.
func NewAnthropicClientWithConfig(config AnthropicConfig) *AnthropicClient {
	if config.MaxTokens <= 0 {
		config.MaxTokens = defaultMaxTokens
	}
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnthropicClient{
		apiKey:    config.APIKey,
		baseURL:   config.BaseURL,
		model:     config.Model,
		maxTokens: config.MaxTokens,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: logger,
	}
}

// anthropicRequest is the messages API request body.
type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
	Temperature float64            `json:"temperature,omitempty"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// anthropicResponse is the messages API response body.
type anthropicResponse struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Model      string `json:"model"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends a prompt and returns the completion.
func (c *AnthropicClient) Complete(ctx context.Context, prompt string) (string, error) {
	return c.CompleteWithSystem(ctx, "", prompt)
}

// CompleteWithSystem sends a prompt with a system message.
func (c *AnthropicClient) CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	// Apply the client timeout when the caller supplies no deadline.
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.httpClient.Timeout)
		defer cancel()
	}

	reqID := uuid.NewString()
	start := time.Now()
	c.logger.Debug("anthropic request",
		zap.String("request_id", reqID),
		zap.String("model", c.model),
		zap.Int("system_len", len(systemPrompt)),
		zap.Int("user_len", len(userPrompt)))

	reqBody := anthropicRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    systemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: userPrompt},
		},
		Temperature: defaultTemperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("anthropic: marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff(attempt)):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(jsonData))
		if err != nil {
			return "", fmt.Errorf("anthropic: create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-api-key", c.apiKey)
		req.Header.Set("anthropic-version", "2023-06-01")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return "", fmt.Errorf("anthropic: request failed: %w", err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return "", fmt.Errorf("anthropic: read response: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			lastErr = fmt.Errorf("anthropic: rate limit exceeded (429)")
			c.logger.Warn("anthropic rate limited",
				zap.String("request_id", reqID),
				zap.Int("attempt", attempt+1))
			continue
		}

		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("anthropic: API request failed with status %d: %s", resp.StatusCode, string(body))
		}

		var apiResp anthropicResponse
		if err := json.Unmarshal(body, &apiResp); err != nil {
			return "", fmt.Errorf("anthropic: parse response: %w", err)
		}
		if apiResp.Error != nil {
			return "", fmt.Errorf("anthropic: API error: %s", apiResp.Error.Message)
		}
		if len(apiResp.Content) == 0 {
			return "", fmt.Errorf("anthropic: no completion returned")
		}

		var result strings.Builder
		for _, content := range apiResp.Content {
			if content.Type == "text" {
				result.WriteString(content.Text)
			}
		}

		c.logger.Debug("anthropic response",
			zap.String("request_id", reqID),
			zap.Int("input_tokens", apiResp.Usage.InputTokens),
			zap.Int("output_tokens", apiResp.Usage.OutputTokens),
			zap.Duration("elapsed", time.Since(start)))

		return strings.TrimSpace(result.String()), nil
	}

	return "", fmt.Errorf("anthropic: max retries exceeded: %w", lastErr)
}

// SetModel changes the model used for completions.
func (c *AnthropicClient) SetModel(model string) {
	c.model = model
}

// Model returns the current model.
func (c *AnthropicClient) Model() string {
	return c.model
}
