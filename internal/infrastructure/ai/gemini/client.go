// Package gemini provides the Google Gemini integration for recipe generation
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mixmas/v2/internal/ports/outbound"
	apperrors "github.com/mixmas/v2/pkg/errors"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.5-flash"
)

// Client implements the TextGenerator port against the Gemini
// generateContent API. The credential is validated lazily on first use, not
// at construction, so the application can start without one and fail only
// when a generation is attempted.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
	logger  *zap.Logger
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, used in tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(url, "/") }
}

// WithModel overrides the model name.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// NewClient creates a Gemini client. The key comes from the explicit
// argument, falling back to the API_KEY and GEMINI_API_KEY environment
// variables.
func NewClient(apiKey string, logger *zap.Logger, opts ...Option) *Client {
	if apiKey == "" {
		apiKey = os.Getenv("API_KEY")
	}
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		logger.Warn("Gemini API key not configured, generation requests will fail")
	} else {
		logger.Info("Gemini client initialized with API key")
	}

	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		model:   defaultModel,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether the client holds an API key. Requests made
// without one fail before touching the network.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Gemini API structures

type generateContentRequest struct {
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	Contents          []content         `json:"contents"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string         `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Submit sends one schema-constrained generation request and returns the
// raw candidate text. No retries.
func (c *Client) Submit(ctx context.Context, req outbound.GenerateRequest) (string, error) {
	if c.apiKey == "" {
		return "", apperrors.NewMissingAPIKeyError()
	}

	body := generateContentRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: req.Prompt}}},
		},
	}
	if req.SystemInstruction != "" {
		body.SystemInstruction = &content{Parts: []part{{Text: req.SystemInstruction}}}
	}
	if req.ResponseSchema != nil {
		body.GenerationConfig = &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   req.ResponseSchema,
		}
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", c.classifyStatus(resp.StatusCode, respBody)
	}

	var genResp generateContentResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}

	c.logger.Info("Gemini API call successful",
		zap.String("model", c.model),
		zap.Int("prompt_tokens", genResp.UsageMetadata.PromptTokenCount),
		zap.Int("candidate_tokens", genResp.UsageMetadata.CandidatesTokenCount),
		zap.Int("total_tokens", genResp.UsageMetadata.TotalTokenCount),
	)

	var text strings.Builder
	for _, p := range genResp.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}
	return text.String(), nil
}

// classifyStatus maps provider HTTP failures onto the application error
// taxonomy. Rate limiting and quota exhaustion get their own category so
// the user sees a retry-later message instead of a generic failure.
func (c *Client) classifyStatus(status int, body []byte) error {
	var apiErr apiErrorResponse
	_ = json.Unmarshal(body, &apiErr)

	message := apiErr.Error.Message
	if message == "" {
		message = string(body)
	}
	cause := fmt.Errorf("API error %d: %s", status, message)

	c.logger.Error("Gemini API call failed",
		zap.Int("status", status),
		zap.String("api_status", apiErr.Error.Status),
		zap.String("message", message),
	)

	lower := strings.ToLower(message)
	switch {
	case status == http.StatusTooManyRequests,
		apiErr.Error.Status == "RESOURCE_EXHAUSTED",
		strings.Contains(lower, "quota"),
		strings.Contains(lower, "rate limit"):
		return apperrors.NewProviderQuotaError(cause)
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return apperrors.NewMissingAPIKeyError().WithCause(cause)
	default:
		return apperrors.NewExternalServiceError("gemini", cause)
	}
}
