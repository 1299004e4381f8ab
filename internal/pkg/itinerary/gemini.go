package itinerary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/RawatAr/travel-planner-ai/internal/pkg/exception"
)

const (
	DefaultAPIURL  = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-1.5-flash"
	DefaultTimeout = 60 * time.Second

	apiKeyHeader      = "x-goog-api-key"
	maxErrorBodyBytes = 4096
)

var ErrNotConfigured = exception.ApplicationError{
	StatusCode: http.StatusServiceUnavailable,
	Message:    "text generation api key not configured",
}

var ErrEmptyResponse = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "text generation returned no content",
}

// GenerationError is a non-200 answer from the text generation API.
type GenerationError struct {
	StatusCode int
	Message    string
}

func (e *GenerationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("text generation failed with status %d", e.StatusCode)
	}

	return fmt.Sprintf("text generation failed with status %d: %s", e.StatusCode, e.Message)
}

type GeminiConfig struct {
	APIURL  string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// GeminiClient calls the Gemini generateContent API.
type GeminiClient struct {
	apiURL     string
	apiKey     string
	model      string
	timeout    time.Duration
	httpClient *http.Client
}

func NewGeminiClient(cfg GeminiConfig) *GeminiClient {
	apiURL := strings.TrimRight(cfg.APIURL, "/")
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &GeminiClient{
		apiURL:     apiURL,
		apiKey:     cfg.APIKey,
		model:      model,
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate returns the text of the first candidate for prompt.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(generateRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: prompt}},
		}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("text generation request failed: %w", err)
	}
	defer resp.Body.Close()

	slog.DebugContext(ctx, "text generation responded",
		slog.String("model", c.model),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		return "", decodeGenerationError(resp)
	}

	var response generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode text generation response: %w", err)
	}

	for _, candidate := range response.Candidates {
		var text strings.Builder
		for _, p := range candidate.Content.Parts {
			text.WriteString(p.Text)
		}

		if text.Len() > 0 {
			return text.String(), nil
		}
	}

	return "", ErrEmptyResponse
}

func (c *GeminiClient) endpoint() string {
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.apiURL, url.PathEscape(c.model))
}

func decodeGenerationError(resp *http.Response) error {
	genErr := &GenerationError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil {
		return genErr
	}

	var apiErr errorResponse
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error.Message != "" {
		genErr.Message = apiErr.Error.Message
		return genErr
	}

	genErr.Message = strings.TrimSpace(string(raw))

	return genErr
}

// IsGenerationError reports whether err is a non-200 answer from the API.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
