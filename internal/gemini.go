package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

// GeminiClient answers through Google's Gemini API
type GeminiClient struct {
	client      *genai.Client
	model       string
	maxTokens   int
	temperature float64
	timeout     time.Duration
}

// NewGeminiClient creates a Gemini-backed dispatcher from cfg
func NewGeminiClient(ctx context.Context, cfg *Config) (*GeminiClient, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	model := cfg.GeminiModel
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiClient{
		client:      client,
		model:       model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}, nil
}

// geminiContents converts history plus the new question into Gemini turns
func geminiContents(history []Message, text string) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, m := range FormatHistory(history) {
		var role genai.Role = genai.RoleUser
		if m.Role == "assistant" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}
	return append(contents, genai.NewContentFromText(text, genai.RoleUser))
}

// Complete sends text with history and the category system prompt
func (g *GeminiClient) Complete(ctx context.Context, text string, history []Message, category string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", NewValidationError(MsgEmptyMessage)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline && g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemPrompt(category), genai.RoleUser),
		Temperature:       genai.Ptr(float32(g.temperature)),
		MaxOutputTokens:   int32(g.maxTokens),
	}

	LogDebug("Gemini generate (model: %s, turns: %d, category: %s)", g.model, len(history)+1, category)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, geminiContents(history, text), config)
	if err != nil {
		return "", classifyGeminiError(err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errMalformedResponse
	}

	reply := resp.Text()
	if reply == "" {
		return emptyReplyText, nil
	}
	return reply, nil
}

// classifyGeminiError maps SDK failures onto the dispatch error kinds
func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return &DispatchError{Kind: KindNetwork, Message: MsgNetworkError, Err: err}
	}

	if isGeminiKeyRejected(apiErr) {
		return &DispatchError{Kind: KindAuth, Status: apiErr.Code, Message: MsgAuthError, Err: err}
	}

	switch apiErr.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &DispatchError{Kind: KindAuth, Status: apiErr.Code, Message: MsgAuthError, Err: err}
	case http.StatusTooManyRequests:
		return &DispatchError{Kind: KindRateLimit, Status: apiErr.Code, Message: MsgRateLimitError, Err: err}
	case http.StatusInternalServerError:
		return &DispatchError{Kind: KindServer, Status: apiErr.Code, Message: MsgServerError, Err: err}
	}
	if apiErr.Message != "" {
		return &DispatchError{Kind: KindServer, Status: apiErr.Code, Message: apiErr.Message, Err: err}
	}
	return fmt.Errorf("%w: %v", errMalformedResponse, err)
}

// isGeminiKeyRejected reports a bad key, which the Gemini API answers with
// 400 INVALID_ARGUMENT rather than 401
func isGeminiKeyRejected(apiErr genai.APIError) bool {
	return apiErr.Code == http.StatusBadRequest &&
		strings.Contains(strings.ToLower(apiErr.Message), "api key")
}
