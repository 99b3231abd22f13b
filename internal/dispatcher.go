package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	anthropicVersion = "2023-06-01"
	emptyReplyText   = "Maaf, saya tidak bisa memproses permintaan Anda."
)

// errMalformedResponse marks a reply body that could not be understood
var errMalformedResponse = errors.New("invalid response format from API")

// Dispatcher produces an assistant reply for text given the prior history
// and the active category.
type Dispatcher interface {
	Complete(ctx context.Context, text string, history []Message, category string) (string, error)
}

// APIStatus describes how replies are being produced
type APIStatus struct {
	Configured bool   `json:"configured" yaml:"configured"`
	Valid      bool   `json:"valid" yaml:"valid"`
	Mode       string `json:"mode" yaml:"mode"` // "demo" or "production"
	Provider   string `json:"provider" yaml:"provider"`
	Model      string `json:"model" yaml:"model"`
}

// ValidateAPIKey checks the Anthropic key format
func ValidateAPIKey(apiKey string) bool {
	return strings.HasPrefix(apiKey, "sk-ant-")
}

// Status reports the API configuration of cfg
func Status(cfg *Config) APIStatus {
	st := APIStatus{Provider: cfg.Provider, Model: cfg.ActiveModel(), Mode: "demo"}
	switch cfg.Provider {
	case ProviderAnthropic:
		st.Configured = cfg.APIKey != ""
		st.Valid = ValidateAPIKey(cfg.APIKey)
	case ProviderGemini:
		st.Configured = cfg.GeminiAPIKey != ""
		st.Valid = st.Configured
	}
	if st.Configured {
		st.Mode = "production"
	}
	return st
}

// NewDispatcher builds the dispatcher for cfg. Without a key the demo
// table answers; with one the live client is wrapped with the demo fallback.
func NewDispatcher(ctx context.Context, cfg *Config) (Dispatcher, error) {
	switch cfg.Provider {
	case ProviderAnthropic:
		if cfg.APIKey == "" {
			LogWarn("Anthropic API key not found. Using demo mode.")
			return DemoDispatcher{}, nil
		}
		return NewFallbackDispatcher(NewAnthropicClient(cfg)), nil
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			LogWarn("Gemini API key not found. Using demo mode.")
			return DemoDispatcher{}, nil
		}
		client, err := NewGeminiClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return NewFallbackDispatcher(client), nil
	default:
		return DemoDispatcher{}, nil
	}
}

// TestConnection sends a short greeting through d
func TestConnection(ctx context.Context, d Dispatcher) error {
	reply, err := d.Complete(ctx, "Hello", nil, CategoryGeneral)
	if err != nil {
		return err
	}
	if reply == "" {
		return fmt.Errorf("empty reply")
	}
	return nil
}

// DemoDispatcher answers from the canned table
type DemoDispatcher struct{}

func (DemoDispatcher) Complete(_ context.Context, text string, _ []Message, category string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", NewValidationError(MsgEmptyMessage)
	}
	return DemoResponse(text, category), nil
}

// FallbackDispatcher substitutes the canned reply when the live call fails
// in a way the user cannot fix: network and server errors carry the demo
// text as Fallback, malformed replies are answered from the table silently.
type FallbackDispatcher struct {
	live Dispatcher
}

// NewFallbackDispatcher wraps live
func NewFallbackDispatcher(live Dispatcher) *FallbackDispatcher {
	return &FallbackDispatcher{live: live}
}

func (f *FallbackDispatcher) Complete(ctx context.Context, text string, history []Message, category string) (string, error) {
	reply, err := f.live.Complete(ctx, text, history, category)
	if err == nil {
		return reply, nil
	}

	if errors.Is(err, errMalformedResponse) {
		LogWarn("Falling back to demo mode: %v", err)
		return DemoResponse(text, category), nil
	}

	var de *DispatchError
	if errors.As(err, &de) && (de.Kind == KindNetwork || de.Kind == KindServer) {
		LogWarn("Falling back to demo mode after %s error: %v", de.Kind, err)
		de.Fallback = DemoResponse(text, category)
	}
	return "", err
}

// anthropicMessage is one turn of the request history
type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	System      string             `json:"system"`
	Messages    []anthropicMessage `json:"messages"`
	Temperature float64            `json:"temperature"`
}

type anthropicContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type anthropicResponse struct {
	Content []anthropicContentBlock `json:"content"`
	Error   *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// AnthropicClient calls the Messages API directly
type AnthropicClient struct {
	apiKey      string
	baseURL     string
	model       string
	maxTokens   int
	temperature float64
	timeout     time.Duration
	httpClient  *http.Client
}

// NewAnthropicClient creates a client from cfg
func NewAnthropicClient(cfg *Config) *AnthropicClient {
	return &AnthropicClient{
		apiKey:      cfg.APIKey,
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
		httpClient:  &http.Client{},
	}
}

// FormatHistory keeps entries with both role and content, mapping every
// non-assistant role to user. Error messages are dropped, and so are
// assistant turns before the first user turn since the conversation must
// open with the user.
func FormatHistory(history []Message) []anthropicMessage {
	out := make([]anthropicMessage, 0, len(history))
	for _, m := range history {
		if m.Role == "" || m.Content == "" || m.IsError {
			continue
		}
		role := "user"
		if m.Role == RoleAssistant {
			role = "assistant"
		}
		if role == "assistant" && len(out) == 0 {
			continue
		}
		out = append(out, anthropicMessage{Role: role, Content: m.Content})
	}
	return out
}

// Complete sends text with history and the category system prompt
func (c *AnthropicClient) Complete(ctx context.Context, text string, history []Message, category string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", NewValidationError(MsgEmptyMessage)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline && c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	messages := append(FormatHistory(history), anthropicMessage{Role: "user", Content: text})
	reqBody := anthropicRequest{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		System:      SystemPrompt(category),
		Messages:    messages,
		Temperature: c.temperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	LogDebug("POST %s/messages (model: %s, messages: %d, category: %s)", c.baseURL, c.model, len(messages), category)
	startTime := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		LogError("Anthropic request failed: %v", err)
		return "", &DispatchError{Kind: KindNetwork, Message: MsgNetworkError, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &DispatchError{Kind: KindNetwork, Status: resp.StatusCode, Message: MsgNetworkError, Err: err}
	}

	LogDebug("Anthropic response status %d in %v", resp.StatusCode, time.Since(startTime))

	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus(resp.StatusCode, body)
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: %v", errMalformedResponse, err)
	}
	if len(parsed.Content) == 0 {
		return "", errMalformedResponse
	}

	var parts []string
	for _, block := range parsed.Content {
		if block.Type == "text" {
			parts = append(parts, block.Text)
		}
	}
	reply := strings.Join(parts, "\n")
	if reply == "" {
		return emptyReplyText, nil
	}
	return reply, nil
}

// classifyStatus maps a non-200 reply to a DispatchError
func classifyStatus(status int, body []byte) error {
	cause := fmt.Errorf("status %d: %s", status, truncate(string(body), 300))
	switch status {
	case http.StatusUnauthorized:
		return &DispatchError{Kind: KindAuth, Status: status, Message: MsgAuthError, Err: cause}
	case http.StatusTooManyRequests:
		return &DispatchError{Kind: KindRateLimit, Status: status, Message: MsgRateLimitError, Err: cause}
	case http.StatusInternalServerError:
		return &DispatchError{Kind: KindServer, Status: status, Message: MsgServerError, Err: cause}
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != nil && parsed.Error.Message != "" {
		return &DispatchError{Kind: KindServer, Status: status, Message: parsed.Error.Message, Err: cause}
	}
	return fmt.Errorf("%w: %v", errMalformedResponse, cause)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
