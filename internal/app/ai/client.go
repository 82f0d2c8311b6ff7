/*
Package ai wraps the OpenRouter chat-completion provider.

The wrapper issues a single non-streaming request per user message with a
fixed system prompt. Provider failures are classified (credentials, rate
limit, quota, generic) and never escape SimpleChat: the caller always gets a
ChatReply, degraded to a fixed apology string when the provider fails.
*/
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"hpzbot/internal/pkg/logx"
)

const (
	// DefaultBaseURL is the OpenRouter API root.
	DefaultBaseURL = "https://openrouter.ai/api/v1"

	// CompletionTimeout bounds one completion round-trip. Free-tier models
	// can be slow, so this is deliberately generous.
	CompletionTimeout = 60 * time.Second

	// ValidateTimeout bounds the key validation call.
	ValidateTimeout = 10 * time.Second

	// FallbackReply is the fixed apology shown when the provider fails.
	FallbackReply = "Maaf, sedang ada gangguan di sistem AI. Silakan coba lagi beberapa saat ya! 🙏"

	// EmptyReply covers a technically successful completion with no text.
	EmptyReply = "Maaf, aku tidak bisa memproses pesan itu."
)

// Classified provider failures.
var (
	ErrInvalidCredentials = errors.New("Invalid OpenRouter API key")
	ErrRateLimited        = errors.New("Rate limit exceeded. Please try again later.")
	ErrQuotaExceeded      = errors.New("Insufficient OpenRouter credits")
	ErrProvider           = errors.New("Failed to get response from AI service")
)

// Message is one chat turn on the completion wire.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Usage is the provider's token accounting.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatReply is the completion path's result. Model and Usage are nil when
// the provider failed; Error then carries the diagnostic message.
type ChatReply struct {
	Content string  `json:"content"`
	Model   *string `json:"model"`
	Usage   *Usage  `json:"usage"`
	Error   string  `json:"error,omitempty"`
}

// Context carries the caller's standing into the completion request.
type Context struct {
	UserTier   string
	UserPoints int
	UserName   string
}

// Options tune a single completion request. Zero values fall back to the
// client defaults.
type Options struct {
	Model       string
	MaxTokens   int
	Temperature float64
	TopP        float64
}

// Client talks to the OpenRouter chat-completion API.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	referer    string
	httpClient *http.Client
}

// NewClient builds a completion client. model may be empty to use the
// provider default; referer is sent as HTTP-Referer for OpenRouter app
// attribution.
func NewClient(apiKey, model, referer string) *Client {
	if model == "" {
		model = "z-ai/glm-4.5-air:free"
	}
	if referer == "" {
		referer = "https://hpztv.com"
	}

	return &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		model:      model,
		referer:    referer,
		httpClient: &http.Client{Timeout: CompletionTimeout},
	}
}

// completionRequest is the OpenAI-compatible wire request.
type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	TopP        float64   `json:"top_p"`
	Stream      bool      `json:"stream"`
}

// completionResponse is the OpenAI-compatible wire response.
type completionResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Usage *Usage `json:"usage"`
}

// classifyStatus maps a provider HTTP status onto the failure taxonomy.
func classifyStatus(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return ErrInvalidCredentials
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusPaymentRequired:
		return ErrQuotaExceeded
	default:
		return ErrProvider
	}
}

// ChatCompletion sends one completion request. The fixed system prompt is
// prepended when the message list carries no system message. Failures are
// returned classified; the caller decides how to degrade.
func (c *Client) ChatCompletion(ctx context.Context, messages []Message, opts Options) (*completionResponse, error) {
	hasSystem := false
	for _, msg := range messages {
		if msg.Role == "system" {
			hasSystem = true
			break
		}
	}
	if !hasSystem {
		messages = append([]Message{{Role: "system", Content: systemPrompt}}, messages...)
	}

	reqBody := completionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   1000,
		Temperature: 0.7,
		TopP:        0.9,
		Stream:      false,
	}
	if opts.Model != "" {
		reqBody.Model = opts.Model
	}
	if opts.MaxTokens > 0 {
		reqBody.MaxTokens = opts.MaxTokens
	}
	if opts.Temperature > 0 {
		reqBody.Temperature = opts.Temperature
	}
	if opts.TopP > 0 {
		reqBody.TopP = opts.TopP
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding request: %v", ErrProvider, err)
	}

	ctx, cancel := context.WithTimeout(ctx, CompletionTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrProvider, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("HTTP-Referer", c.referer)
	req.Header.Set("X-Title", "HPZ Crew Chatbot")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, classifyStatus(res.StatusCode)
	}

	var completion completionResponse
	if err := json.NewDecoder(res.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrProvider, err)
	}

	return &completion, nil
}

// SimpleChat sends a single user message with optional tier/points context
// and never fails: any provider error resolves to the fixed apology reply
// with the diagnostic in Error.
func (c *Client) SimpleChat(ctx context.Context, userMessage string, chatCtx Context) ChatReply {
	content := userMessage

	if chatCtx.UserTier != "" || chatCtx.UserPoints != 0 {
		var contextInfo strings.Builder
		if chatCtx.UserTier != "" {
			fmt.Fprintf(&contextInfo, "Tier pengguna: %s\n", chatCtx.UserTier)
		}
		if chatCtx.UserPoints != 0 {
			fmt.Fprintf(&contextInfo, "Poin pengguna: %d\n", chatCtx.UserPoints)
		}
		content = fmt.Sprintf("%s\n\nPesan user: %s", contextInfo.String(), userMessage)
	}

	logx.Info("Sending completion request", "user", chatCtx.UserName)

	messages := []Message{{Role: "user", Content: content}}

	completion, err := c.ChatCompletion(ctx, messages, Options{})
	if err != nil {
		logx.Error(err, "completion request failed")

		return ChatReply{
			Content: FallbackReply,
			Model:   nil,
			Usage:   nil,
			Error:   err.Error(),
		}
	}

	reply := ChatReply{
		Content: EmptyReply,
		Usage:   completion.Usage,
	}
	if completion.Model != "" {
		model := completion.Model
		reply.Model = &model
	}
	if len(completion.Choices) > 0 && completion.Choices[0].Message.Content != "" {
		reply.Content = completion.Choices[0].Message.Content
	}

	return reply
}

// ValidateKey checks that the configured API key is accepted by the
// provider's model listing endpoint.
func (c *Client) ValidateKey(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, ValidateTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/models", nil)
	if err != nil {
		return false
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		logx.Error(err, "API key validation failed")
		return false
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return false
	}

	var listing struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&listing); err != nil {
		return false
	}

	return listing.Data != nil
}

// SetBaseURL points the client at a different API root. Tests use this to
// target a local stub server.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimRight(baseURL, "/")
}
