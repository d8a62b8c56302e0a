package ai

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
	DefaultOpenAIEndpoint = "https://api.openai.com/v1/chat/completions"
	DefaultOpenAIModel    = "gpt-4o-mini"
)

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// ChatGPTProvider calls the OpenAI chat completions endpoint.
type ChatGPTProvider struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewChatGPTProvider builds a provider. Empty model or endpoint use the OpenAI defaults.
// The client timeout guards stalled connections; ctx cancellation still applies per call.
func NewChatGPTProvider(apiKey, model, endpoint string) (*ChatGPTProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("chatgpt: missing api key")
	}
	if model == "" {
		model = DefaultOpenAIModel
	}
	if endpoint == "" {
		endpoint = DefaultOpenAIEndpoint
	}
	return &ChatGPTProvider{
		apiKey:   apiKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (p *ChatGPTProvider) Name() string { return "chatgpt" }

// Reply sends the system prompt, history and message and returns the reply text.
func (p *ChatGPTProvider) Reply(ctx context.Context, message string, history []Message) (string, error) {
	msgs := make([]chatMessage, 0, len(history)+2)
	msgs = append(msgs, chatMessage{Role: "system", Content: SystemPrompt})
	for _, m := range history {
		role := RoleAssistant
		if m.FromUser() {
			role = RoleUser
		}
		msgs = append(msgs, chatMessage{Role: role, Content: m.Text})
	}
	msgs = append(msgs, chatMessage{Role: RoleUser, Content: message})

	reqBody, err := json.Marshal(chatRequest{
		Model:     p.model,
		Messages:  msgs,
		MaxTokens: MaxReplyTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chatgpt: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("chatgpt: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chatgpt: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("chatgpt: read response: %w", err)
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("chatgpt: unmarshal response (status %d): %w", resp.StatusCode, err)
	}
	if cr.Error != nil {
		return "", fmt.Errorf("chatgpt: api error: %s", cr.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chatgpt: unexpected status %d", resp.StatusCode)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("chatgpt: API returned empty choices array (raw: %s)", body)
	}
	return cr.Choices[0].Message.Content, nil
}
