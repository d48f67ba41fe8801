package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ChatbotClient proxies chat completions to the hosted Chatbase-style API.
// The dashboard never talks to the upstream directly; it posts a prompt here
// and gets the generated text back.
type ChatbotClient struct {
	APIKey     string
	APIURL     string
	HTTPClient *http.Client
}

func NewChatbotClient(apiKey, apiURL string) *ChatbotClient {
	return &ChatbotClient{
		APIKey:     apiKey,
		APIURL:     apiURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type chatRequest struct {
	Messages    []chatTurn `json:"messages"`
	Stream      bool       `json:"stream"`
	Temperature float64    `json:"temperature"`
}

type chatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Message string `json:"message"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends a single-turn prompt upstream and returns the reply text.
func (c *ChatbotClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.APIKey == "" {
		return "", ErrBadRequest("Chat API key is not configured")
	}
	body, err := json.Marshal(chatRequest{
		Messages:    []chatTurn{{Role: "user", Content: prompt}},
		Stream:      false,
		Temperature: 0.7,
	})
	if err != nil {
		return "", WrapError(err, "encode chat request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.APIURL, bytes.NewReader(body))
	if err != nil {
		return "", WrapError(err, "build chat request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", WrapError(err, "call chat API")
	}
	defer resp.Body.Close()

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", WrapError(err, "decode chat response")
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("chat API error: %s", parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat API status %d", resp.StatusCode)
	}
	return parsed.Message, nil
}
