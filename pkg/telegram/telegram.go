package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const apiBaseURL = "https://api.telegram.org"

type Client struct {
	token      string
	chatID     string
	httpClient *http.Client
}

func New(token, chatID string) *Client {
	return &Client{
		token:      token,
		chatID:     chatID,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Send posts one message to the configured chat. Single attempt: transport
// errors, non-2xx responses and ok:false bodies all surface as errors.
func (c *Client) Send(text string, markdown bool) (string, error) {
	payload := sendMessageRequest{
		ChatID: c.chatID,
		Text:   text,
	}
	if markdown {
		payload.ParseMode = "Markdown"
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("telegram encode: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", apiBaseURL, c.token)
	resp, err := c.httpClient.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("telegram send: %w", err)
	}
	defer resp.Body.Close()

	var raw sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", fmt.Errorf("telegram decode: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !raw.OK {
		if raw.Description != "" {
			return "", fmt.Errorf("telegram send: %s (status %d)", raw.Description, resp.StatusCode)
		}
		return "", fmt.Errorf("telegram send: unexpected status %d", resp.StatusCode)
	}

	return fmt.Sprintf("message %d delivered to chat %s", raw.Result.MessageID, c.chatID), nil
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
	Result      struct {
		MessageID int64 `json:"message_id"`
	} `json:"result"`
}
