package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/AKastantin/BPP-LP/internal/infra/http/middleware"
)

// Client pushes operator notifications to a Telegram chat. Delivery is best
// effort: every failure path logs and returns false, nothing propagates to
// the request that triggered the notification.
type Client struct {
	botToken string
	chatID   string
	baseURL  string
}

func NewClient() *Client {
	c := &Client{
		botToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		chatID:   os.Getenv("TELEGRAM_CHAT_ID"),
		baseURL:  "https://api.telegram.org",
	}

	if c.botToken == "" || c.chatID == "" {
		log.Println("⚠️ Telegram: BOT_TOKEN or CHAT_ID not configured, notifications disabled")
	}

	return c
}

func (c *Client) SendMessage(ctx context.Context, text string) bool {
	if c.botToken == "" || c.chatID == "" {
		return false
	}

	payload := SendMessageRequest{
		ChatID:    c.chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return c.fail("❌ Telegram: failed to serialize payload: %v", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.botToken)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return c.fail("❌ Telegram: failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return c.fail("❌ Telegram: failed to send message: %v", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return c.fail("❌ Telegram: API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var result SendMessageResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return c.fail("❌ Telegram: failed to parse response: %v", err)
	}

	if !result.OK {
		return c.fail("❌ Telegram: API error: %s (Code: %d)", result.Description, result.ErrorCode)
	}

	return true
}

// fail logs the delivery problem, bumps the error counter and converts the
// failure into the boolean contract callers expect.
func (c *Client) fail(format string, args ...any) bool {
	log.Printf(format, args...)
	middleware.RecordNotificationError("telegram")
	return false
}
