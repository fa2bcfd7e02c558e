package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClient(baseURL string) *Client {
	return &Client{
		botToken: "test-token",
		chatID:   "42",
		baseURL:  baseURL,
	}
}

func TestSendMessageSuccess(t *testing.T) {
	var received SendMessageRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/sendMessage", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(SendMessageResponse{OK: true})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	ok := client.SendMessage(context.Background(), "<b>hello</b>")

	assert.True(t, ok)
	assert.Equal(t, "42", received.ChatID)
	assert.Equal(t, "<b>hello</b>", received.Text)
	assert.Equal(t, "HTML", received.ParseMode)
}

func TestSendMessageAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(SendMessageResponse{OK: false, ErrorCode: 400, Description: "chat not found"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	assert.False(t, client.SendMessage(context.Background(), "hello"))
}

func TestSendMessageAPIRejection(t *testing.T) {
	// 200 with ok:false still counts as a failed delivery.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(SendMessageResponse{OK: false, ErrorCode: 403, Description: "bot was blocked"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	assert.False(t, client.SendMessage(context.Background(), "hello"))
}

func TestSendMessageUnconfigured(t *testing.T) {
	client := &Client{baseURL: "http://127.0.0.1:1"}
	assert.False(t, client.SendMessage(context.Background(), "hello"))
}

func TestSendMessageUnreachable(t *testing.T) {
	client := newTestClient("http://127.0.0.1:1")
	assert.False(t, client.SendMessage(context.Background(), "hello"))
}
