package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/AKastantin/BPP-LP/internal/infra/integration/telegram"
)

// Quick manual check that the Telegram credentials in .env actually work.
//
//	go run ./sample/notify-test
func main() {
	godotenv.Load()

	client := telegram.NewClient()

	message := telegram.FormatContactMessage(telegram.ContactMessage{
		Name:         "Test Notification",
		Email:        "test@example.com",
		Message:      "If you can read this, the webhook wiring works.",
		AudienceType: "property_owners",
	})

	if client.SendMessage(context.Background(), message) {
		fmt.Println("✅ Test message delivered")
	} else {
		fmt.Println("❌ Test message failed (check TELEGRAM_BOT_TOKEN / TELEGRAM_CHAT_ID)")
	}
}
