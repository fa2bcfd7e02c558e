package telegram

import (
	"fmt"
	"strings"
	"time"
)

// Operator-facing message bodies. Telegram renders these with HTML parse
// mode, so keep the markup to <b> tags.

type ContactMessage struct {
	Name         string
	Email        string
	Phone        string
	Company      string
	Message      string
	AudienceType string
}

func FormatContactMessage(data ContactMessage) string {
	var b strings.Builder
	b.WriteString("🔔 <b>New Contact Form Submission</b>\n\n")
	fmt.Fprintf(&b, "👤 <b>Name:</b> %s\n", orDefault(data.Name, "Not provided"))
	fmt.Fprintf(&b, "📧 <b>Email:</b> %s\n", data.Email)
	fmt.Fprintf(&b, "📞 <b>Phone:</b> %s\n", orDefault(data.Phone, "Not provided"))
	fmt.Fprintf(&b, "🏢 <b>Company:</b> %s\n", orDefault(data.Company, "Not provided"))
	fmt.Fprintf(&b, "👥 <b>Audience Type:</b> %s\n", orDefault(data.AudienceType, "Not specified"))
	fmt.Fprintf(&b, "💬 <b>Message:</b> %s\n", orDefault(data.Message, "No message provided"))
	fmt.Fprintf(&b, "\n⏰ <b>Time:</b> %s", formatTime(time.Now()))
	return b.String()
}

type PropertyUpdateMessage struct {
	Email           string
	PropertyAddress string
	PropertyType    string
	Bedrooms        string
}

func FormatPropertyUpdateMessage(data PropertyUpdateMessage) string {
	var b strings.Builder
	b.WriteString("🏠 <b>New Property Update Request</b>\n\n")
	fmt.Fprintf(&b, "📧 <b>Email:</b> %s\n", data.Email)
	fmt.Fprintf(&b, "📍 <b>Property Address:</b> %s\n", data.PropertyAddress)
	fmt.Fprintf(&b, "🏘️ <b>Property Type:</b> %s\n", orDefault(data.PropertyType, "Not specified"))
	fmt.Fprintf(&b, "🛏️ <b>Bedrooms:</b> %s\n", orDefault(data.Bedrooms, "Not specified"))
	fmt.Fprintf(&b, "\n⏰ <b>Time:</b> %s", formatTime(time.Now()))
	return b.String()
}

type EmailRequestMessage struct {
	Email           string
	PropertyAddress string
	Results         map[string]any
}

func FormatEmailRequestMessage(data EmailRequestMessage) string {
	var b strings.Builder
	b.WriteString("📧 <b>Property Results Email Request</b>\n\n")
	fmt.Fprintf(&b, "📧 <b>Email:</b> %s\n", data.Email)
	fmt.Fprintf(&b, "📍 <b>Property Address:</b> %s\n", data.PropertyAddress)
	fmt.Fprintf(&b, "💰 <b>Current Value:</b> £%s\n", resultNumber(data.Results, "currentValue"))
	fmt.Fprintf(&b, "📈 <b>1-Year Forecast:</b> £%s\n", resultNumber(data.Results, "oneYearForecast"))
	fmt.Fprintf(&b, "📊 <b>5-Year Forecast:</b> £%s\n", resultNumber(data.Results, "fiveYearForecast"))
	fmt.Fprintf(&b, "🎯 <b>Confidence:</b> %s%%\n", resultNumber(data.Results, "confidence"))
	fmt.Fprintf(&b, "\n⏰ <b>Time:</b> %s", formatTime(time.Now()))
	return b.String()
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func formatTime(t time.Time) string {
	return t.Format("02/01/2006, 15:04:05")
}

// resultNumber digs a numeric field out of the opaque results snapshot.
// The snapshot arrives as decoded JSON, so numbers are float64.
func resultNumber(results map[string]any, key string) string {
	if results == nil {
		return "N/A"
	}
	value, ok := results[key]
	if !ok {
		return "N/A"
	}

	switch v := value.(type) {
	case float64:
		return formatThousands(int64(v))
	case int:
		return formatThousands(int64(v))
	case int64:
		return formatThousands(v)
	case string:
		return v
	default:
		return "N/A"
	}
}

func formatThousands(n int64) string {
	raw := fmt.Sprintf("%d", n)
	if len(raw) <= 3 {
		return raw
	}

	var b strings.Builder
	lead := len(raw) % 3
	if lead > 0 {
		b.WriteString(raw[:lead])
	}
	for i := lead; i < len(raw); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(raw[i : i+3])
	}
	return b.String()
}
