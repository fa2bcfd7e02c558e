package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatContactMessage(t *testing.T) {
	message := FormatContactMessage(ContactMessage{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Please call me back about the valuation tool.",
	})

	assert.Contains(t, message, "<b>New Contact Form Submission</b>")
	assert.Contains(t, message, "<b>Name:</b> Jane Doe")
	assert.Contains(t, message, "<b>Email:</b> jane@example.com")
	assert.Contains(t, message, "<b>Phone:</b> Not provided")
	assert.Contains(t, message, "<b>Company:</b> Not provided")
	assert.Contains(t, message, "<b>Audience Type:</b> Not specified")
	assert.Contains(t, message, "Please call me back")
	assert.Contains(t, message, "<b>Time:</b>")
}

func TestFormatPropertyUpdateMessage(t *testing.T) {
	message := FormatPropertyUpdateMessage(PropertyUpdateMessage{
		Email:           "owner@example.com",
		PropertyAddress: "12 Oxford Street, London",
		PropertyType:    "terraced",
		Bedrooms:        "3",
	})

	assert.Contains(t, message, "<b>New Property Update Request</b>")
	assert.Contains(t, message, "<b>Property Address:</b> 12 Oxford Street, London")
	assert.Contains(t, message, "<b>Property Type:</b> terraced")
	assert.Contains(t, message, "<b>Bedrooms:</b> 3")
}

func TestFormatPropertyUpdateMessageDefaults(t *testing.T) {
	message := FormatPropertyUpdateMessage(PropertyUpdateMessage{
		Email:           "owner@example.com",
		PropertyAddress: "12 Oxford Street",
	})

	assert.Contains(t, message, "<b>Property Type:</b> Not specified")
	assert.Contains(t, message, "<b>Bedrooms:</b> Not specified")
}

func TestFormatEmailRequestMessage(t *testing.T) {
	// Results arrive as decoded JSON, so the numbers are float64.
	message := FormatEmailRequestMessage(EmailRequestMessage{
		Email:           "report@example.com",
		PropertyAddress: "12 Oxford Street",
		Results: map[string]any{
			"currentValue":     float64(354210),
			"oneYearForecast":  float64(372900),
			"fiveYearForecast": float64(480115),
			"confidence":       float64(94),
		},
	})

	assert.Contains(t, message, "<b>Current Value:</b> £354,210")
	assert.Contains(t, message, "<b>1-Year Forecast:</b> £372,900")
	assert.Contains(t, message, "<b>5-Year Forecast:</b> £480,115")
	assert.Contains(t, message, "<b>Confidence:</b> 94%")
}

func TestFormatEmailRequestMessageMissingResults(t *testing.T) {
	message := FormatEmailRequestMessage(EmailRequestMessage{
		Email:           "report@example.com",
		PropertyAddress: "12 Oxford Street",
	})

	assert.Contains(t, message, "<b>Current Value:</b> £N/A")
	assert.Contains(t, message, "<b>Confidence:</b> N/A%")
}

func TestFormatThousands(t *testing.T) {
	assert.Equal(t, "0", formatThousands(0))
	assert.Equal(t, "999", formatThousands(999))
	assert.Equal(t, "1,000", formatThousands(1000))
	assert.Equal(t, "354,210", formatThousands(354210))
	assert.Equal(t, "1,234,567", formatThousands(1234567))
}

func TestResultNumberTypes(t *testing.T) {
	results := map[string]any{
		"float":  float64(1500),
		"int":    1500,
		"string": "already formatted",
		"bool":   true,
	}

	assert.Equal(t, "1,500", resultNumber(results, "float"))
	assert.Equal(t, "1,500", resultNumber(results, "int"))
	assert.Equal(t, "already formatted", resultNumber(results, "string"))
	assert.Equal(t, "N/A", resultNumber(results, "bool"))
	assert.Equal(t, "N/A", resultNumber(results, "missing"))
	assert.Equal(t, "N/A", resultNumber(nil, "anything"))
}
