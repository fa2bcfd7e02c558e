package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoundFigure(t *testing.T) {
	results := map[string]any{
		"currentValue":    float64(354210),
		"oneYearForecast": 990,
		"preFormatted":    "1,000,000",
	}

	assert.Equal(t, "£354,210", poundFigure(results, "currentValue"))
	assert.Equal(t, "£990", poundFigure(results, "oneYearForecast"))
	assert.Equal(t, "£1,000,000", poundFigure(results, "preFormatted"))
	assert.Equal(t, "N/A", poundFigure(results, "missing"))
	assert.Equal(t, "N/A", poundFigure(nil, "currentValue"))
}

func TestPlainFigure(t *testing.T) {
	results := map[string]any{
		"confidence": float64(94),
		"flag":       true,
	}

	assert.Equal(t, "94", plainFigure(results, "confidence"))
	assert.Equal(t, "N/A", plainFigure(results, "flag"))
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "0", groupThousands(0))
	assert.Equal(t, "999", groupThousands(999))
	assert.Equal(t, "1,000", groupThousands(1000))
	assert.Equal(t, "480,115", groupThousands(480115))
	assert.Equal(t, "12,345,678", groupThousands(12345678))
}
