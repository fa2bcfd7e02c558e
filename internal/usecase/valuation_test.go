package usecase

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValuationBands(t *testing.T) {
	gen := NewValuationGeneratorWithSeed(42)

	for i := 0; i < 200; i++ {
		results := gen.Generate()

		assert.GreaterOrEqual(t, results.CurrentValue, 200_000)
		assert.Less(t, results.CurrentValue, 700_000)

		assert.GreaterOrEqual(t, results.Confidence, 90)
		assert.Less(t, results.Confidence, 100)

		// One-year uplift is 2-12%, five-year is 15-55% (int truncation can
		// shave a pound off the lower bound).
		assert.GreaterOrEqual(t, float64(results.OneYearForecast), float64(results.CurrentValue)*1.02-1)
		assert.LessOrEqual(t, float64(results.OneYearForecast), float64(results.CurrentValue)*1.12)
		assert.GreaterOrEqual(t, float64(results.FiveYearForecast), float64(results.CurrentValue)*1.15-1)
		assert.LessOrEqual(t, float64(results.FiveYearForecast), float64(results.CurrentValue)*1.55)
	}
}

func TestValuationGrowthStrings(t *testing.T) {
	gen := NewValuationGeneratorWithSeed(7)
	results := gen.Generate()

	oneYear, err := strconv.ParseFloat(results.OneYearGrowth, 64)
	assert.NoError(t, err)
	assert.Greater(t, oneYear, 0.0)

	fiveYear, err := strconv.ParseFloat(results.FiveYearGrowth, 64)
	assert.NoError(t, err)
	assert.Greater(t, fiveYear, oneYear)
}

func TestValuationSeedReproducible(t *testing.T) {
	a := NewValuationGeneratorWithSeed(99).Generate()
	b := NewValuationGeneratorWithSeed(99).Generate()

	assert.Equal(t, a, b)
}
