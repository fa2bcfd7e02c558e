package usecase

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Valuation bands for the demo numbers. There is no model behind this; the
// site only needs plausible figures to render.
const (
	valuationFloor = 200_000
	valuationSpan  = 500_000

	oneYearGrowthBase = 0.02
	oneYearGrowthSpan = 0.10

	fiveYearGrowthBase = 0.15
	fiveYearGrowthSpan = 0.40

	confidenceFloor = 90
	confidenceSpan  = 10
)

type ValuationGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewValuationGenerator() *ValuationGenerator {
	return NewValuationGeneratorWithSeed(time.Now().UnixNano())
}

// NewValuationGeneratorWithSeed exists so tests can pin the output.
func NewValuationGeneratorWithSeed(seed int64) *ValuationGenerator {
	return &ValuationGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (g *ValuationGenerator) Generate() ValuationResults {
	g.mu.Lock()
	defer g.mu.Unlock()

	currentValue := g.rng.Intn(valuationSpan) + valuationFloor
	oneYear := int(float64(currentValue) * (1 + g.rng.Float64()*oneYearGrowthSpan + oneYearGrowthBase))
	fiveYear := int(float64(currentValue) * (1 + g.rng.Float64()*fiveYearGrowthSpan + fiveYearGrowthBase))
	confidence := g.rng.Intn(confidenceSpan) + confidenceFloor

	return ValuationResults{
		CurrentValue:     currentValue,
		OneYearForecast:  oneYear,
		FiveYearForecast: fiveYear,
		Confidence:       confidence,
		OneYearGrowth:    growthPercent(currentValue, oneYear),
		FiveYearGrowth:   growthPercent(currentValue, fiveYear),
	}
}

func growthPercent(from, to int) string {
	return fmt.Sprintf("%.1f", float64(to-from)/float64(from)*100)
}
