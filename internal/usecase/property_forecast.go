package usecase

import (
	"context"

	"github.com/AKastantin/BPP-LP/internal/entity"
	"github.com/AKastantin/BPP-LP/internal/infra/integration/telegram"
)

type PropertyForecastOutput struct {
	Forecast *entity.PropertyForecast `json:"forecast"`
	Results  ValuationResults         `json:"results"`
}

type PropertyForecastUseCase struct {
	LeadRepo     LeadRepositoryInterface
	ForecastRepo ForecastRepositoryInterface
	Valuations   *ValuationGenerator
	Notifier     Notifier
}

func NewPropertyForecastUseCase(
	leadRepo LeadRepositoryInterface,
	forecastRepo ForecastRepositoryInterface,
	valuations *ValuationGenerator,
	notifier Notifier,
) *PropertyForecastUseCase {
	return &PropertyForecastUseCase{
		LeadRepo:     leadRepo,
		ForecastRepo: forecastRepo,
		Valuations:   valuations,
		Notifier:     notifier,
	}
}

func (uc *PropertyForecastUseCase) Execute(ctx context.Context, input PropertyForecastInput) (*PropertyForecastOutput, error) {
	if err := firstError(ValidatePropertyForecastInput(input)); err != nil {
		return nil, err
	}

	lead, err := findOrCreateLeadByEmail(ctx, uc.LeadRepo, input.Email, "", entity.SourcePropertyForecast, nil)
	if err != nil {
		return nil, err
	}

	// If this insert fails the lead above is left behind with no forecast.
	// There is no compensation step; flagged as acceptable for the demo store.
	forecast, err := entity.NewPropertyForecast(lead.ID, input.PropertyAddress, input.PropertyType, input.Bedrooms, input.Email)
	if err != nil {
		return nil, err
	}
	if err := uc.ForecastRepo.Create(ctx, forecast); err != nil {
		return nil, err
	}

	results := uc.Valuations.Generate()

	if uc.Notifier != nil {
		message := telegram.FormatPropertyUpdateMessage(telegram.PropertyUpdateMessage{
			Email:           input.Email,
			PropertyAddress: input.PropertyAddress,
			PropertyType:    input.PropertyType,
			Bedrooms:        input.Bedrooms,
		})
		go uc.Notifier.SendMessage(context.Background(), message)
	}

	return &PropertyForecastOutput{
		Forecast: forecast,
		Results:  results,
	}, nil
}
