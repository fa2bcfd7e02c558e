package usecase

import (
	"context"
)

// PropertySearchUseCase backs the instant-lookup widget: no lead, no stored
// record, just a fresh set of demo numbers for the address typed in.
type PropertySearchUseCase struct {
	Valuations *ValuationGenerator
}

func NewPropertySearchUseCase(valuations *ValuationGenerator) *PropertySearchUseCase {
	return &PropertySearchUseCase{Valuations: valuations}
}

func (uc *PropertySearchUseCase) Execute(ctx context.Context, input PropertySearchInput) (ValuationResults, error) {
	if err := firstError(ValidatePropertySearchInput(input)); err != nil {
		return ValuationResults{}, err
	}

	return uc.Valuations.Generate(), nil
}
