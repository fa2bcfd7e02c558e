package usecase

import (
	"context"
	"strings"

	"github.com/AKastantin/BPP-LP/internal/entity"
)

type PropertyUpdatesSurveyUseCase struct {
	LeadRepo   LeadRepositoryInterface
	SurveyRepo SurveyRepositoryInterface
}

func NewPropertyUpdatesSurveyUseCase(leadRepo LeadRepositoryInterface, surveyRepo SurveyRepositoryInterface) *PropertyUpdatesSurveyUseCase {
	return &PropertyUpdatesSurveyUseCase{
		LeadRepo:   leadRepo,
		SurveyRepo: surveyRepo,
	}
}

// Execute stores which update types the visitor opted into. The selection
// lands in the survey store; an email turns it into a lead as well.
func (uc *PropertyUpdatesSurveyUseCase) Execute(ctx context.Context, input PropertyUpdatesSurveyInput) (*entity.SurveyResponse, error) {
	if err := firstError(ValidatePropertyUpdatesSurveyInput(input)); err != nil {
		return nil, err
	}

	responses := map[string]any{
		"selected_options": input.SelectedOptions,
	}
	if input.AdditionalInfo != "" {
		responses["additional_info"] = input.AdditionalInfo
	}

	var leadID string
	if input.Email != "" {
		name := strings.TrimSpace(input.FirstName + " " + input.LastName)
		lead, err := findOrCreateLeadByEmail(ctx, uc.LeadRepo, input.Email, name, entity.SourcePropertyUpdates, responses)
		if err != nil {
			return nil, err
		}
		leadID = lead.ID
	}

	response, err := entity.NewSurveyResponse(leadID, responses, true)
	if err != nil {
		return nil, err
	}

	if err := uc.SurveyRepo.Create(ctx, response); err != nil {
		return nil, err
	}

	return response, nil
}
