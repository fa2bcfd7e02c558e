package usecase

import (
	"context"

	"github.com/AKastantin/BPP-LP/internal/entity"
)

type SubmitSurveyUseCase struct {
	LeadRepo   LeadRepositoryInterface
	SurveyRepo SurveyRepositoryInterface
}

func NewSubmitSurveyUseCase(leadRepo LeadRepositoryInterface, surveyRepo SurveyRepositoryInterface) *SubmitSurveyUseCase {
	return &SubmitSurveyUseCase{
		LeadRepo:   leadRepo,
		SurveyRepo: surveyRepo,
	}
}

func (uc *SubmitSurveyUseCase) Execute(ctx context.Context, input SubmitSurveyInput) (*entity.SurveyResponse, error) {
	if err := firstError(ValidateSubmitSurveyInput(input)); err != nil {
		return nil, err
	}

	// Anonymous surveys are fine; the lead link only exists when an email
	// was volunteered. The answers double as the lead's metadata.
	var leadID string
	if input.Email != "" {
		lead, err := findOrCreateLeadByEmail(ctx, uc.LeadRepo, input.Email, "", entity.SourceSurvey, input.Responses)
		if err != nil {
			return nil, err
		}
		leadID = lead.ID
	}

	response, err := entity.NewSurveyResponse(leadID, input.Responses, input.Completed)
	if err != nil {
		return nil, err
	}

	if err := uc.SurveyRepo.Create(ctx, response); err != nil {
		return nil, err
	}

	return response, nil
}
