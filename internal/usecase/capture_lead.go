package usecase

import (
	"context"

	"github.com/AKastantin/BPP-LP/internal/entity"
)

type CaptureLeadUseCase struct {
	LeadRepo LeadRepositoryInterface
}

func NewCaptureLeadUseCase(leadRepo LeadRepositoryInterface) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{LeadRepo: leadRepo}
}

// Execute records the lead exactly as submitted. No dedupe here: repeated
// submits to /api/leads create repeated records.
func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input CaptureLeadInput) (*entity.Lead, error) {
	if err := firstError(ValidateCaptureLeadInput(input)); err != nil {
		return nil, err
	}

	lead, err := entity.NewLead(
		input.Email,
		input.Name,
		input.Phone,
		input.Company,
		input.AudienceType,
		input.LeadSource,
		input.Metadata,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.LeadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}

	return lead, nil
}
