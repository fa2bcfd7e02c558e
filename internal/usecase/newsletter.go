package usecase

import (
	"context"

	"github.com/AKastantin/BPP-LP/internal/entity"
)

type NewsletterUseCase struct {
	LeadRepo LeadRepositoryInterface
}

func NewNewsletterUseCase(leadRepo LeadRepositoryInterface) *NewsletterUseCase {
	return &NewsletterUseCase{LeadRepo: leadRepo}
}

// Execute signs an email up, reusing the lead if the address was already
// captured by any other interaction.
func (uc *NewsletterUseCase) Execute(ctx context.Context, input NewsletterInput) (*entity.Lead, error) {
	if err := firstError(ValidateNewsletterInput(input)); err != nil {
		return nil, err
	}

	return findOrCreateLeadByEmail(ctx, uc.LeadRepo, input.Email, input.Name, entity.SourceNewsletter, nil)
}
