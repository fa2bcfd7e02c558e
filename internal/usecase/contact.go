package usecase

import (
	"context"
	"strings"

	"github.com/AKastantin/BPP-LP/internal/entity"
	"github.com/AKastantin/BPP-LP/internal/infra/integration/telegram"
)

type ContactUseCase struct {
	LeadRepo LeadRepositoryInterface
	Notifier Notifier
}

func NewContactUseCase(leadRepo LeadRepositoryInterface, notifier Notifier) *ContactUseCase {
	return &ContactUseCase{
		LeadRepo: leadRepo,
		Notifier: notifier,
	}
}

func (uc *ContactUseCase) Execute(ctx context.Context, input ContactInput) (*entity.Lead, error) {
	if err := firstError(ValidateContactInput(input)); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.FirstName + " " + input.LastName)

	lead, err := entity.NewLead(
		input.Email,
		name,
		"",
		"",
		entity.AudiencePropertyOwners,
		entity.SourceContactForm,
		map[string]any{"message": input.Message},
	)
	if err != nil {
		return nil, err
	}

	if err := uc.LeadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}

	if uc.Notifier != nil {
		message := telegram.FormatContactMessage(telegram.ContactMessage{
			Name:    name,
			Email:   input.Email,
			Message: input.Message,
		})
		go uc.Notifier.SendMessage(context.Background(), message)
	}

	return lead, nil
}
