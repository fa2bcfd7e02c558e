package usecase

import (
	"context"

	"github.com/AKastantin/BPP-LP/internal/entity"
	"github.com/AKastantin/BPP-LP/internal/infra/integration/telegram"
)

type DemoRequestUseCase struct {
	LeadRepo LeadRepositoryInterface
	Notifier Notifier
}

func NewDemoRequestUseCase(leadRepo LeadRepositoryInterface, notifier Notifier) *DemoRequestUseCase {
	return &DemoRequestUseCase{
		LeadRepo: leadRepo,
		Notifier: notifier,
	}
}

func (uc *DemoRequestUseCase) Execute(ctx context.Context, input DemoRequestInput) (*entity.Lead, error) {
	if err := firstError(ValidateDemoRequestInput(input)); err != nil {
		return nil, err
	}

	lead, err := entity.NewLead(
		input.Email,
		input.Name,
		input.Phone,
		input.Company,
		input.AudienceType,
		entity.SourceDemoRequest,
		nil,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.LeadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}

	if uc.Notifier != nil {
		message := telegram.FormatContactMessage(telegram.ContactMessage{
			Name:         input.Name,
			Email:        input.Email,
			Phone:        input.Phone,
			Company:      input.Company,
			AudienceType: input.AudienceType,
			Message:      "Demo request",
		})
		go uc.Notifier.SendMessage(context.Background(), message)
	}

	return lead, nil
}
