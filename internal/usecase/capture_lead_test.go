package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/AKastantin/BPP-LP/internal/entity"
)

func TestCaptureLeadSuccess(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := NewCaptureLeadUseCase(repo)
	lead, err := uc.Execute(context.Background(), CaptureLeadInput{
		Email:        "jane@example.com",
		Name:         "Jane Doe",
		AudienceType: entity.AudienceEstateAgents,
		LeadSource:   "pricing_page",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, "jane@example.com", lead.Email)
	repo.AssertCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCaptureLeadValidationError(t *testing.T) {
	uc := NewCaptureLeadUseCase(new(MockLeadRepository))

	_, err := uc.Execute(context.Background(), CaptureLeadInput{
		AudienceType: entity.AudienceBanks,
		LeadSource:   "pricing_page",
	})

	assert.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "email")
}

func TestCaptureLeadInvalidEmail(t *testing.T) {
	uc := NewCaptureLeadUseCase(new(MockLeadRepository))

	_, err := uc.Execute(context.Background(), CaptureLeadInput{
		Email:        "not-an-email",
		AudienceType: entity.AudienceBanks,
		LeadSource:   "pricing_page",
	})

	assert.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestCaptureLeadRepositoryError(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("store unavailable"))

	uc := NewCaptureLeadUseCase(repo)
	_, err := uc.Execute(context.Background(), CaptureLeadInput{
		Email:        "jane@example.com",
		AudienceType: entity.AudienceBanks,
		LeadSource:   "pricing_page",
	})

	assert.Error(t, err)
	assert.False(t, IsValidationError(err))
}
