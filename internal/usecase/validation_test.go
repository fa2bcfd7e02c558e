package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AKastantin/BPP-LP/internal/entity"
)

func TestValidateCaptureLeadInput(t *testing.T) {
	tests := []struct {
		name      string
		input     CaptureLeadInput
		wantField string
	}{
		{
			name:      "missing email",
			input:     CaptureLeadInput{AudienceType: entity.AudienceBanks, LeadSource: "x"},
			wantField: "email",
		},
		{
			name:      "invalid email",
			input:     CaptureLeadInput{Email: "nope", AudienceType: entity.AudienceBanks, LeadSource: "x"},
			wantField: "email",
		},
		{
			name:      "missing audience",
			input:     CaptureLeadInput{Email: "a@b.com", LeadSource: "x"},
			wantField: "audience_type",
		},
		{
			name:      "missing source",
			input:     CaptureLeadInput{Email: "a@b.com", AudienceType: entity.AudienceBanks},
			wantField: "lead_source",
		},
		{
			name:  "valid",
			input: CaptureLeadInput{Email: "a@b.com", AudienceType: entity.AudienceBanks, LeadSource: "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateCaptureLeadInput(tt.input)
			if tt.wantField == "" {
				assert.Empty(t, errs)
				return
			}
			assert.NotEmpty(t, errs)
			assert.Equal(t, tt.wantField, errs[0].Field)
		})
	}
}

func TestValidateDemoRequestAudienceEnum(t *testing.T) {
	base := DemoRequestInput{Email: "a@b.com", Name: "Jane"}

	for _, audience := range []string{
		entity.AudienceBanks,
		entity.AudienceEstateAgents,
		entity.AudiencePropertyInvestors,
		entity.AudiencePropertyOwners,
	} {
		input := base
		input.AudienceType = audience
		assert.Empty(t, ValidateDemoRequestInput(input), "audience %s should be accepted", audience)
	}

	input := base
	input.AudienceType = "hedge_funds"
	errs := ValidateDemoRequestInput(input)
	assert.NotEmpty(t, errs)
	assert.Equal(t, "audience_type", errs[0].Field)
}

func TestValidateOptionalEmail(t *testing.T) {
	// Surveys accept anonymous submissions but still reject junk emails.
	assert.Empty(t, ValidateSubmitSurveyInput(SubmitSurveyInput{Responses: map[string]any{}}))

	errs := ValidateSubmitSurveyInput(SubmitSurveyInput{Responses: map[string]any{}, Email: "junk"})
	assert.NotEmpty(t, errs)
	assert.Equal(t, "email", errs[0].Field)
}

func TestValidatePropertySearchInput(t *testing.T) {
	assert.NotEmpty(t, ValidatePropertySearchInput(PropertySearchInput{}))
	assert.Empty(t, ValidatePropertySearchInput(PropertySearchInput{Address: "1 Test St"}))
}
