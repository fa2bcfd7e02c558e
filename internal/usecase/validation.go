package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/AKastantin/BPP-LP/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// firstError flattens a validator result into a single error, which is what
// the JSON envelope carries.
func firstError(errs []ValidationError) error {
	if len(errs) == 0 {
		return nil
	}
	return errs[0]
}

func ValidateCaptureLeadInput(input CaptureLeadInput) []ValidationError {
	var errors []ValidationError

	errors = appendEmailErrors(errors, input.Email, true)

	if strings.TrimSpace(input.AudienceType) == "" {
		errors = append(errors, ValidationError{"audience_type", "is required"})
	}
	if strings.TrimSpace(input.LeadSource) == "" {
		errors = append(errors, ValidationError{"lead_source", "is required"})
	}

	return errors
}

func ValidatePropertyForecastInput(input PropertyForecastInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.PropertyAddress) == "" {
		errors = append(errors, ValidationError{"property_address", "is required"})
	}
	errors = appendEmailErrors(errors, input.Email, true)

	return errors
}

func ValidateSubmitSurveyInput(input SubmitSurveyInput) []ValidationError {
	var errors []ValidationError

	if input.Responses == nil {
		errors = append(errors, ValidationError{"responses", "is required"})
	}
	errors = appendEmailErrors(errors, input.Email, false)

	return errors
}

func ValidateDemoRequestInput(input DemoRequestInput) []ValidationError {
	var errors []ValidationError

	errors = appendEmailErrors(errors, input.Email, true)

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}

	if strings.TrimSpace(input.AudienceType) == "" {
		errors = append(errors, ValidationError{"audience_type", "is required"})
	} else if !entity.IsValidAudienceType(input.AudienceType) {
		errors = append(errors, ValidationError{"audience_type", "must be one of banks, estate_agents, property_investors, property_owners"})
	}

	return errors
}

func ValidateNewsletterInput(input NewsletterInput) []ValidationError {
	return appendEmailErrors(nil, input.Email, true)
}

func ValidateContactInput(input ContactInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.FirstName) == "" {
		errors = append(errors, ValidationError{"firstName", "is required"})
	}
	if strings.TrimSpace(input.LastName) == "" {
		errors = append(errors, ValidationError{"lastName", "is required"})
	}
	errors = appendEmailErrors(errors, input.Email, true)

	if len(strings.TrimSpace(input.Message)) < 10 {
		errors = append(errors, ValidationError{"message", "must have at least 10 characters"})
	}

	return errors
}

func ValidatePropertyUpdatesSurveyInput(input PropertyUpdatesSurveyInput) []ValidationError {
	var errors []ValidationError

	if len(input.SelectedOptions) == 0 {
		errors = append(errors, ValidationError{"selectedOptions", "select at least one update type"})
	}
	errors = appendEmailErrors(errors, input.Email, false)

	return errors
}

func ValidatePropertySearchInput(input PropertySearchInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Address) == "" {
		errors = append(errors, ValidationError{"address", "is required"})
	}

	return errors
}

func ValidateEmailResultsInput(input EmailResultsInput) []ValidationError {
	var errors []ValidationError

	errors = appendEmailErrors(errors, input.Email, true)

	if strings.TrimSpace(input.PropertyAddress) == "" {
		errors = append(errors, ValidationError{"property_address", "is required"})
	}
	if input.PropertyResults == nil {
		errors = append(errors, ValidationError{"property_results", "is required"})
	}

	return errors
}

func appendEmailErrors(errors []ValidationError, email string, required bool) []ValidationError {
	if strings.TrimSpace(email) == "" {
		if required {
			errors = append(errors, ValidationError{"email", "is required"})
		}
		return errors
	}

	if _, err := mail.ParseAddress(email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}
	return errors
}
