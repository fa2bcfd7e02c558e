package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// EmailRequest is a deferred "send me this report" intent. The API only
// records it; delivery happens out of band (queue worker) and flips Sent.
type EmailRequest struct {
	ID              string         `json:"id"`
	Email           string         `json:"email"`
	PropertyAddress string         `json:"property_address"`
	PropertyResults map[string]any `json:"property_results"`
	Sent            bool           `json:"sent"`
	CreatedAt       time.Time      `json:"created_at"`
}

func NewEmailRequest(email, propertyAddress string, propertyResults map[string]any) (*EmailRequest, error) {
	request := &EmailRequest{
		ID:              uuid.New().String(),
		Email:           email,
		PropertyAddress: propertyAddress,
		PropertyResults: propertyResults,
		Sent:            false,
		CreatedAt:       time.Now(),
	}

	if err := request.Validate(); err != nil {
		return nil, err
	}

	return request, nil
}

func (e *EmailRequest) Validate() error {
	if e.Email == "" {
		return errors.New("email is required")
	}
	if e.PropertyAddress == "" {
		return errors.New("property_address is required")
	}
	return nil
}
