package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// PropertyForecast records a valuation request. LeadID is a weak reference:
// the lead is created-or-found by email before the forecast is stored, but
// nothing enforces that it still exists.
type PropertyForecast struct {
	ID              string    `json:"id"`
	LeadID          string    `json:"lead_id,omitempty"`
	PropertyAddress string    `json:"property_address"`
	PropertyType    string    `json:"property_type,omitempty"`
	Bedrooms        string    `json:"bedrooms,omitempty"`
	Email           string    `json:"email"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewPropertyForecast(leadID, propertyAddress, propertyType, bedrooms, email string) (*PropertyForecast, error) {
	forecast := &PropertyForecast{
		ID:              uuid.New().String(),
		LeadID:          leadID,
		PropertyAddress: propertyAddress,
		PropertyType:    propertyType,
		Bedrooms:        bedrooms,
		Email:           email,
		CreatedAt:       time.Now(),
	}

	if err := forecast.Validate(); err != nil {
		return nil, err
	}

	return forecast, nil
}

func (f *PropertyForecast) Validate() error {
	if f.PropertyAddress == "" {
		return errors.New("property_address is required")
	}
	if f.Email == "" {
		return errors.New("email is required")
	}
	return nil
}
