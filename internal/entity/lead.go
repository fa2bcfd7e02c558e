package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Audience segments used to route/tag leads.
const (
	AudienceBanks             = "banks"
	AudienceEstateAgents      = "estate_agents"
	AudiencePropertyInvestors = "property_investors"
	AudiencePropertyOwners    = "property_owners"
)

// Lead sources (which site interaction produced the lead).
const (
	SourcePropertyForecast = "property_forecast"
	SourceSurvey           = "survey"
	SourceDemoRequest      = "demo_request"
	SourceNewsletter       = "newsletter"
	SourceContactForm      = "contact_form"
	SourcePropertyUpdates  = "property_updates_survey"
)

type Lead struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	Name         string         `json:"name,omitempty"`
	Phone        string         `json:"phone,omitempty"`
	Company      string         `json:"company,omitempty"`
	AudienceType string         `json:"audience_type"`
	LeadSource   string         `json:"lead_source"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// Factory
func NewLead(email, name, phone, company, audienceType, leadSource string, metadata map[string]any) (*Lead, error) {
	lead := &Lead{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		Phone:        phone,
		Company:      company,
		AudienceType: audienceType,
		LeadSource:   leadSource,
		Metadata:     metadata,
		CreatedAt:    time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Email == "" {
		return errors.New("email is required")
	}
	if l.AudienceType == "" {
		return errors.New("audience_type is required")
	}
	if l.LeadSource == "" {
		return errors.New("lead_source is required")
	}
	return nil
}

// IsValidAudienceType reports whether s is one of the four fixed segments.
func IsValidAudienceType(s string) bool {
	switch s {
	case AudienceBanks, AudienceEstateAgents, AudiencePropertyInvestors, AudiencePropertyOwners:
		return true
	}
	return false
}
