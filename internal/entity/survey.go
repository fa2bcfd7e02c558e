package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type SurveyResponse struct {
	ID        string         `json:"id"`
	LeadID    string         `json:"lead_id,omitempty"`
	Responses map[string]any `json:"responses"`
	Completed bool           `json:"completed"`
	CreatedAt time.Time      `json:"created_at"`
}

func NewSurveyResponse(leadID string, responses map[string]any, completed bool) (*SurveyResponse, error) {
	response := &SurveyResponse{
		ID:        uuid.New().String(),
		LeadID:    leadID,
		Responses: responses,
		Completed: completed,
		CreatedAt: time.Now(),
	}

	if err := response.Validate(); err != nil {
		return nil, err
	}

	return response, nil
}

func (s *SurveyResponse) Validate() error {
	if s.Responses == nil {
		return errors.New("responses is required")
	}
	return nil
}
