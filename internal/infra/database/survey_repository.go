package database

import (
	"context"
	"sync"

	"github.com/AKastantin/BPP-LP/internal/entity"
)

type MemorySurveyRepository struct {
	mu        sync.RWMutex
	responses map[string]*entity.SurveyResponse
}

func NewMemorySurveyRepository() *MemorySurveyRepository {
	return &MemorySurveyRepository{
		responses: make(map[string]*entity.SurveyResponse),
	}
}

func (r *MemorySurveyRepository) Create(ctx context.Context, response *entity.SurveyResponse) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.responses[response.ID] = response
	return nil
}

func (r *MemorySurveyRepository) FindByID(ctx context.Context, id string) (*entity.SurveyResponse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.responses[id], nil
}
