package database

import (
	"context"
	"sync"

	"github.com/AKastantin/BPP-LP/internal/entity"
)

type MemoryForecastRepository struct {
	mu        sync.RWMutex
	forecasts map[string]*entity.PropertyForecast
}

func NewMemoryForecastRepository() *MemoryForecastRepository {
	return &MemoryForecastRepository{
		forecasts: make(map[string]*entity.PropertyForecast),
	}
}

func (r *MemoryForecastRepository) Create(ctx context.Context, forecast *entity.PropertyForecast) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.forecasts[forecast.ID] = forecast
	return nil
}

func (r *MemoryForecastRepository) FindByID(ctx context.Context, id string) (*entity.PropertyForecast, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.forecasts[id], nil
}
