package database

import (
	"context"
	"sync"

	"github.com/AKastantin/BPP-LP/internal/entity"
)

// MemoryLeadRepository keeps leads in a process-wide map. insertionOrder
// makes FindByEmail deterministic (first stored match wins) even though Go
// maps iterate in random order.
type MemoryLeadRepository struct {
	mu             sync.RWMutex
	leads          map[string]*entity.Lead
	insertionOrder []string
}

func NewMemoryLeadRepository() *MemoryLeadRepository {
	return &MemoryLeadRepository{
		leads: make(map[string]*entity.Lead),
	}
}

func (r *MemoryLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.leads[lead.ID] = lead
	r.insertionOrder = append(r.insertionOrder, lead.ID)
	return nil
}

func (r *MemoryLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.leads[id], nil
}

// FindByEmail scans in insertion order for the first exact match. Matching
// is case-sensitive, mirroring the behaviour the product signed off on.
func (r *MemoryLeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.insertionOrder {
		if lead := r.leads[id]; lead != nil && lead.Email == email {
			return lead, nil
		}
	}
	return nil, nil
}
