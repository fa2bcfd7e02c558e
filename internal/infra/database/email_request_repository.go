package database

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/AKastantin/BPP-LP/internal/entity"
)

type MemoryEmailRequestRepository struct {
	mu       sync.RWMutex
	requests map[string]*entity.EmailRequest
}

func NewMemoryEmailRequestRepository() *MemoryEmailRequestRepository {
	return &MemoryEmailRequestRepository{
		requests: make(map[string]*entity.EmailRequest),
	}
}

func (r *MemoryEmailRequestRepository) Create(ctx context.Context, request *entity.EmailRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests[request.ID] = request
	return nil
}

func (r *MemoryEmailRequestRepository) FindByID(ctx context.Context, id string) (*entity.EmailRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.requests[id], nil
}

// MarkAsSent flips the only mutable field on any entity in the store.
func (r *MemoryEmailRequestRepository) MarkAsSent(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	request, ok := r.requests[id]
	if !ok {
		return fmt.Errorf("email request %s not found", id)
	}
	request.Sent = true
	return nil
}

// FindPending returns unsent requests, oldest first, for the delivery worker.
func (r *MemoryEmailRequestRepository) FindPending(ctx context.Context) ([]*entity.EmailRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var pending []*entity.EmailRequest
	for _, request := range r.requests {
		if !request.Sent {
			pending = append(pending, request)
		}
	}

	sort.Slice(pending, func(i, j int) bool {
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})

	return pending, nil
}
