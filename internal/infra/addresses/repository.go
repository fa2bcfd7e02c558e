package addresses

import (
	"context"
	"strings"
	"sync"

	"github.com/AKastantin/BPP-LP/internal/entity"
)

const (
	// MinSearchLength is the shortest term worth scanning for.
	MinSearchLength = 2

	searchLimit = 10
	browseLimit = 20
)

// Repository holds the autocomplete reference data. Rows are keyed by their
// address string, so reloading the same CSV never duplicates entries.
type Repository struct {
	mu      sync.RWMutex
	byKey   map[string]*entity.PropertyAddress
	ordered []*entity.PropertyAddress
}

func NewRepository() *Repository {
	return &Repository{
		byKey: make(map[string]*entity.PropertyAddress),
	}
}

func (r *Repository) Add(address *entity.PropertyAddress) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byKey[address.Address]; exists {
		return
	}
	r.byKey[address.Address] = address
	r.ordered = append(r.ordered, address)
}

func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.ordered)
}

// Search applies a case-insensitive substring test across address, postcode
// and city, capped at 10 candidates. Terms under MinSearchLength are the
// caller's problem; an empty repository just returns nothing.
func (r *Repository) Search(ctx context.Context, term string) []*entity.PropertyAddress {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(term)
	results := make([]*entity.PropertyAddress, 0, searchLimit)

	for _, address := range r.ordered {
		if len(results) == searchLimit {
			break
		}
		if strings.Contains(strings.ToLower(address.Address), needle) ||
			strings.Contains(strings.ToLower(address.Postcode), needle) ||
			strings.Contains(strings.ToLower(address.City), needle) {
			results = append(results, address)
		}
	}

	return results
}

// Browse returns the first 20 entries for requests with no search term.
func (r *Repository) Browse(ctx context.Context) []*entity.PropertyAddress {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := browseLimit
	if len(r.ordered) < limit {
		limit = len(r.ordered)
	}

	results := make([]*entity.PropertyAddress, limit)
	copy(results, r.ordered[:limit])
	return results
}
