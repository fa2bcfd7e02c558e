package entity

import (
	"time"

	"github.com/google/uuid"
)

// PropertyAddress is static reference data for the autocomplete widget,
// either seeded in code or loaded from the CSV asset.
type PropertyAddress struct {
	ID        string    `json:"id"`
	Address   string    `json:"address"`
	Postcode  string    `json:"postcode,omitempty"`
	City      string    `json:"city,omitempty"`
	County    string    `json:"county,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewPropertyAddress(address, postcode, city, county string) *PropertyAddress {
	return &PropertyAddress{
		ID:        uuid.New().String(),
		Address:   address,
		Postcode:  postcode,
		City:      city,
		County:    county,
		CreatedAt: time.Now(),
	}
}
