package usecase

import (
	"context"

	"github.com/AKastantin/BPP-LP/internal/entity"
)

// findOrCreateLeadByEmail is the site's best-effort dedupe: look the email
// up, create a property_owners lead if nothing matched. The lookup and the
// insert are separate repository calls, so two concurrent requests for the
// same email can still both insert. Known gap, accepted for the demo store;
// the Postgres lead repository closes it with an atomic upsert.
func findOrCreateLeadByEmail(ctx context.Context, repo LeadRepositoryInterface, email, name, leadSource string, metadata map[string]any) (*entity.Lead, error) {
	lead, err := repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if lead != nil {
		return lead, nil
	}

	lead, err = entity.NewLead(email, name, "", "", entity.AudiencePropertyOwners, leadSource, metadata)
	if err != nil {
		return nil, err
	}

	if err := repo.Create(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}
