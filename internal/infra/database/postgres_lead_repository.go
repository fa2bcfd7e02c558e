package database

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/AKastantin/BPP-LP/internal/entity"
)

// PostgresLeadRepository is the optional persistent lead store. Unlike the
// memory repository, Create is an atomic upsert keyed on email, which closes
// the lookup-then-insert race between two requests for the same address.
type PostgresLeadRepository struct {
	DB *sql.DB
}

func NewPostgresLeadRepository(db *sql.DB) *PostgresLeadRepository {
	return &PostgresLeadRepository{DB: db}
}

func (r *PostgresLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	metadata, err := json.Marshal(lead.Metadata)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO leads (id, email, name, phone, company, audience_type, lead_source, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (email)
		DO UPDATE SET
			name = COALESCE(NULLIF(EXCLUDED.name, ''), leads.name),
			phone = COALESCE(NULLIF(EXCLUDED.phone, ''), leads.phone),
			company = COALESCE(NULLIF(EXCLUDED.company, ''), leads.company)
		RETURNING id, created_at
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		lead.ID,
		lead.Email,
		nullString(lead.Name),
		nullString(lead.Phone),
		nullString(lead.Company),
		lead.AudienceType,
		lead.LeadSource,
		metadata,
		lead.CreatedAt,
	).Scan(
		&lead.ID,
		&lead.CreatedAt,
	)
}

func (r *PostgresLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	return r.findOne(ctx, `SELECT id, email, name, phone, company, audience_type, lead_source, metadata, created_at FROM leads WHERE id = $1`, id)
}

func (r *PostgresLeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	return r.findOne(ctx, `SELECT id, email, name, phone, company, audience_type, lead_source, metadata, created_at FROM leads WHERE email = $1 ORDER BY created_at LIMIT 1`, email)
}

func (r *PostgresLeadRepository) findOne(ctx context.Context, query, arg string) (*entity.Lead, error) {
	var (
		lead                 entity.Lead
		name, phone, company sql.NullString
		metadata             []byte
	)

	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&lead.ID,
		&lead.Email,
		&name,
		&phone,
		&company,
		&lead.AudienceType,
		&lead.LeadSource,
		&metadata,
		&lead.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	lead.Name = name.String
	lead.Phone = phone.String
	lead.Company = company.String

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &lead.Metadata); err != nil {
			return nil, err
		}
	}

	return &lead, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
