package profileinfra

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Abraxas-365/internmatch/pkg/kernel"
	"github.com/Abraxas-365/internmatch/recruitment/profile"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresProfileRepository implements profile.Repository using PostgreSQL
type PostgresProfileRepository struct {
	db *sqlx.DB
}

// NewPostgresProfileRepository creates a new PostgreSQL profile repository
func NewPostgresProfileRepository(db *sqlx.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type profileModel struct {
	ID               string         `db:"id"`
	Name             string         `db:"name"`
	Email            string         `db:"email"`
	Skills           pq.StringArray `db:"skills"`
	Interests        pq.StringArray `db:"interests"`
	DesiredLocation  sql.NullString `db:"desired_location"`
	SectorPreference sql.NullString `db:"sector_preference"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

func (m *profileModel) toEntity() *profile.Profile {
	return &profile.Profile{
		ID:               kernel.ProfileID(m.ID),
		Name:             m.Name,
		Email:            m.Email,
		Skills:           nonNil(m.Skills),
		Interests:        nonNil(m.Interests),
		DesiredLocation:  m.DesiredLocation.String,
		SectorPreference: m.SectorPreference.String,
		UpdatedAt:        m.UpdatedAt,
	}
}

func fromEntity(p *profile.Profile) *profileModel {
	return &profileModel{
		ID:               p.ID.String(),
		Name:             p.Name,
		Email:            p.Email,
		Skills:           pq.StringArray(nonNil(p.Skills)),
		Interests:        pq.StringArray(nonNil(p.Interests)),
		DesiredLocation:  nullString(p.DesiredLocation),
		SectorPreference: nullString(p.SectorPreference),
		UpdatedAt:        p.UpdatedAt,
	}
}

// ============================================================================
// Repository Implementation
// ============================================================================

// GetByID retrieves a profile by ID
func (r *PostgresProfileRepository) GetByID(ctx context.Context, id kernel.ProfileID) (*profile.Profile, error) {
	query := `
		SELECT id, name, email, skills, interests, desired_location, sector_preference, updated_at
		FROM profiles
		WHERE id = $1
	`

	var model profileModel
	if err := r.db.GetContext(ctx, &model, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, profile.ErrProfileNotFound()
		}
		return nil, fmt.Errorf("failed to get profile by id: %w", err)
	}

	return model.toEntity(), nil
}

// Upsert inserts the profile or replaces the existing row
func (r *PostgresProfileRepository) Upsert(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profiles (
			id, name, email, skills, interests, desired_location, sector_preference, updated_at
		) VALUES (
			:id, :name, :email, :skills, :interests, :desired_location, :sector_preference, :updated_at
		)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			skills = EXCLUDED.skills,
			interests = EXCLUDED.interests,
			desired_location = EXCLUDED.desired_location,
			sector_preference = EXCLUDED.sector_preference,
			updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.NamedExecContext(ctx, query, fromEntity(p)); err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	return nil
}

// Delete deletes a profile by ID
func (r *PostgresProfileRepository) Delete(ctx context.Context, id kernel.ProfileID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = $1`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return profile.ErrProfileNotFound()
	}

	return nil
}

// ============================================================================
// Helper Methods
// ============================================================================

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
