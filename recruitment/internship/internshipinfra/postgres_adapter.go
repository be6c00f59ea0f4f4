package internshipinfra

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Abraxas-365/internmatch/pkg/kernel"
	"github.com/Abraxas-365/internmatch/recruitment/internship"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresInternshipRepository implements internship.Repository using PostgreSQL
type PostgresInternshipRepository struct {
	db *sqlx.DB
}

// NewPostgresInternshipRepository creates a new PostgreSQL internship repository
func NewPostgresInternshipRepository(db *sqlx.DB) *PostgresInternshipRepository {
	return &PostgresInternshipRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

const selectColumns = `id, title, description, location, sector, requirements, created_at, updated_at`

type internshipModel struct {
	ID           string         `db:"id"`
	Title        string         `db:"title"`
	Description  sql.NullString `db:"description"`
	Location     string         `db:"location"`
	Sector       string         `db:"sector"`
	Requirements pq.StringArray `db:"requirements"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// toEntity converts database model to domain entity
func (m *internshipModel) toEntity() internship.Internship {
	requirements := []string(m.Requirements)
	if requirements == nil {
		requirements = []string{}
	}

	return internship.Internship{
		ID:           kernel.InternshipID(m.ID),
		Title:        m.Title,
		Description:  m.Description.String,
		Location:     m.Location,
		Sector:       m.Sector,
		Requirements: requirements,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// fromEntity converts domain entity to database model
func fromEntity(i *internship.Internship) *internshipModel {
	return &internshipModel{
		ID:           i.ID.String(),
		Title:        i.Title,
		Description:  sql.NullString{String: i.Description, Valid: i.Description != ""},
		Location:     i.Location,
		Sector:       i.Sector,
		Requirements: pq.StringArray(internship.CleanTags(i.Requirements)),
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func toEntities(models []internshipModel) []internship.Internship {
	entities := make([]internship.Internship, 0, len(models))
	for _, model := range models {
		entities = append(entities, model.toEntity())
	}
	return entities
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new internship
func (r *PostgresInternshipRepository) Create(ctx context.Context, entity *internship.Internship) error {
	query := `
		INSERT INTO internships (
			id, title, description, location, sector, requirements, created_at, updated_at
		) VALUES (
			:id, :title, :description, :location, :sector, :requirements, :created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, fromEntity(entity))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
			return internship.ErrInternshipAlreadyExists().WithDetail("id", entity.ID.String())
		}
		return fmt.Errorf("failed to create internship: %w", err)
	}

	return nil
}

// Update updates an existing internship
func (r *PostgresInternshipRepository) Update(ctx context.Context, id kernel.InternshipID, entity *internship.Internship) error {
	model := fromEntity(entity)
	model.ID = id.String()

	query := `
		UPDATE internships SET
			title = :title,
			description = :description,
			location = :location,
			sector = :sector,
			requirements = :requirements,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update internship: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return internship.ErrInternshipNotFound()
	}

	return nil
}

// GetByID retrieves an internship by ID
func (r *PostgresInternshipRepository) GetByID(ctx context.Context, id kernel.InternshipID) (*internship.Internship, error) {
	query := `SELECT ` + selectColumns + ` FROM internships WHERE id = $1`

	var model internshipModel
	err := r.db.GetContext(ctx, &model, query, id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internship.ErrInternshipNotFound()
		}
		return nil, fmt.Errorf("failed to get internship by id: %w", err)
	}

	entity := model.toEntity()
	return &entity, nil
}

// Delete deletes an internship by ID
func (r *PostgresInternshipRepository) Delete(ctx context.Context, id kernel.InternshipID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM internships WHERE id = $1`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete internship: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return internship.ErrInternshipNotFound()
	}

	return nil
}

// List retrieves the whole catalog, newest first
func (r *PostgresInternshipRepository) List(ctx context.Context) ([]internship.Internship, error) {
	query := `SELECT ` + selectColumns + ` FROM internships ORDER BY created_at DESC`

	var models []internshipModel
	if err := r.db.SelectContext(ctx, &models, query); err != nil {
		return nil, fmt.Errorf("failed to list internships: %w", err)
	}

	return toEntities(models), nil
}

// ListPage retrieves internships with pagination
func (r *PostgresInternshipRepository) ListPage(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[internship.Internship], error) {
	return r.Search(ctx, internship.SearchInternshipsRequest{Pagination: pagination})
}

// Search searches internships by query, location and sector
func (r *PostgresInternshipRepository) Search(ctx context.Context, req internship.SearchInternshipsRequest) (*kernel.Paginated[internship.Internship], error) {
	pagination := req.Pagination.Normalize()

	whereClause, args := buildSearchFilter(req)
	argCount := len(args) + 1

	// Count total
	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM internships %s", whereClause)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to count search results: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM internships
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, selectColumns, whereClause, argCount, argCount+1)

	args = append(args, pagination.PageSize, pagination.Offset())

	var models []internshipModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search internships: %w", err)
	}

	entities := toEntities(models)
	return &kernel.Paginated[internship.Internship]{
		Items: entities,
		Page:  kernel.NewPage(pagination, total),
		Empty: len(entities) == 0,
	}, nil
}

// Count returns the number of internships
func (r *PostgresInternshipRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM internships`); err != nil {
		return 0, fmt.Errorf("failed to count internships: %w", err)
	}
	return count, nil
}

// ============================================================================
// Helper Methods
// ============================================================================

// buildSearchFilter returns the WHERE clause and its positional args
func buildSearchFilter(req internship.SearchInternshipsRequest) (string, []any) {
	conditions := []string{}
	args := []any{}
	argCount := 1

	if q := strings.TrimSpace(req.Query); q != "" {
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR COALESCE(description, '') ILIKE $%d)", argCount, argCount))
		args = append(args, "%"+escapeLike(q)+"%")
		argCount++
	}

	if loc := strings.TrimSpace(req.Location); loc != "" {
		conditions = append(conditions, fmt.Sprintf("location ILIKE $%d", argCount))
		args = append(args, "%"+escapeLike(loc)+"%")
		argCount++
	}

	if sector := strings.TrimSpace(req.Sector); sector != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(sector) = LOWER($%d)", argCount))
		args = append(args, sector)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
