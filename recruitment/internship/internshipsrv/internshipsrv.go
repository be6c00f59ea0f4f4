package internshipsrv

import (
	"context"
	"io"
	"time"

	"github.com/Abraxas-365/internmatch/pkg/errx"
	"github.com/Abraxas-365/internmatch/pkg/kernel"
	"github.com/Abraxas-365/internmatch/pkg/logx"
	"github.com/Abraxas-365/internmatch/recruitment/internship"
	"github.com/google/uuid"
)

// InternshipService provides business operations for the internship catalog
type InternshipService struct {
	repo internship.Repository
}

// NewInternshipService creates a new instance of the internship service
func NewInternshipService(repo internship.Repository) *InternshipService {
	return &InternshipService{
		repo: repo,
	}
}

// CreateInternship validates and stores a new internship
func (s *InternshipService) CreateInternship(ctx context.Context, req internship.CreateInternshipRequest) (*internship.Internship, error) {
	now := time.Now()
	newInternship := &internship.Internship{
		ID:           kernel.NewInternshipID(uuid.NewString()),
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Sector:       req.Sector,
		Requirements: req.Requirements,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	newInternship.Normalize()
	if err := newInternship.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, newInternship); err != nil {
		return nil, errx.Wrap(err, "failed to create internship", errx.TypeInternal)
	}

	logx.Debugf("Created internship %s (%s)", newInternship.ID, newInternship.Title)
	return newInternship, nil
}

// GetInternship retrieves an internship by ID
func (s *InternshipService) GetInternship(ctx context.Context, id kernel.InternshipID) (*internship.Internship, error) {
	found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errx.IsCode(err, internship.CodeInternshipNotFound) {
			return nil, internship.ErrInternshipNotFound().WithDetail("internship_id", id.String())
		}
		return nil, errx.Wrap(err, "failed to get internship", errx.TypeInternal)
	}
	return found, nil
}

// ListInternships retrieves the catalog page by page, newest first
func (s *InternshipService) ListInternships(ctx context.Context, pagination kernel.PaginationOptions) (*internship.PaginatedInternshipsResponse, error) {
	page, err := s.repo.ListPage(ctx, pagination.Normalize())
	if err != nil {
		return nil, errx.Wrap(err, "failed to list internships", errx.TypeInternal)
	}
	return page, nil
}

// SearchInternships filters the catalog
func (s *InternshipService) SearchInternships(ctx context.Context, req internship.SearchInternshipsRequest) (*internship.PaginatedInternshipsResponse, error) {
	req = req.Normalize()
	req.Pagination = req.Pagination.Normalize()

	page, err := s.repo.Search(ctx, req)
	if err != nil {
		return nil, errx.Wrap(err, "failed to search internships", errx.TypeInternal)
	}
	return page, nil
}

// UpdateInternship applies a partial update
func (s *InternshipService) UpdateInternship(ctx context.Context, id kernel.InternshipID, req internship.UpdateInternshipRequest) (*internship.Internship, error) {
	existing, err := s.GetInternship(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.ApplyUpdate(req)
	existing.Normalize()
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, existing); err != nil {
		return nil, errx.Wrap(err, "failed to update internship", errx.TypeInternal)
	}

	return existing, nil
}

// DeleteInternship removes an internship
func (s *InternshipService) DeleteInternship(ctx context.Context, id kernel.InternshipID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errx.IsCode(err, internship.CodeInternshipNotFound) {
			return internship.ErrInternshipNotFound().WithDetail("internship_id", id.String())
		}
		return errx.Wrap(err, "failed to delete internship", errx.TypeInternal)
	}
	return nil
}

// ImportCSV creates one internship per valid CSV row. Invalid rows are skipped and reported.
func (s *InternshipService) ImportCSV(ctx context.Context, r io.Reader) (*internship.ImportResponse, error) {
	batch, err := internship.ParseCSV(r)
	if err != nil {
		return nil, err
	}

	result := &internship.ImportResponse{
		Failures: batch.Skipped,
	}

	for _, row := range batch.Rows {
		if err := ctx.Err(); err != nil {
			return result, errx.Wrap(err, "import cancelled", errx.TypeInternal)
		}

		if _, err := s.CreateInternship(ctx, row.Request); err != nil {
			if errx.IsType(err, errx.TypeInternal) {
				return result, err
			}
			result.Failures = append(result.Failures, internship.RowError{Row: row.Line, Reason: err.Error()})
			continue
		}
		result.Created++
	}

	result.Skipped = len(result.Failures)
	logx.With("created", result.Created, "skipped", result.Skipped).Info("CSV import finished")

	return result, nil
}

// GetStats counts the catalog by sector and location
func (s *InternshipService) GetStats(ctx context.Context) (*internship.StatsResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load internships for stats", errx.TypeInternal)
	}

	stats := &internship.StatsResponse{
		Total:      len(items),
		BySector:   make(map[string]int),
		ByLocation: make(map[string]int),
	}
	for _, i := range items {
		stats.BySector[i.Sector]++
		stats.ByLocation[i.Location]++
	}

	return stats, nil
}
