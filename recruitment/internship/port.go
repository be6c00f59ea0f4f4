package internship

import (
	"context"

	"github.com/Abraxas-365/internmatch/pkg/kernel"
)

// Catalog is the read side consumed by the recommendation engine
type Catalog interface {
	// List returns every internship, newest first
	List(ctx context.Context) ([]Internship, error)

	// GetByID retrieves an internship by ID
	GetByID(ctx context.Context, id kernel.InternshipID) (*Internship, error)
}

type Repository interface {
	Catalog

	// Create stores a new internship
	Create(ctx context.Context, internship *Internship) error

	// Update replaces an existing internship
	Update(ctx context.Context, id kernel.InternshipID, internship *Internship) error

	// Delete deletes an internship by ID
	Delete(ctx context.Context, id kernel.InternshipID) error

	// ListPage retrieves internships with pagination, newest first
	ListPage(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Internship], error)

	// Search filters internships by query, location and sector
	Search(ctx context.Context, req SearchInternshipsRequest) (*kernel.Paginated[Internship], error)

	// Count returns the catalog size
	Count(ctx context.Context) (int, error)
}
