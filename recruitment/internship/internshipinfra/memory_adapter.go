package internshipinfra

import (
	"context"
	"slices"
	"sync"

	"github.com/Abraxas-365/internmatch/pkg/kernel"
	"github.com/Abraxas-365/internmatch/recruitment/internship"
)

// MemoryInternshipRepository implements internship.Repository in process memory.
// Items are kept newest first.
type MemoryInternshipRepository struct {
	mu    sync.RWMutex
	items []internship.Internship
}

// NewMemoryInternshipRepository creates an empty in-memory repository
func NewMemoryInternshipRepository() *MemoryInternshipRepository {
	return &MemoryInternshipRepository{}
}

// Create prepends a new internship
func (r *MemoryInternshipRepository) Create(ctx context.Context, entity *internship.Internship) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(entity.ID) >= 0 {
		return internship.ErrInternshipAlreadyExists().WithDetail("id", entity.ID.String())
	}

	r.items = slices.Insert(r.items, 0, clone(*entity))
	return nil
}

// Update replaces an existing internship in place
func (r *MemoryInternshipRepository) Update(ctx context.Context, id kernel.InternshipID, entity *internship.Internship) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return internship.ErrInternshipNotFound()
	}

	r.items[i] = clone(*entity)
	return nil
}

// GetByID retrieves an internship by ID
func (r *MemoryInternshipRepository) GetByID(ctx context.Context, id kernel.InternshipID) (*internship.Internship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, internship.ErrInternshipNotFound()
	}

	found := clone(r.items[i])
	return &found, nil
}

// Delete removes an internship by ID
func (r *MemoryInternshipRepository) Delete(ctx context.Context, id kernel.InternshipID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return internship.ErrInternshipNotFound()
	}

	r.items = slices.Delete(r.items, i, i+1)
	return nil
}

// List returns a snapshot of the whole catalog
func (r *MemoryInternshipRepository) List(ctx context.Context) ([]internship.Internship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]internship.Internship, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, clone(item))
	}
	return out, nil
}

// ListPage retrieves one page of the catalog
func (r *MemoryInternshipRepository) ListPage(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[internship.Internship], error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return kernel.Paginate(all, pagination), nil
}

// Search filters the catalog then paginates the matches
func (r *MemoryInternshipRepository) Search(ctx context.Context, req internship.SearchInternshipsRequest) (*kernel.Paginated[internship.Internship], error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]internship.Internship, 0, len(all))
	for _, item := range all {
		if req.Matches(item) {
			matches = append(matches, item)
		}
	}
	return kernel.Paginate(matches, req.Pagination), nil
}

// Count returns the number of stored internships
func (r *MemoryInternshipRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

func (r *MemoryInternshipRepository) indexOf(id kernel.InternshipID) int {
	return slices.IndexFunc(r.items, func(i internship.Internship) bool {
		return i.ID == id
	})
}

func clone(i internship.Internship) internship.Internship {
	i.Requirements = slices.Clone(i.Requirements)
	if i.Requirements == nil {
		i.Requirements = []string{}
	}
	return i
}
