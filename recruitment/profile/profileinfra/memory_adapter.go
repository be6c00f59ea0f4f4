package profileinfra

import (
	"context"
	"slices"
	"sync"

	"github.com/Abraxas-365/internmatch/pkg/kernel"
	"github.com/Abraxas-365/internmatch/recruitment/profile"
)

// MemoryProfileRepository implements profile.Repository in process memory
type MemoryProfileRepository struct {
	mu       sync.RWMutex
	profiles map[kernel.ProfileID]profile.Profile
}

// NewMemoryProfileRepository creates an empty in-memory repository
func NewMemoryProfileRepository() *MemoryProfileRepository {
	return &MemoryProfileRepository{
		profiles: make(map[kernel.ProfileID]profile.Profile),
	}
}

// GetByID retrieves a profile by ID
func (r *MemoryProfileRepository) GetByID(ctx context.Context, id kernel.ProfileID) (*profile.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[id]
	if !ok {
		return nil, profile.ErrProfileNotFound()
	}

	found := clone(p)
	return &found, nil
}

// Upsert stores the profile under its ID
func (r *MemoryProfileRepository) Upsert(ctx context.Context, p *profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profiles[p.ID] = clone(*p)
	return nil
}

// Delete removes a profile
func (r *MemoryProfileRepository) Delete(ctx context.Context, id kernel.ProfileID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[id]; !ok {
		return profile.ErrProfileNotFound()
	}
	delete(r.profiles, id)
	return nil
}

func clone(p profile.Profile) profile.Profile {
	p.Skills = slices.Clone(p.Skills)
	p.Interests = slices.Clone(p.Interests)
	return p
}
