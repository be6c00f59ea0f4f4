package profile

import (
	"context"

	"github.com/Abraxas-365/internmatch/pkg/kernel"
)

type Repository interface {
	// GetByID retrieves a profile by ID
	GetByID(ctx context.Context, id kernel.ProfileID) (*Profile, error)

	// Upsert creates the profile or replaces the stored one with the same ID
	Upsert(ctx context.Context, profile *Profile) error

	// Delete deletes a profile by ID
	Delete(ctx context.Context, id kernel.ProfileID) error
}
