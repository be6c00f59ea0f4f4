package profilesrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/internmatch/pkg/errx"
	"github.com/Abraxas-365/internmatch/pkg/kernel"
	"github.com/Abraxas-365/internmatch/pkg/validatex"
	"github.com/Abraxas-365/internmatch/recruitment/profile"
)

// ProfileService provides business operations for candidate profiles
type ProfileService struct {
	repo profile.Repository
}

// NewProfileService creates a new instance of the profile service
func NewProfileService(repo profile.Repository) *ProfileService {
	return &ProfileService{
		repo: repo,
	}
}

// GetProfile retrieves a stored profile
func (s *ProfileService) GetProfile(ctx context.Context, id kernel.ProfileID) (*profile.Profile, error) {
	found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errx.IsCode(err, profile.CodeProfileNotFound) {
			return nil, profile.ErrProfileNotFound().WithDetail("profile_id", id.String())
		}
		return nil, errx.Wrap(err, "failed to get profile", errx.TypeInternal)
	}
	return found, nil
}

// UpsertProfile normalizes, validates and stores the profile under id
func (s *ProfileService) UpsertProfile(ctx context.Context, id kernel.ProfileID, req profile.UpsertProfileRequest) (*profile.Profile, error) {
	if id.IsEmpty() {
		id = kernel.DefaultProfileID
	}

	req = req.Normalize()
	if err := validatex.Struct(req); err != nil {
		return nil, err
	}

	p := &profile.Profile{
		ID:               id,
		Name:             req.Name,
		Email:            req.Email,
		Skills:           req.Skills,
		Interests:        req.Interests,
		DesiredLocation:  req.DesiredLocation,
		SectorPreference: req.SectorPreference,
		UpdatedAt:        time.Now(),
	}

	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, errx.Wrap(err, "failed to save profile", errx.TypeInternal)
	}

	return p, nil
}

// DeleteProfile removes a stored profile
func (s *ProfileService) DeleteProfile(ctx context.Context, id kernel.ProfileID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errx.IsCode(err, profile.CodeProfileNotFound) {
			return profile.ErrProfileNotFound().WithDetail("profile_id", id.String())
		}
		return errx.Wrap(err, "failed to delete profile", errx.TypeInternal)
	}
	return nil
}
