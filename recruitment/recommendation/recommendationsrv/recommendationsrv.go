package recommendationsrv

import (
	"context"

	"github.com/Abraxas-365/internmatch/pkg/errx"
	"github.com/Abraxas-365/internmatch/pkg/kernel"
	"github.com/Abraxas-365/internmatch/pkg/logx"
	"github.com/Abraxas-365/internmatch/recruitment/internship"
	"github.com/Abraxas-365/internmatch/recruitment/profile"
	"github.com/Abraxas-365/internmatch/recruitment/recommendation"
)

// ProfileSource supplies stored candidate profiles
type ProfileSource interface {
	GetByID(ctx context.Context, id kernel.ProfileID) (*profile.Profile, error)
}

// Service ranks the catalog for candidate profiles
type Service struct {
	catalog  internship.Catalog
	profiles ProfileSource
}

// NewService creates a new recommendation service
func NewService(catalog internship.Catalog, profiles ProfileSource) *Service {
	return &Service{
		catalog:  catalog,
		profiles: profiles,
	}
}

// Recommend ranks the whole catalog against candidate and keeps the best limit entries
func (s *Service) Recommend(ctx context.Context, candidate recommendation.CandidateProfile, limit int) (*recommendation.RecommendationsResponse, error) {
	items, err := s.catalog.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load internship catalog", errx.TypeInternal)
	}

	ranked := recommendation.Rank(candidate, items)
	logx.Debugf("Ranked %d internships, %d matched", len(items), len(ranked))

	return recommendation.NewRecommendationsResponse(ranked, limit), nil
}

// RecommendForProfile ranks the catalog for a stored profile
func (s *Service) RecommendForProfile(ctx context.Context, id kernel.ProfileID, limit int) (*recommendation.RecommendationsResponse, error) {
	stored, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		if errx.IsCode(err, profile.CodeProfileNotFound) {
			return nil, profile.ErrProfileNotFound().WithDetail("profile_id", id.String())
		}
		return nil, errx.Wrap(err, "failed to load profile", errx.TypeInternal)
	}

	return s.Recommend(ctx, stored.Candidate(), limit)
}

// ScoreInternship scores one internship without the positive-score filter
func (s *Service) ScoreInternship(ctx context.Context, candidate recommendation.CandidateProfile, id kernel.InternshipID) (*recommendation.ScoreResponse, error) {
	item, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		if errx.IsCode(err, internship.CodeInternshipNotFound) {
			return nil, internship.ErrInternshipNotFound().WithDetail("internship_id", id.String())
		}
		return nil, errx.Wrap(err, "failed to load internship", errx.TypeInternal)
	}

	if item.Requirements == nil {
		item.Requirements = []string{}
	}

	breakdown := recommendation.Explain(candidate, *item)
	return &recommendation.ScoreResponse{
		Internship: *item,
		Score:      breakdown.Total(),
		Breakdown:  breakdown,
	}, nil
}
