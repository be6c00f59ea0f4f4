package profile

import (
	"strings"
	"time"

	"github.com/Abraxas-365/internmatch/pkg/kernel"
	"github.com/Abraxas-365/internmatch/recruitment/recommendation"
)

// Profile is a candidate's stored preferences
type Profile struct {
	ID               kernel.ProfileID `db:"id" json:"id"`
	Name             string           `db:"name" json:"name"`
	Email            string           `db:"email" json:"email"`
	Skills           []string         `db:"skills" json:"skills"`
	Interests        []string         `db:"interests" json:"interests"`
	DesiredLocation  string           `db:"desired_location" json:"desired_location,omitempty"`
	SectorPreference string           `db:"sector_preference" json:"sector_preference,omitempty"`
	UpdatedAt        time.Time        `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// Candidate projects the profile onto the inputs the ranking engine scores
func (p *Profile) Candidate() recommendation.CandidateProfile {
	return recommendation.CandidateProfile{
		DesiredLocation:  p.DesiredLocation,
		SectorPreference: p.SectorPreference,
		Skills:           p.Skills,
		Interests:        p.Interests,
	}
}

// cleanList trims entries and drops empty ones
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
