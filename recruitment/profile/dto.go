package profile

import "strings"

// UpsertProfileRequest - DTO for creating or replacing a profile
type UpsertProfileRequest struct {
	Name             string   `json:"name" validate:"required"`
	Email            string   `json:"email" validate:"required,email"`
	Skills           []string `json:"skills,omitempty"`
	Interests        []string `json:"interests,omitempty"`
	DesiredLocation  string   `json:"desired_location,omitempty"`
	SectorPreference string   `json:"sector_preference,omitempty"`
}

// Normalize trims every value and drops empty list entries
func (r UpsertProfileRequest) Normalize() UpsertProfileRequest {
	return UpsertProfileRequest{
		Name:             strings.TrimSpace(r.Name),
		Email:            strings.TrimSpace(r.Email),
		Skills:           cleanList(r.Skills),
		Interests:        cleanList(r.Interests),
		DesiredLocation:  strings.TrimSpace(r.DesiredLocation),
		SectorPreference: strings.TrimSpace(r.SectorPreference),
	}
}
