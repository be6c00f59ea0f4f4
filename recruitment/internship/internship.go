package internship

import (
	"strings"
	"time"

	"github.com/Abraxas-365/internmatch/pkg/kernel"
)

// Internship is a single posting in the catalog
type Internship struct {
	ID           kernel.InternshipID `db:"id" json:"id"`
	Title        string              `db:"title" json:"title"`
	Description  string              `db:"description" json:"description"`
	Location     string              `db:"location" json:"location"`
	Sector       string              `db:"sector" json:"sector"`
	Requirements []string            `db:"requirements" json:"requirements"`
	CreatedAt    time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time           `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// Normalize trims every field and drops empty requirement tags
func (i *Internship) Normalize() {
	i.Title = strings.TrimSpace(i.Title)
	i.Description = strings.TrimSpace(i.Description)
	i.Location = strings.TrimSpace(i.Location)
	i.Sector = strings.TrimSpace(i.Sector)
	i.Requirements = CleanTags(i.Requirements)
}

// Validate checks the fields every catalog entry must carry
func (i *Internship) Validate() error {
	missing := make([]string, 0, 3)
	if i.Title == "" {
		missing = append(missing, "title")
	}
	if i.Location == "" {
		missing = append(missing, "location")
	}
	if i.Sector == "" {
		missing = append(missing, "sector")
	}
	if len(missing) > 0 {
		return ErrMissingFields().WithDetail("fields", missing)
	}
	return nil
}

// ApplyUpdate patches the fields set in req
func (i *Internship) ApplyUpdate(req UpdateInternshipRequest) {
	if req.Title != nil {
		i.Title = *req.Title
	}
	if req.Description != nil {
		i.Description = *req.Description
	}
	if req.Location != nil {
		i.Location = *req.Location
	}
	if req.Sector != nil {
		i.Sector = *req.Sector
	}
	if req.Requirements != nil {
		i.Requirements = *req.Requirements
	}
	i.UpdatedAt = time.Now()
}

// CleanTags trims tags and drops empty ones. Never returns nil.
func CleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
