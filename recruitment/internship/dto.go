package internship

import (
	"strings"

	"github.com/Abraxas-365/internmatch/pkg/kernel"
)

// CreateInternshipRequest - DTO for creating a new internship
type CreateInternshipRequest struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description,omitempty"`
	Location     string   `json:"location" validate:"required"`
	Sector       string   `json:"sector" validate:"required"`
	Requirements []string `json:"requirements,omitempty"`
}

// UpdateInternshipRequest - DTO for patching an existing internship
type UpdateInternshipRequest struct {
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Location     *string   `json:"location,omitempty"`
	Sector       *string   `json:"sector,omitempty"`
	Requirements *[]string `json:"requirements,omitempty"`
}

// SearchInternshipsRequest - DTO for searching the catalog
type SearchInternshipsRequest struct {
	Query      string                   `json:"query,omitempty"`
	Location   string                   `json:"location,omitempty"`
	Sector     string                   `json:"sector,omitempty"`
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// Normalize trims the text filters
func (r SearchInternshipsRequest) Normalize() SearchInternshipsRequest {
	r.Query = strings.TrimSpace(r.Query)
	r.Location = strings.TrimSpace(r.Location)
	r.Sector = strings.TrimSpace(r.Sector)
	return r
}

// Matches reports whether i satisfies the search filters
func (r SearchInternshipsRequest) Matches(i Internship) bool {
	r = r.Normalize()
	if r.Query != "" && !containsFold(i.Title, r.Query) && !containsFold(i.Description, r.Query) {
		return false
	}
	if r.Location != "" && !containsFold(i.Location, r.Location) {
		return false
	}
	if r.Sector != "" && !equalFold(i.Sector, r.Sector) {
		return false
	}
	return true
}

// Response type alias for paginated internships
type PaginatedInternshipsResponse = kernel.Paginated[Internship]

// StatsResponse - catalog counters
type StatsResponse struct {
	Total      int            `json:"total"`
	BySector   map[string]int `json:"by_sector"`
	ByLocation map[string]int `json:"by_location"`
}

// ImportResponse - result of a CSV import
type ImportResponse struct {
	Created  int        `json:"created"`
	Skipped  int        `json:"skipped"`
	Failures []RowError `json:"failures,omitempty"`
}
