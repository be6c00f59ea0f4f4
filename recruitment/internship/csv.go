package internship

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// CSVColumns are the header columns an upload must carry, in any order and case
var CSVColumns = []string{"title", "description", "requirements", "location", "sector"}

// RowError explains why a CSV row was not imported. Row is the 1-based line in the file.
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportRow is a CSV row that passed the required-field check
type ImportRow struct {
	Line    int
	Request CreateInternshipRequest
}

// ImportBatch is the outcome of parsing a CSV upload
type ImportBatch struct {
	Rows    []ImportRow
	Skipped []RowError
}

// ParseCSV reads an internship CSV. Rows lacking title, location or sector are skipped
// and reported; a missing header column fails the whole file.
func ParseCSV(r io.Reader) (*ImportBatch, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrInvalidCSV().WithDetail("reason", "empty file")
		}
		return nil, ErrInvalidCSV().WithCause(err).WithDetail("reason", err.Error())
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	var missing []string
	for _, col := range CSVColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, ErrMissingCSVColumns().WithDetail("missing", missing)
	}

	batch := &ImportBatch{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				batch.Skipped = append(batch.Skipped, RowError{Row: parseErr.StartLine, Reason: parseErr.Err.Error()})
				continue
			}
			return nil, ErrInvalidCSV().WithCause(err).WithDetail("reason", err.Error())
		}
		row, _ := reader.FieldPos(0)
		if isBlank(record) {
			continue
		}

		cell := func(col string) string {
			i := index[col]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		req := CreateInternshipRequest{
			Title:        cell("title"),
			Description:  cell("description"),
			Location:     cell("location"),
			Sector:       cell("sector"),
			Requirements: SplitRequirements(cell("requirements")),
		}

		candidate := Internship{Title: req.Title, Location: req.Location, Sector: req.Sector}
		if err := candidate.Validate(); err != nil {
			batch.Skipped = append(batch.Skipped, RowError{Row: row, Reason: "missing title, location or sector"})
			continue
		}

		batch.Rows = append(batch.Rows, ImportRow{Line: row, Request: req})
	}

	return batch, nil
}

// SplitRequirements splits a requirements cell on "|", ";" or ","
func SplitRequirements(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == ';' || r == ','
	})
	return CleanTags(parts)
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
