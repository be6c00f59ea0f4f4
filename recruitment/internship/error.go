package internship

import (
	"net/http"

	"github.com/Abraxas-365/internmatch/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("INTERNSHIP")

// Error codes
var (
	CodeInternshipNotFound      = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Internship not found")
	CodeInternshipAlreadyExists = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "Internship already exists")
	CodeMissingFields           = ErrRegistry.Register("MISSING_FIELDS", errx.TypeValidation, http.StatusBadRequest, "Title, location and sector are required")
	CodeInvalidRequest          = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request body")
	CodeInvalidCSV              = ErrRegistry.Register("INVALID_CSV", errx.TypeValidation, http.StatusBadRequest, "CSV file could not be parsed")
	CodeMissingCSVColumns       = ErrRegistry.Register("MISSING_CSV_COLUMNS", errx.TypeValidation, http.StatusBadRequest, "CSV header is missing required columns")
)

// Helper functions
func ErrInternshipNotFound() *errx.Error {
	return ErrRegistry.New(CodeInternshipNotFound)
}

func ErrInternshipAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeInternshipAlreadyExists)
}

func ErrMissingFields() *errx.Error {
	return ErrRegistry.New(CodeMissingFields)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrInvalidCSV() *errx.Error {
	return ErrRegistry.New(CodeInvalidCSV)
}

func ErrMissingCSVColumns() *errx.Error {
	return ErrRegistry.New(CodeMissingCSVColumns)
}
