package errx

import "fmt"

// ErrorCode is a registered, domain-prefixed error definition
type ErrorCode struct {
	Code       string
	Type       Type
	HTTPStatus int
	Message    string
}

// Registry groups the error codes of one domain under a common prefix
type Registry struct {
	prefix string
	codes  map[string]ErrorCode
}

// NewRegistry creates a registry whose codes are prefixed with prefix
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		codes:  make(map[string]ErrorCode),
	}
}

// Register defines a new code. Registering the same code twice panics.
func (r *Registry) Register(code string, t Type, httpStatus int, message string) ErrorCode {
	full := fmt.Sprintf("%s_%s", r.prefix, code)
	if _, exists := r.codes[full]; exists {
		panic("errx: duplicate error code " + full)
	}

	ec := ErrorCode{
		Code:       full,
		Type:       t,
		HTTPStatus: httpStatus,
		Message:    message,
	}
	r.codes[full] = ec
	return ec
}

// New instantiates a fresh error for a registered code
func (r *Registry) New(code ErrorCode) *Error {
	return &Error{
		Code:       code.Code,
		Type:       code.Type,
		Message:    code.Message,
		HTTPStatus: code.HTTPStatus,
	}
}
