// Package validatex runs struct-tag validation and converts failures into errx validation errors.
package validatex

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Abraxas-365/internmatch/pkg/errx"
	"github.com/go-playground/validator/v10"
)

var ErrRegistry = errx.NewRegistry("VALIDATION")

var CodeInvalidRequest = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Request validation failed")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates v and returns nil or an *errx.Error listing each failed field and rule
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errx.Wrap(err, "invalid validation target", errx.TypeInternal)
	}

	e := ErrRegistry.New(CodeInvalidRequest)
	for _, fe := range fieldErrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		e.WithDetail(strings.ToLower(fe.Field()), rule)
	}
	return e
}
