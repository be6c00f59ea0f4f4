package recommendation

import (
	"net/http"

	"github.com/Abraxas-365/internmatch/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("RECOMMENDATION")

var CodeInvalidProfile = ErrRegistry.Register("INVALID_PROFILE", errx.TypeValidation, http.StatusBadRequest, "Request body must be a candidate profile object")

func ErrInvalidProfile() *errx.Error {
	return ErrRegistry.New(CodeInvalidProfile)
}
