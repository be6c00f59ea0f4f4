package recommendationapi

import (
	"github.com/Abraxas-365/internmatch/pkg/kernel"
	"github.com/Abraxas-365/internmatch/recruitment/recommendation"
	"github.com/Abraxas-365/internmatch/recruitment/recommendation/recommendationsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for recommendations
type Handlers struct {
	service *recommendationsrv.Service
}

// NewHandlers creates a new recommendation handlers instance
func NewHandlers(service *recommendationsrv.Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Recommend ranks the catalog for the profile in the request body
// POST /api/recommendations?limit=
func (h *Handlers) Recommend(c *fiber.Ctx) error {
	candidate, err := parseCandidate(c)
	if err != nil {
		return err
	}

	resp, err := h.service.Recommend(c.UserContext(), candidate, c.QueryInt("limit", 0))
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// RecommendForProfile ranks the catalog for a stored profile
// GET /api/recommendations/profiles/:id?limit=
func (h *Handlers) RecommendForProfile(c *fiber.Ctx) error {
	id := kernel.NewProfileID(c.Params("id"))
	if id.IsEmpty() {
		id = kernel.DefaultProfileID
	}

	resp, err := h.service.RecommendForProfile(c.UserContext(), id, c.QueryInt("limit", 0))
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ScoreInternship explains the score of one internship, even when it is zero
// POST /api/recommendations/score/:internshipId
func (h *Handlers) ScoreInternship(c *fiber.Ctx) error {
	candidate, err := parseCandidate(c)
	if err != nil {
		return err
	}

	resp, err := h.service.ScoreInternship(c.UserContext(), candidate, kernel.NewInternshipID(c.Params("internshipId")))
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// parseCandidate reads a CandidateProfile body. An empty body is an empty profile.
func parseCandidate(c *fiber.Ctx) (recommendation.CandidateProfile, error) {
	var candidate recommendation.CandidateProfile
	if len(c.Body()) == 0 {
		return candidate, nil
	}
	if err := c.BodyParser(&candidate); err != nil {
		return candidate, recommendation.ErrInvalidProfile().WithDetail("parse_error", err.Error())
	}
	return candidate, nil
}

// RegisterRoutes registers all recommendation routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/recommendations")

	api.Post("/", handlers.Recommend)
	api.Get("/profiles/:id", handlers.RecommendForProfile)
	api.Post("/score/:internshipId", handlers.ScoreInternship)
}
