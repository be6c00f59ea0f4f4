package profileapi

import (
	"github.com/Abraxas-365/internmatch/pkg/iam/auth"
	"github.com/Abraxas-365/internmatch/pkg/kernel"
	"github.com/Abraxas-365/internmatch/recruitment/profile"
	"github.com/Abraxas-365/internmatch/recruitment/profile/profilesrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for profile operations
type Handlers struct {
	service *profilesrv.ProfileService
}

// NewHandlers creates a new profile handlers instance
func NewHandlers(service *profilesrv.ProfileService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// GetProfile returns a stored profile
// GET /api/profile
// GET /api/profiles/:id
func (h *Handlers) GetProfile(c *fiber.Ctx) error {
	found, err := h.service.GetProfile(c.UserContext(), profileID(c))
	if err != nil {
		return err
	}

	return c.JSON(found)
}

// UpsertProfile creates or replaces a profile
// PUT /api/profile
// PUT /api/profiles/:id
func (h *Handlers) UpsertProfile(c *fiber.Ctx) error {
	var req profile.UpsertProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return profile.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	saved, err := h.service.UpsertProfile(c.UserContext(), profileID(c), req)
	if err != nil {
		return err
	}

	return c.JSON(saved)
}

// DeleteProfile removes a profile
// DELETE /api/profiles/:id
func (h *Handlers) DeleteProfile(c *fiber.Ctx) error {
	if err := h.service.DeleteProfile(c.UserContext(), profileID(c)); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// profileID reads :id, falling back to the default single-user profile
func profileID(c *fiber.Ctx) kernel.ProfileID {
	if id := c.Params("id"); id != "" {
		return kernel.NewProfileID(id)
	}
	return kernel.DefaultProfileID
}

// RegisterRoutes registers all profile routes.
// /api/profile is the anonymous single-user profile. Named profiles under /api/profiles
// belong to other users and need a token for every method.
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	app.Get("/api/profile", handlers.GetProfile)
	app.Put("/api/profile", handlers.UpsertProfile)

	api := app.Group("/api/profiles", authMiddleware.Authenticate())

	api.Get("/:id",
		authMiddleware.RequireScope(auth.ScopeProfilesRead),
		handlers.GetProfile,
	)

	api.Put("/:id",
		authMiddleware.RequireScope(auth.ScopeProfilesWrite),
		handlers.UpsertProfile,
	)

	api.Delete("/:id",
		authMiddleware.RequireScope(auth.ScopeProfilesWrite),
		handlers.DeleteProfile,
	)
}
