package internshipapi

import (
	"bytes"
	"io"
	"strings"

	"github.com/Abraxas-365/internmatch/pkg/httpx"
	"github.com/Abraxas-365/internmatch/pkg/iam/auth"
	"github.com/Abraxas-365/internmatch/pkg/kernel"
	"github.com/Abraxas-365/internmatch/pkg/validatex"
	"github.com/Abraxas-365/internmatch/recruitment/internship"
	"github.com/Abraxas-365/internmatch/recruitment/internship/internshipsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for internship operations
type Handlers struct {
	service *internshipsrv.InternshipService
}

// NewHandlers creates a new internship handlers instance
func NewHandlers(service *internshipsrv.InternshipService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreateInternship creates a new internship
// POST /api/internships
func (h *Handlers) CreateInternship(c *fiber.Ctx) error {
	var req internship.CreateInternshipRequest
	if err := c.BodyParser(&req); err != nil {
		return internship.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}
	if err := validatex.Struct(req); err != nil {
		return err
	}

	created, err := h.service.CreateInternship(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetInternship retrieves an internship by ID
// GET /api/internships/:id
func (h *Handlers) GetInternship(c *fiber.Ctx) error {
	id := kernel.NewInternshipID(c.Params("id"))
	if id.IsEmpty() {
		return internship.ErrInternshipNotFound().WithDetail("id", "missing or empty")
	}

	found, err := h.service.GetInternship(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(found)
}

// ListInternships retrieves the catalog with pagination
// GET /api/internships
func (h *Handlers) ListInternships(c *fiber.Ctx) error {
	page, err := h.service.ListInternships(c.UserContext(), httpx.ParsePagination(c))
	if err != nil {
		return err
	}

	return c.JSON(page)
}

// SearchInternships filters the catalog
// POST /api/internships/search
func (h *Handlers) SearchInternships(c *fiber.Ctx) error {
	var req internship.SearchInternshipsRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return internship.ErrInvalidRequest().WithDetail("parse_error", err.Error())
		}
	}
	if req.Pagination.Page == 0 && req.Pagination.PageSize == 0 {
		req.Pagination = httpx.ParsePagination(c)
	}

	page, err := h.service.SearchInternships(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.JSON(page)
}

// UpdateInternship patches an existing internship
// PATCH /api/internships/:id
func (h *Handlers) UpdateInternship(c *fiber.Ctx) error {
	id := kernel.NewInternshipID(c.Params("id"))
	if id.IsEmpty() {
		return internship.ErrInternshipNotFound().WithDetail("id", "missing or empty")
	}

	var req internship.UpdateInternshipRequest
	if err := c.BodyParser(&req); err != nil {
		return internship.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.UpdateInternship(c.UserContext(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// DeleteInternship deletes an internship
// DELETE /api/internships/:id
func (h *Handlers) DeleteInternship(c *fiber.Ctx) error {
	id := kernel.NewInternshipID(c.Params("id"))
	if id.IsEmpty() {
		return internship.ErrInternshipNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteInternship(c.UserContext(), id); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// UploadCSV imports internships from a CSV body or a multipart "file" field
// POST /api/internships/upload
func (h *Handlers) UploadCSV(c *fiber.Ctx) error {
	body, err := csvBody(c)
	if err != nil {
		return err
	}

	result, err := h.service.ImportCSV(c.UserContext(), body)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

// GetStats returns catalog counters
// GET /api/stats
func (h *Handlers) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(stats)
}

// ============================================================================
// Helper Functions
// ============================================================================

func csvBody(c *fiber.Ctx) (io.Reader, error) {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		header, err := c.FormFile("file")
		if err != nil {
			return nil, internship.ErrInvalidCSV().WithDetail("reason", "missing multipart field \"file\"")
		}
		file, err := header.Open()
		if err != nil {
			return nil, internship.ErrInvalidCSV().WithCause(err)
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return nil, internship.ErrInvalidCSV().WithCause(err)
		}
		return bytes.NewReader(data), nil
	}

	if len(c.Body()) == 0 {
		return nil, internship.ErrInvalidCSV().WithDetail("reason", "empty body")
	}
	// Fiber reuses the request buffer once the handler returns
	return bytes.NewReader(bytes.Clone(c.Body())), nil
}

// RegisterRoutes registers all internship routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	app.Get("/api/stats", handlers.GetStats)

	api := app.Group("/api/internships")

	// Public read routes
	api.Get("/", handlers.ListInternships)
	api.Post("/search", handlers.SearchInternships)
	api.Get("/:id", handlers.GetInternship)

	// Admin routes
	api.Post("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeInternshipsWrite),
		handlers.CreateInternship,
	)

	api.Post("/upload",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeInternshipsImport),
		handlers.UploadCSV,
	)

	api.Patch("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeInternshipsWrite),
		handlers.UpdateInternship,
	)

	api.Delete("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeInternshipsDelete),
		handlers.DeleteInternship,
	)
}
