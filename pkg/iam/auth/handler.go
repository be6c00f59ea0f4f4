package auth

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/Abraxas-365/internmatch/pkg/kernel"
	"github.com/Abraxas-365/internmatch/pkg/logx"
	"github.com/Abraxas-365/internmatch/pkg/validatex"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// AdminCredentials is the single configured administrator account
type AdminCredentials struct {
	Username     string
	PasswordHash []byte
}

// NewAdminCredentials builds credentials from a bcrypt hash, or hashes a plain password when no hash is configured
func NewAdminCredentials(username, passwordHash, plainPassword string) (AdminCredentials, error) {
	creds := AdminCredentials{Username: username}

	switch {
	case passwordHash != "":
		creds.PasswordHash = []byte(passwordHash)
	case plainPassword != "":
		hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
		if err != nil {
			return creds, err
		}
		creds.PasswordHash = hash
	default:
		logx.Warn("No admin password configured, admin login is disabled")
	}

	return creds, nil
}

// Verify checks a login attempt
func (a AdminCredentials) Verify(username, password string) bool {
	if len(a.PasswordHash) == 0 {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.Username)) == 1
	passOK := bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(password)) == nil
	return userOK && passOK
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	Scopes      []string  `json:"scopes"`
}

// AuthHandlers serves the admin login endpoints
type AuthHandlers struct {
	admin  AdminCredentials
	tokens *TokenService
}

func NewAuthHandlers(admin AdminCredentials, tokens *TokenService) *AuthHandlers {
	return &AuthHandlers{
		admin:  admin,
		tokens: tokens,
	}
}

// Login exchanges admin credentials for an access token
// POST /api/auth/login
func (h *AuthHandlers) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}
	if err := validatex.Struct(req); err != nil {
		return err
	}

	if !h.admin.Verify(strings.TrimSpace(req.Username), req.Password) {
		logx.Warnf("Failed admin login for %q from %s", req.Username, c.IP())
		return ErrInvalidCredentials()
	}

	token, expiresAt, err := h.tokens.GenerateAccessToken(kernel.NewUserID(h.admin.Username), AdminScopes)
	if err != nil {
		return err
	}

	return c.JSON(LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Scopes:      AdminScopes,
	})
}

// Me returns the caller's auth context
// GET /api/auth/me
func (h *AuthHandlers) Me(c *fiber.Ctx) error {
	authContext, ok := GetAuthContext(c)
	if !ok {
		return ErrMissingToken()
	}

	return c.JSON(fiber.Map{
		"user_id": authContext.UserID,
		"scopes":  authContext.Scopes,
	})
}

// RegisterRoutes registers /api/auth routes
func (h *AuthHandlers) RegisterRoutes(app *fiber.App, middleware *TokenMiddleware) {
	api := app.Group("/api/auth")

	api.Post("/login", h.Login)
	api.Get("/me", middleware.Authenticate(), h.Me)
}
