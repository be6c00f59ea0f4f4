package auth

import (
	"strings"

	"github.com/Abraxas-365/internmatch/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

const authContextKey = "auth_context"

// AuthContext is what a validated token grants to the request
type AuthContext struct {
	UserID kernel.UserID
	Scopes []string
}

// HasScope reports whether the request was granted scope
func (a *AuthContext) HasScope(scope string) bool {
	return HasScope(a.Scopes, scope)
}

// TokenMiddleware validates bearer tokens
type TokenMiddleware struct {
	tokens *TokenService
}

// NewAuthMiddleware creates the bearer token middleware
func NewAuthMiddleware(tokens *TokenService) *TokenMiddleware {
	return &TokenMiddleware{tokens: tokens}
}

// Authenticate requires a valid "Bearer <token>" header
func (m *TokenMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return ErrMissingToken()
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") {
			return ErrInvalidToken().WithDetail("reason", "format")
		}

		claims, err := m.tokens.ValidateAccessToken(strings.TrimSpace(token))
		if err != nil {
			return err
		}

		c.Locals(authContextKey, &AuthContext{
			UserID: claims.UserID(),
			Scopes: claims.Scopes,
		})

		return c.Next()
	}
}

// RequireScope rejects requests whose token lacks scope. Must run after Authenticate.
func (m *TokenMiddleware) RequireScope(scope string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authContext, ok := GetAuthContext(c)
		if !ok {
			return ErrMissingToken()
		}
		if !authContext.HasScope(scope) {
			return ErrInsufficientScope().WithDetail("required_scope", scope)
		}
		return c.Next()
	}
}

// GetAuthContext extracts the auth context set by Authenticate
func GetAuthContext(c *fiber.Ctx) (*AuthContext, bool) {
	authContext, ok := c.Locals(authContextKey).(*AuthContext)
	return authContext, ok
}
