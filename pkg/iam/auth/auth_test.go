package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Abraxas-365/internmatch/pkg/errx"
	"github.com/Abraxas-365/internmatch/pkg/httpx"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func TestHasScope(t *testing.T) {
	tests := []struct {
		name     string
		granted  []string
		required string
		want     bool
	}{
		{"exact", []string{ScopeInternshipsWrite}, ScopeInternshipsWrite, true},
		{"resource wildcard", []string{ScopeInternshipsAll}, ScopeInternshipsDelete, true},
		{"global wildcard", []string{ScopeAll}, ScopeProfilesWrite, true},
		{"other resource", []string{ScopeProfilesAll}, ScopeInternshipsWrite, false},
		{"none", nil, ScopeProfilesRead, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasScope(tt.granted, tt.required))
		})
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService(testSecret, "internmatch", time.Hour)

	token, expiresAt, err := svc.GenerateAccessToken("admin", AdminScopes)
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.UserID().String())
	assert.Equal(t, AdminScopes, claims.Scopes)
}

func TestTokenService_Rejects(t *testing.T) {
	svc := NewTokenService(testSecret, "internmatch", time.Hour)

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenService("other", "internmatch", time.Hour)
		token, _, err := other.GenerateAccessToken("admin", nil)
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token)
		assert.True(t, errx.IsCode(err, CodeInvalidToken))
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewTokenService(testSecret, "internmatch", -time.Minute)
		token, _, err := expired.GenerateAccessToken("admin", nil)
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token)
		assert.True(t, errx.IsCode(err, CodeInvalidToken))
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewTokenService(testSecret, "someone-else", time.Hour)
		token, _, err := other.GenerateAccessToken("admin", nil)
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token)
		assert.True(t, errx.IsCode(err, CodeInvalidToken))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := svc.ValidateAccessToken("")
		assert.True(t, errx.IsCode(err, CodeMissingToken))
	})
}

func TestAdminCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	creds, err := NewAdminCredentials("admin", string(hash), "")
	require.NoError(t, err)
	assert.True(t, creds.Verify("admin", "s3cret"))
	assert.False(t, creds.Verify("admin", "wrong"))
	assert.False(t, creds.Verify("root", "s3cret"))

	plain, err := NewAdminCredentials("admin", "", "hunter2")
	require.NoError(t, err)
	assert.True(t, plain.Verify("admin", "hunter2"))

	disabled, err := NewAdminCredentials("admin", "", "")
	require.NoError(t, err)
	assert.False(t, disabled.Verify("admin", ""))
}

func newTestApp(t *testing.T) (*fiber.App, *TokenService) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	creds, err := NewAdminCredentials("admin", string(hash), "")
	require.NoError(t, err)

	tokens := NewTokenService(testSecret, "internmatch", time.Hour)
	middleware := NewAuthMiddleware(tokens)

	app := fiber.New(fiber.Config{ErrorHandler: httpx.ErrorHandler})
	NewAuthHandlers(creds, tokens).RegisterRoutes(app, middleware)
	app.Delete("/protected", middleware.Authenticate(), middleware.RequireScope(ScopeInternshipsDelete), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusNoContent)
	})
	app.Get("/profiles-only", middleware.Authenticate(), middleware.RequireScope("reports:read"), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	return app, tokens
}

func login(t *testing.T, app *fiber.App, username, password string) *http.Response {
	t.Helper()
	body := `{"username":"` + username + `","password":"` + password + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestLoginFlow(t *testing.T) {
	app, _ := newTestApp(t)

	resp := login(t, app, "admin", "s3cret")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Bearer", out.TokenType)
	require.NotEmpty(t, out.AccessToken)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+out.AccessToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodDelete, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+out.AccessToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/profiles-only", nil)
	req.Header.Set("Authorization", "Bearer "+out.AccessToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestLogin_Failures(t *testing.T) {
	app, _ := newTestApp(t)

	resp := login(t, app, "admin", "wrong")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = login(t, app, "", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAuthenticate_MissingAndMalformed(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(http.MethodDelete, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
