package internshipapi_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Abraxas-365/internmatch/pkg/httpx"
	"github.com/Abraxas-365/internmatch/pkg/iam/auth"
	"github.com/Abraxas-365/internmatch/recruitment/internship"
	"github.com/Abraxas-365/internmatch/recruitment/internship/internshipapi"
	"github.com/Abraxas-365/internmatch/recruitment/internship/internshipinfra"
	"github.com/Abraxas-365/internmatch/recruitment/internship/internshipsrv"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	app   *fiber.App
	token string
}

func setup(t *testing.T) *testEnv {
	t.Helper()

	tokens := auth.NewTokenService("secret", "internmatch", time.Hour)
	token, _, err := tokens.GenerateAccessToken("admin", auth.AdminScopes)
	require.NoError(t, err)

	svc := internshipsrv.NewInternshipService(internshipinfra.NewMemoryInternshipRepository())
	app := fiber.New(fiber.Config{ErrorHandler: httpx.ErrorHandler})
	internshipapi.RegisterRoutes(app, internshipapi.NewHandlers(svc), auth.NewAuthMiddleware(tokens))

	return &testEnv{app: app, token: token}
}

func (e *testEnv) do(t *testing.T, method, path, contentType, body string, admin bool) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if admin {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}

	resp, err := e.app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

const createBody = `{"title":"Data Intern","description":"Pipelines","location":"Bangalore","sector":"Software","requirements":["python","sql"]}`

func TestCreateAndGet(t *testing.T) {
	env := setup(t)

	resp := env.do(t, http.MethodPost, "/api/internships", fiber.MIMEApplicationJSON, createBody, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[internship.Internship](t, resp)
	assert.Equal(t, []string{"python", "sql"}, created.Requirements)

	resp = env.do(t, http.MethodGet, "/api/internships/"+created.ID.String(), "", "", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[internship.Internship](t, resp)
	assert.Equal(t, "Data Intern", got.Title)

	resp = env.do(t, http.MethodGet, "/api/internships/unknown", "", "", false)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreate_RequiresAdmin(t *testing.T) {
	env := setup(t)

	resp := env.do(t, http.MethodPost, "/api/internships", fiber.MIMEApplicationJSON, createBody, false)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreate_Validation(t *testing.T) {
	env := setup(t)

	resp := env.do(t, http.MethodPost, "/api/internships", fiber.MIMEApplicationJSON, `{"title":"x"}`, true)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decode[map[string]any](t, resp)
	details, ok := body["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "required", details["location"])
	assert.Equal(t, "required", details["sector"])
}

func TestPatchAndDelete(t *testing.T) {
	env := setup(t)

	resp := env.do(t, http.MethodPost, "/api/internships", fiber.MIMEApplicationJSON, createBody, true)
	created := decode[internship.Internship](t, resp)
	path := "/api/internships/" + created.ID.String()

	resp = env.do(t, http.MethodPatch, path, fiber.MIMEApplicationJSON, `{"location":"Remote"}`, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Remote", decode[internship.Internship](t, resp).Location)

	resp = env.do(t, http.MethodDelete, path, "", "", true)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = env.do(t, http.MethodDelete, path, "", "", true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUploadListSearchStats(t *testing.T) {
	env := setup(t)

	csv := "title,description,requirements,location,sector\n" +
		"Data Intern,Pipelines,python|sql,Bangalore,Software\n" +
		"Sales Intern,,,Delhi,Marketing\n" +
		"No Sector,,,Pune,\n"

	resp := env.do(t, http.MethodPost, "/api/internships/upload", "text/csv", csv, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	result := decode[internship.ImportResponse](t, resp)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Skipped)

	resp = env.do(t, http.MethodGet, "/api/internships?page=1&page_size=1", "", "", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := decode[internship.PaginatedInternshipsResponse](t, resp)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 2, page.Page.Total)

	resp = env.do(t, http.MethodPost, "/api/internships/search", fiber.MIMEApplicationJSON, `{"sector":"marketing"}`, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	found := decode[internship.PaginatedInternshipsResponse](t, resp)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Sales Intern", found.Items[0].Title)

	resp = env.do(t, http.MethodGet, "/api/stats", "", "", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decode[internship.StatsResponse](t, resp)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.BySector["Software"])
}

func TestUpload_EmptyBody(t *testing.T) {
	env := setup(t)

	resp := env.do(t, http.MethodPost, "/api/internships/upload", "text/csv", "", true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
