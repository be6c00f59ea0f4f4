package recommendationapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Abraxas-365/internmatch/pkg/httpx"
	"github.com/Abraxas-365/internmatch/recruitment/internship"
	"github.com/Abraxas-365/internmatch/recruitment/internship/internshipinfra"
	"github.com/Abraxas-365/internmatch/recruitment/profile/profileinfra"
	"github.com/Abraxas-365/internmatch/recruitment/recommendation"
	"github.com/Abraxas-365/internmatch/recruitment/recommendation/recommendationapi"
	"github.com/Abraxas-365/internmatch/recruitment/recommendation/recommendationsrv"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *fiber.App {
	t.Helper()

	catalog := internshipinfra.NewMemoryInternshipRepository()
	require.NoError(t, catalog.Create(context.Background(), &internship.Internship{
		ID:           "data",
		Title:        "Data Analyst Intern",
		Description:  "Work with data pipelines",
		Location:     "Bangalore, India",
		Sector:       "Software",
		Requirements: []string{"python", "sql"},
	}))

	svc := recommendationsrv.NewService(catalog, profileinfra.NewMemoryProfileRepository())
	app := fiber.New(fiber.Config{ErrorHandler: httpx.ErrorHandler})
	recommendationapi.RegisterRoutes(app, recommendationapi.NewHandlers(svc))
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(http.MethodPost, path, reader)
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

const profileBody = `{"desired_location":"Bangalore","sector_preference":"Software","skills":["Python"],"interests":["data"]}`

func TestRecommend(t *testing.T) {
	app := setup(t)

	resp := post(t, app, "/api/recommendations", profileBody)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out recommendation.RecommendationsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Items, 1)
	assert.Equal(t, 8, out.Items[0].Score)
	assert.Equal(t, "Data Analyst Intern", out.Items[0].Title)
}

func TestRecommend_EmptyProfile(t *testing.T) {
	app := setup(t)

	resp := post(t, app, "/api/recommendations", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out recommendation.RecommendationsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Zero(t, out.Count)
}

func TestRecommend_RejectsNonObject(t *testing.T) {
	app := setup(t)

	resp := post(t, app, "/api/recommendations", `["not","a","profile"]`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRecommendForProfile_NotFound(t *testing.T) {
	app := setup(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/recommendations/profiles/me", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestScoreInternship(t *testing.T) {
	app := setup(t)

	resp := post(t, app, "/api/recommendations/score/data", `{"skills":["SQL"]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out recommendation.ScoreResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 1, out.Score)
	assert.Equal(t, recommendation.Breakdown{Skills: 1}, out.Breakdown)
}
