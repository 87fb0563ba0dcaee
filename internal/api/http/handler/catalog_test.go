package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floxenta/floxenta_backend/internal/catalog"
	"github.com/floxenta/floxenta_backend/internal/inquiry"
)

func newCatalogApp(t *testing.T) *fiber.App {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)

	h := NewCatalogHandler(cat, inquiry.NewGate(cat.ServiceTitles()))
	app := fiber.New()
	app.Get("/services", h.ListServices)
	app.Get("/services/:id", h.GetService)
	app.Get("/projects", h.ListProjects)
	app.Get("/projects/:slug", h.GetProject)
	app.Get("/contact/options", h.ContactOptions)
	return app
}

func getJSON(t *testing.T, app *fiber.App, target string, out any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
	return resp.StatusCode
}

func TestCatalog_Services(t *testing.T) {
	app := newCatalogApp(t)

	var list struct {
		Data []catalog.Service `json:"data"`
	}
	assert.Equal(t, http.StatusOK, getJSON(t, app, "/services", &list))
	assert.Len(t, list.Data, 5)

	var one struct {
		Data catalog.Service `json:"data"`
	}
	assert.Equal(t, http.StatusOK, getJSON(t, app, "/services/mobile-apps", &one))
	assert.Equal(t, "Mobile Apps", one.Data.Title)

	var missing map[string]string
	assert.Equal(t, http.StatusNotFound, getJSON(t, app, "/services/unknown", &missing))
	assert.Equal(t, "service not found", missing["error"])
}

func TestCatalog_ProjectsFiltered(t *testing.T) {
	app := newCatalogApp(t)

	var body struct {
		Data struct {
			Categories []string          `json:"categories"`
			Projects   []catalog.Project `json:"projects"`
		} `json:"data"`
	}
	assert.Equal(t, http.StatusOK, getJSON(t, app, "/projects?category=Portal&q=medi", &body))
	require.Len(t, body.Data.Projects, 1)
	assert.Equal(t, "med-portal", body.Data.Projects[0].Slug)
	assert.Equal(t, "All", body.Data.Categories[0])

	var missing map[string]string
	assert.Equal(t, http.StatusNotFound, getJSON(t, app, "/projects/nope", &missing))
}

func TestCatalog_ContactOptions(t *testing.T) {
	app := newCatalogApp(t)

	var body struct {
		Data struct {
			Services           []string `json:"services"`
			BudgetRanges       []string `json:"budgetRanges"`
			DefaultBudgetRange string   `json:"defaultBudgetRange"`
		} `json:"data"`
	}
	assert.Equal(t, http.StatusOK, getJSON(t, app, "/contact/options", &body))
	assert.Equal(t, "Other", body.Data.Services[len(body.Data.Services)-1])
	assert.Equal(t, inquiry.BudgetRanges, body.Data.BudgetRanges)
	assert.Equal(t, "$5k - $10k", body.Data.DefaultBudgetRange)
}
