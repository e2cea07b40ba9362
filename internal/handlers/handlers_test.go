// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handlers_test.go wires the catalog handlers over in-memory store fakes
// so the HTTP surface can be exercised without PostgreSQL or Valkey.
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"toolindex/internal/models"
	"toolindex/internal/service"
)

type memCategoryStore struct {
	items []models.Category
}

func (m *memCategoryStore) List(nameFilter string) ([]models.Category, error) {
	out := make([]models.Category, 0, len(m.items))
	for i := len(m.items) - 1; i >= 0; i-- {
		c := m.items[i]
		if nameFilter != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(nameFilter)) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *memCategoryStore) FindByID(id uuid.UUID) (*models.Category, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			c := m.items[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memCategoryStore) FindBySlug(slug string) (*models.Category, error) {
	for i := range m.items {
		if m.items[i].Slug == slug {
			c := m.items[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memCategoryStore) Create(c *models.Category) (*models.Category, error) {
	created := *c
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	m.items = append(m.items, created)
	return &created, nil
}

func (m *memCategoryStore) Update(c *models.Category) (*models.Category, error) {
	for i := range m.items {
		if m.items[i].ID == c.ID {
			updated := *c
			updated.CreatedAt = m.items[i].CreatedAt
			updated.UpdatedAt = time.Now()
			m.items[i] = updated
			return &updated, nil
		}
	}
	return nil, nil
}

func (m *memCategoryStore) Delete(id uuid.UUID) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type memToolStore struct {
	items      []models.Tool
	categories *memCategoryStore
}

func (m *memToolStore) match(t models.Tool, nameFilter string) bool {
	return nameFilter == "" || strings.Contains(strings.ToLower(t.Name), strings.ToLower(nameFilter))
}

func (m *memToolStore) List(nameFilter string) ([]models.Tool, error) {
	out := make([]models.Tool, 0, len(m.items))
	for i := len(m.items) - 1; i >= 0; i-- {
		t := m.items[i]
		if !m.match(t, nameFilter) {
			continue
		}
		t.Category, _ = m.categories.FindByID(t.CategoryID)
		out = append(out, t)
	}
	return out, nil
}

func (m *memToolStore) ListByCategory(categoryID uuid.UUID, nameFilter string) ([]models.Tool, error) {
	out := make([]models.Tool, 0)
	for i := len(m.items) - 1; i >= 0; i-- {
		t := m.items[i]
		if t.CategoryID != categoryID || !m.match(t, nameFilter) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *memToolStore) FindByID(id uuid.UUID) (*models.Tool, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			t := m.items[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (m *memToolStore) FindInCategoryBySlug(categoryID uuid.UUID, slug string) (*models.Tool, error) {
	for i := range m.items {
		if m.items[i].CategoryID == categoryID && m.items[i].Slug == slug {
			t := m.items[i]
			t.Category, _ = m.categories.FindByID(t.CategoryID)
			return &t, nil
		}
	}
	return nil, nil
}

func (m *memToolStore) SlugTaken(categoryID uuid.UUID, slug string, excludeID uuid.UUID) (bool, error) {
	for i := range m.items {
		t := m.items[i]
		if t.CategoryID == categoryID && t.Slug == slug && t.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memToolStore) CountByCategory(categoryID uuid.UUID) (int, error) {
	n := 0
	for i := range m.items {
		if m.items[i].CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (m *memToolStore) Create(t *models.Tool) (*models.Tool, error) {
	created := *t
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	m.items = append(m.items, created)
	return &created, nil
}

func (m *memToolStore) Update(t *models.Tool) (*models.Tool, error) {
	for i := range m.items {
		if m.items[i].ID == t.ID {
			updated := *t
			updated.CreatedAt = m.items[i].CreatedAt
			updated.UpdatedAt = time.Now()
			m.items[i] = updated
			return &updated, nil
		}
	}
	return nil, nil
}

func (m *memToolStore) Delete(id uuid.UUID) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// testEnv bundles the fake-backed services, handlers, and a router that
// exposes the catalog routes without auth middleware.
type testEnv struct {
	router     chi.Router
	categories *service.CategoryService
	tools      *service.ToolService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cats := &memCategoryStore{}
	tools := &memToolStore{categories: cats}
	categorySvc := service.NewCategoryService(cats, tools)
	toolSvc := service.NewToolService(tools, cats)

	ch := NewCategories(categorySvc)
	th := NewTools(toolSvc)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", ch.List)
			r.Post("/", ch.Create)
			r.Get("/slug/{categorySlug}", ch.GetBySlug)
			r.Get("/{id}", ch.Get)
			r.Put("/{id}", ch.Update)
			r.Delete("/{id}", ch.Delete)
			r.Get("/{id}/tools", th.ListByCategory)
		})
		r.Route("/tools", func(r chi.Router) {
			r.Get("/", th.List)
			r.Post("/", th.Create)
			r.Get("/{id}", th.Get)
			r.Put("/{id}", th.Update)
			r.Delete("/{id}", th.Delete)
		})
		r.Route("/dir", func(r chi.Router) {
			r.Get("/{categorySlug}", th.ListByCategorySlug)
			r.Get("/{categorySlug}/{toolSlug}", th.GetBySlugs)
		})
	})

	return &testEnv{router: r, categories: categorySvc, tools: toolSvc}
}

// do sends a request with an optional JSON body and returns the recorder.
func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// decode unmarshals a response body, failing the test on bad JSON.
func decode(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
}

// mustCreateCategory creates a category through the API and returns it.
func (e *testEnv) mustCreateCategory(t *testing.T, name, slug string) models.Category {
	t.Helper()

	rr := e.do(t, http.MethodPost, "/api/v1/categories", map[string]any{
		"name": name,
		"slug": slug,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create category: status %d body %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Data models.Category `json:"data"`
	}
	decode(t, rr, &resp)
	return resp.Data
}

// mustCreateTool creates a tool through the API and returns it.
func (e *testEnv) mustCreateTool(t *testing.T, name, slug string, categoryID uuid.UUID) models.Tool {
	t.Helper()

	rr := e.do(t, http.MethodPost, "/api/v1/tools", map[string]any{
		"name":     name,
		"slug":     slug,
		"category": categoryID,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create tool: status %d body %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Data models.Tool `json:"data"`
	}
	decode(t, rr, &resp)
	return resp.Data
}
