// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// service_test.go provides in-memory fakes for the store interfaces so the
// services can be exercised without a database. The fakes honor the same
// contracts as the SQL stores: nil for not-found, newest-first ordering,
// case-insensitive name filtering.
package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"toolindex/internal/models"
)

// fakeCategoryStore keeps categories in insertion order; List returns them
// newest first like the SQL store does.
type fakeCategoryStore struct {
	items []models.Category
}

func (f *fakeCategoryStore) List(nameFilter string) ([]models.Category, error) {
	out := make([]models.Category, 0, len(f.items))
	for i := len(f.items) - 1; i >= 0; i-- {
		c := f.items[i]
		if nameFilter != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(nameFilter)) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCategoryStore) FindByID(id uuid.UUID) (*models.Category, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			c := f.items[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryStore) FindBySlug(slug string) (*models.Category, error) {
	for i := range f.items {
		if f.items[i].Slug == slug {
			c := f.items[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryStore) Create(c *models.Category) (*models.Category, error) {
	created := *c
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.items = append(f.items, created)
	return &created, nil
}

func (f *fakeCategoryStore) Update(c *models.Category) (*models.Category, error) {
	for i := range f.items {
		if f.items[i].ID == c.ID {
			updated := *c
			updated.CreatedAt = f.items[i].CreatedAt
			updated.UpdatedAt = time.Now()
			f.items[i] = updated
			return &updated, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryStore) Delete(id uuid.UUID) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeToolStore mirrors the tool store contract, joining categories from a
// linked fakeCategoryStore for List.
type fakeToolStore struct {
	items      []models.Tool
	categories *fakeCategoryStore
}

func (f *fakeToolStore) matchName(t models.Tool, nameFilter string) bool {
	return nameFilter == "" || strings.Contains(strings.ToLower(t.Name), strings.ToLower(nameFilter))
}

func (f *fakeToolStore) List(nameFilter string) ([]models.Tool, error) {
	out := make([]models.Tool, 0, len(f.items))
	for i := len(f.items) - 1; i >= 0; i-- {
		t := f.items[i]
		if !f.matchName(t, nameFilter) {
			continue
		}
		if f.categories != nil {
			t.Category, _ = f.categories.FindByID(t.CategoryID)
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeToolStore) ListByCategory(categoryID uuid.UUID, nameFilter string) ([]models.Tool, error) {
	out := make([]models.Tool, 0)
	for i := len(f.items) - 1; i >= 0; i-- {
		t := f.items[i]
		if t.CategoryID != categoryID || !f.matchName(t, nameFilter) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeToolStore) FindByID(id uuid.UUID) (*models.Tool, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			t := f.items[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (f *fakeToolStore) FindInCategoryBySlug(categoryID uuid.UUID, slug string) (*models.Tool, error) {
	for i := range f.items {
		if f.items[i].CategoryID == categoryID && f.items[i].Slug == slug {
			t := f.items[i]
			if f.categories != nil {
				t.Category, _ = f.categories.FindByID(t.CategoryID)
			}
			return &t, nil
		}
	}
	return nil, nil
}

func (f *fakeToolStore) SlugTaken(categoryID uuid.UUID, slug string, excludeID uuid.UUID) (bool, error) {
	for i := range f.items {
		t := f.items[i]
		if t.CategoryID == categoryID && t.Slug == slug && t.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeToolStore) CountByCategory(categoryID uuid.UUID) (int, error) {
	n := 0
	for i := range f.items {
		if f.items[i].CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (f *fakeToolStore) Create(t *models.Tool) (*models.Tool, error) {
	created := *t
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.items = append(f.items, created)
	return &created, nil
}

func (f *fakeToolStore) Update(t *models.Tool) (*models.Tool, error) {
	for i := range f.items {
		if f.items[i].ID == t.ID {
			updated := *t
			updated.CreatedAt = f.items[i].CreatedAt
			updated.UpdatedAt = time.Now()
			f.items[i] = updated
			return &updated, nil
		}
	}
	return nil, nil
}

func (f *fakeToolStore) Delete(id uuid.UUID) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// newFakes returns a linked pair of fakes and the services over them.
func newFakes() (*fakeCategoryStore, *fakeToolStore, *CategoryService, *ToolService) {
	cats := &fakeCategoryStore{}
	tools := &fakeToolStore{categories: cats}
	return cats, tools, NewCategoryService(cats, tools), NewToolService(tools, cats)
}

func strPtr(s string) *string { return &s }
