// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package service

import (
	"github.com/google/uuid"

	"toolindex/internal/apierr"
	"toolindex/internal/models"
	"toolindex/internal/slug"
)

// CategoryService implements the category operations: CRUD plus slug and
// name lookups. The category slug is globally unique; the service checks
// proactively and relies on the store's unique constraint as the backstop.
type CategoryService struct {
	categories CategoryStore
	tools      ToolStore
}

// NewCategoryService returns a CategoryService. The tool store is needed
// only for the delete-time dependency check.
func NewCategoryService(categories CategoryStore, tools ToolStore) *CategoryService {
	return &CategoryService{categories: categories, tools: tools}
}

// CreateCategoryInput carries the fields for a new category.
type CreateCategoryInput struct {
	Name                string  `json:"name" validate:"required,min=4"`
	Slug                string  `json:"slug" validate:"required,min=4"`
	MetadataDescription *string `json:"metadata_description" validate:"omitempty,max=500"`
}

// UpdateCategoryInput carries a partial category update; nil fields are
// left unchanged.
type UpdateCategoryInput struct {
	Name                *string `json:"name" validate:"omitempty,min=4"`
	Slug                *string `json:"slug" validate:"omitempty,min=4"`
	MetadataDescription *string `json:"metadata_description" validate:"omitempty,max=500"`
}

// Create validates the input, rejects a slug already used by any category,
// and inserts the new category. id and created_at are assigned by the store.
func (s *CategoryService) Create(in CreateCategoryInput) (*models.Category, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	if !slug.Valid(in.Slug) {
		return nil, apierr.Validation("slug must contain only lowercase letters, digits, and hyphens")
	}

	existing, err := s.categories.FindBySlug(in.Slug)
	if err != nil {
		return nil, apierr.FromStore(err)
	}
	if existing != nil {
		return nil, apierr.Conflict("A category with this slug already exists")
	}

	created, err := s.categories.Create(&models.Category{
		Name:                in.Name,
		Slug:                in.Slug,
		MetadataDescription: in.MetadataDescription,
	})
	if err != nil {
		return nil, apierr.FromStore(err)
	}
	return created, nil
}

// List returns categories whose name contains nameFilter, case-insensitive,
// newest first. An empty filter returns everything.
func (s *CategoryService) List(nameFilter string) ([]models.Category, error) {
	items, err := s.categories.List(nameFilter)
	if err != nil {
		return nil, apierr.FromStore(err)
	}
	return items, nil
}

// GetByID returns one category or NotFound.
func (s *CategoryService) GetByID(id uuid.UUID) (*models.Category, error) {
	c, err := s.categories.FindByID(id)
	if err != nil {
		return nil, apierr.FromStore(err)
	}
	if c == nil {
		return nil, apierr.NotFound("category not found")
	}
	return c, nil
}

// GetBySlug resolves a category from its public slug, or NotFound.
func (s *CategoryService) GetBySlug(categorySlug string) (*models.Category, error) {
	c, err := s.categories.FindBySlug(categorySlug)
	if err != nil {
		return nil, apierr.FromStore(err)
	}
	if c == nil {
		return nil, apierr.NotFound("Invalid Slug")
	}
	return c, nil
}

// Update applies a partial update. A new slug must not collide with a
// different category; created_at and id are never altered.
func (s *CategoryService) Update(id uuid.UUID, in UpdateCategoryInput) (*models.Category, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	existing, err := s.categories.FindByID(id)
	if err != nil {
		return nil, apierr.FromStore(err)
	}
	if existing == nil {
		return nil, apierr.NotFound("category not found")
	}

	if in.Name != nil {
		existing.Name = *in.Name
	}
	if in.Slug != nil && *in.Slug != existing.Slug {
		if !slug.Valid(*in.Slug) {
			return nil, apierr.Validation("slug must contain only lowercase letters, digits, and hyphens")
		}
		other, err := s.categories.FindBySlug(*in.Slug)
		if err != nil {
			return nil, apierr.FromStore(err)
		}
		if other != nil && other.ID != id {
			return nil, apierr.Conflict("A category with this slug already exists")
		}
		existing.Slug = *in.Slug
	}
	if in.MetadataDescription != nil {
		existing.MetadataDescription = in.MetadataDescription
	}

	updated, err := s.categories.Update(existing)
	if err != nil {
		return nil, apierr.FromStore(err)
	}
	if updated == nil {
		return nil, apierr.NotFound("category not found")
	}
	return updated, nil
}

// Delete removes a category. Deletion is rejected while the category still
// has tools; the restrict foreign key catches the race a concurrent tool
// insert could win between the count and the delete.
func (s *CategoryService) Delete(id uuid.UUID) error {
	existing, err := s.categories.FindByID(id)
	if err != nil {
		return apierr.FromStore(err)
	}
	if existing == nil {
		return apierr.NotFound("category not found")
	}

	count, err := s.tools.CountByCategory(id)
	if err != nil {
		return apierr.FromStore(err)
	}
	if count > 0 {
		return apierr.Conflict("category still has tools")
	}

	if err := s.categories.Delete(id); err != nil {
		if apierr.IsForeignKeyViolation(err) {
			return apierr.Conflict("category still has tools")
		}
		return apierr.FromStore(err)
	}
	return nil
}
