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

// ToolService implements the tool operations. A tool's slug is unique only
// within its owning category, so every uniqueness check is scoped to a
// category id, and an updated tool is excluded from its own check.
type ToolService struct {
	tools      ToolStore
	categories CategoryStore
}

// NewToolService returns a ToolService.
func NewToolService(tools ToolStore, categories CategoryStore) *ToolService {
	return &ToolService{tools: tools, categories: categories}
}

// CreateToolInput carries the fields for a new tool.
type CreateToolInput struct {
	Name                string    `json:"name" validate:"required,min=4"`
	Slug                string    `json:"slug" validate:"required,min=4"`
	Category            uuid.UUID `json:"category" validate:"required"`
	Description         *string   `json:"description"`
	LogoURL             *string   `json:"logo_url" validate:"omitempty,url"`
	Website             *string   `json:"website" validate:"omitempty,url"`
	MetadataDescription *string   `json:"metadata_description" validate:"omitempty,max=500"`
}

// UpdateToolInput carries a partial tool update; nil fields are left
// unchanged. A changed slug is validated against the tool's current
// category, not the one being assigned.
type UpdateToolInput struct {
	Name                *string    `json:"name" validate:"omitempty,min=4"`
	Slug                *string    `json:"slug" validate:"omitempty,min=4"`
	Category            *uuid.UUID `json:"category"`
	Description         *string    `json:"description"`
	LogoURL             *string    `json:"logo_url" validate:"omitempty,url"`
	Website             *string    `json:"website" validate:"omitempty,url"`
	MetadataDescription *string    `json:"metadata_description" validate:"omitempty,max=500"`
}

// Create validates the input, verifies the referenced category exists, and
// rejects a slug already used inside that category. The composite unique
// constraint in the store is the backstop for the check-then-act race.
func (s *ToolService) Create(in CreateToolInput) (*models.Tool, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}
	if !slug.Valid(in.Slug) {
		return nil, apierr.Validation("slug must contain only lowercase letters, digits, and hyphens")
	}

	category, err := s.categories.FindByID(in.Category)
	if err != nil {
		return nil, apierr.FromStore(err)
	}
	if category == nil {
		return nil, apierr.Validation("Category not found")
	}

	taken, err := s.tools.SlugTaken(in.Category, in.Slug, uuid.Nil)
	if err != nil {
		return nil, apierr.FromStore(err)
	}
	if taken {
		return nil, apierr.Conflict("please enter a unique slug")
	}

	created, err := s.tools.Create(&models.Tool{
		Name:                in.Name,
		Slug:                in.Slug,
		Description:         in.Description,
		LogoURL:             in.LogoURL,
		Website:             in.Website,
		MetadataDescription: in.MetadataDescription,
		CategoryID:          in.Category,
	})
	if err != nil {
		return nil, apierr.FromStore(err)
	}
	return created, nil
}

// GetAll returns every tool joined with its owning category, filtered by a
// case-insensitive substring match on name, newest first.
func (s *ToolService) GetAll(nameFilter string) ([]models.Tool, error) {
	items, err := s.tools.List(nameFilter)
	if err != nil {
		return nil, apierr.FromStore(err)
	}
	return items, nil
}

// GetByID returns one tool or NotFound.
func (s *ToolService) GetByID(id uuid.UUID) (*models.Tool, error) {
	t, err := s.tools.FindByID(id)
	if err != nil {
		return nil, apierr.FromStore(err)
	}
	if t == nil {
		return nil, apierr.NotFound("tool not found")
	}
	return t, nil
}

// GetByCategory returns the tools of one category, filtered by name.
func (s *ToolService) GetByCategory(categoryID uuid.UUID, nameFilter string) ([]models.Tool, error) {
	items, err := s.tools.ListByCategory(categoryID, nameFilter)
	if err != nil {
		return nil, apierr.FromStore(err)
	}
	return items, nil
}

// GetByCategorySlug resolves the category slug first, then lists its tools.
func (s *ToolService) GetByCategorySlug(categorySlug, nameFilter string) ([]models.Tool, error) {
	category, err := s.categories.FindBySlug(categorySlug)
	if err != nil {
		return nil, apierr.FromStore(err)
	}
	if category == nil {
		return nil, apierr.NotFound("Invalid Slug")
	}
	return s.GetByCategory(category.ID, nameFilter)
}

// GetBySlugs resolves /dir/{categorySlug}/{toolSlug}: the category slug
// first, then the unique tool with that slug inside it. The result carries
// the joined category.
func (s *ToolService) GetBySlugs(categorySlug, toolSlug string) (*models.Tool, error) {
	category, err := s.categories.FindBySlug(categorySlug)
	if err != nil {
		return nil, apierr.FromStore(err)
	}
	if category == nil {
		return nil, apierr.NotFound("Invalid Slug")
	}

	t, err := s.tools.FindInCategoryBySlug(category.ID, toolSlug)
	if err != nil {
		return nil, apierr.FromStore(err)
	}
	if t == nil {
		return nil, apierr.NotFound("tool not found")
	}
	return t, nil
}

// Update applies a partial update. The slug check is scoped to the tool's
// current category and excludes the tool itself, so keeping the same slug
// never collides. created_at and id are never altered.
func (s *ToolService) Update(id uuid.UUID, in UpdateToolInput) (*models.Tool, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	existing, err := s.tools.FindByID(id)
	if err != nil {
		return nil, apierr.FromStore(err)
	}
	if existing == nil {
		return nil, apierr.NotFound("please enter a valid id")
	}

	if in.Slug != nil && *in.Slug != existing.Slug {
		if !slug.Valid(*in.Slug) {
			return nil, apierr.Validation("slug must contain only lowercase letters, digits, and hyphens")
		}
		taken, err := s.tools.SlugTaken(existing.CategoryID, *in.Slug, id)
		if err != nil {
			return nil, apierr.FromStore(err)
		}
		if taken {
			return nil, apierr.Conflict("please enter a unique slug")
		}
		existing.Slug = *in.Slug
	}

	if in.Category != nil && *in.Category != existing.CategoryID {
		category, err := s.categories.FindByID(*in.Category)
		if err != nil {
			return nil, apierr.FromStore(err)
		}
		if category == nil {
			return nil, apierr.Validation("Category not found")
		}
		existing.CategoryID = *in.Category
	}

	if in.Name != nil {
		existing.Name = *in.Name
	}
	if in.Description != nil {
		existing.Description = in.Description
	}
	if in.LogoURL != nil {
		existing.LogoURL = in.LogoURL
	}
	if in.Website != nil {
		existing.Website = in.Website
	}
	if in.MetadataDescription != nil {
		existing.MetadataDescription = in.MetadataDescription
	}

	existing.Category = nil
	updated, err := s.tools.Update(existing)
	if err != nil {
		return nil, apierr.FromStore(err)
	}
	if updated == nil {
		return nil, apierr.NotFound("please enter a valid id")
	}
	return updated, nil
}

// Delete removes a tool, or NotFound if the id does not exist.
func (s *ToolService) Delete(id uuid.UUID) error {
	existing, err := s.tools.FindByID(id)
	if err != nil {
		return apierr.FromStore(err)
	}
	if existing == nil {
		return apierr.NotFound("tool not found")
	}

	if err := s.tools.Delete(id); err != nil {
		return apierr.FromStore(err)
	}
	return nil
}
