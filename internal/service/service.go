// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package service implements the catalog's business rules over the store
// layer: input validation, slug uniqueness, referential checks, and the
// normalization of every failure into the apierr taxonomy. Stores are
// consumed through narrow interfaces so the services can be exercised
// against in-memory fakes.
package service

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"toolindex/internal/apierr"
	"toolindex/internal/models"
)

// CategoryStore is the persistence surface the category service needs.
type CategoryStore interface {
	List(nameFilter string) ([]models.Category, error)
	FindByID(id uuid.UUID) (*models.Category, error)
	FindBySlug(slug string) (*models.Category, error)
	Create(c *models.Category) (*models.Category, error)
	Update(c *models.Category) (*models.Category, error)
	Delete(id uuid.UUID) error
}

// ToolStore is the persistence surface the tool service needs.
type ToolStore interface {
	List(nameFilter string) ([]models.Tool, error)
	ListByCategory(categoryID uuid.UUID, nameFilter string) ([]models.Tool, error)
	FindByID(id uuid.UUID) (*models.Tool, error)
	FindInCategoryBySlug(categoryID uuid.UUID, slug string) (*models.Tool, error)
	SlugTaken(categoryID uuid.UUID, slug string, excludeID uuid.UUID) (bool, error)
	CountByCategory(categoryID uuid.UUID) (int, error)
	Create(t *models.Tool) (*models.Tool, error)
	Update(t *models.Tool) (*models.Tool, error)
	Delete(id uuid.UUID) error
}

// validate is the shared validator instance. Field names in messages come
// from json tags so callers see the names they actually sent.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// checkInput validates a tagged input struct and converts the first
// violation into a caller-readable Validation error.
func checkInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return apierr.Validation("invalid input")
	}

	e := errs[0]
	switch e.Tag() {
	case "required":
		return apierr.Validation(fmt.Sprintf("%s is required", e.Field()))
	case "min":
		return apierr.Validation(fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param()))
	case "max":
		return apierr.Validation(fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param()))
	case "url":
		return apierr.Validation(fmt.Sprintf("%s must be a valid URL", e.Field()))
	default:
		return apierr.Validation(fmt.Sprintf("%s is invalid", e.Field()))
	}
}
