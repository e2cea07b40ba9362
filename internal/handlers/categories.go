// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"toolindex/internal/apierr"
	"toolindex/internal/service"
)

// Categories serves the category endpoints.
type Categories struct {
	svc *service.CategoryService
}

func NewCategories(svc *service.CategoryService) *Categories {
	return &Categories{svc: svc}
}

// List handles GET /api/v1/categories. The optional ?name= parameter
// filters by case-insensitive substring match.
func (h *Categories) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.URL.Query().Get("name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Get handles GET /api/v1/categories/{id}.
func (h *Categories) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, apierr.Validation("please enter a valid id"))
		return
	}

	category, err := h.svc.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

// GetBySlug handles GET /api/v1/categories/slug/{categorySlug}.
func (h *Categories) GetBySlug(w http.ResponseWriter, r *http.Request) {
	category, err := h.svc.GetBySlug(chi.URLParam(r, "categorySlug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

// Create handles POST /api/v1/categories.
func (h *Categories) Create(w http.ResponseWriter, r *http.Request) {
	var in service.CreateCategoryInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}

	category, err := h.svc.Create(in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "Category created successfully", category)
}

// Update handles PUT /api/v1/categories/{id}. Absent fields keep their
// stored values.
func (h *Categories) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, apierr.Validation("please enter a valid id"))
		return
	}

	var in service.UpdateCategoryInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}

	category, err := h.svc.Update(id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Category updated successfully", category)
}

// Delete handles DELETE /api/v1/categories/{id}.
func (h *Categories) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, apierr.Validation("please enter a valid id"))
		return
	}

	if err := h.svc.Delete(id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Category deleted successfully", nil)
}
