// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"toolindex/internal/apierr"
	"toolindex/internal/markdown"
	"toolindex/internal/models"
	"toolindex/internal/service"
)

// Tools serves the tool endpoints.
type Tools struct {
	svc *service.ToolService
}

func NewTools(svc *service.ToolService) *Tools {
	return &Tools{svc: svc}
}

// toolDetail is the detail-page shape: the tool plus its description
// rendered from markdown to HTML.
type toolDetail struct {
	models.Tool
	DescriptionHTML string `json:"description_html,omitempty"`
}

// List handles GET /api/v1/tools. Results carry the joined category; the
// optional ?name= parameter filters by case-insensitive substring match.
func (h *Tools) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.GetAll(r.URL.Query().Get("name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Get handles GET /api/v1/tools/{id}.
func (h *Tools) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, apierr.Validation("please enter a valid id"))
		return
	}

	tool, err := h.svc.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

// ListByCategory handles GET /api/v1/categories/{id}/tools.
func (h *Tools) ListByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, apierr.Validation("please enter a valid id"))
		return
	}

	items, err := h.svc.GetByCategory(id, r.URL.Query().Get("name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// ListByCategorySlug handles GET /api/v1/dir/{categorySlug}: the tools of
// the category a public directory page shows.
func (h *Tools) ListByCategorySlug(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.GetByCategorySlug(chi.URLParam(r, "categorySlug"), r.URL.Query().Get("name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// GetBySlugs handles GET /api/v1/dir/{categorySlug}/{toolSlug}. The
// response carries the joined category and the description rendered to
// HTML for the detail page.
func (h *Tools) GetBySlugs(w http.ResponseWriter, r *http.Request) {
	tool, err := h.svc.GetBySlugs(chi.URLParam(r, "categorySlug"), chi.URLParam(r, "toolSlug"))
	if err != nil {
		writeError(w, err)
		return
	}

	detail := toolDetail{Tool: *tool}
	if tool.Description != nil {
		html, err := markdown.ToHTML(*tool.Description)
		if err != nil {
			slog.Error("render tool description failed", "tool", tool.ID, "error", err)
		} else {
			detail.DescriptionHTML = html
		}
	}
	writeJSON(w, http.StatusOK, detail)
}

// Create handles POST /api/v1/tools.
func (h *Tools) Create(w http.ResponseWriter, r *http.Request) {
	var in service.CreateToolInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}

	tool, err := h.svc.Create(in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "Tool created successfully", tool)
}

// Update handles PUT /api/v1/tools/{id}. Absent fields keep their stored
// values.
func (h *Tools) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, apierr.Validation("please enter a valid id"))
		return
	}

	var in service.UpdateToolInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}

	tool, err := h.svc.Update(id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Tool updated successfully", tool)
}

// Delete handles DELETE /api/v1/tools/{id}.
func (h *Tools) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, apierr.Validation("please enter a valid id"))
		return
	}

	if err := h.svc.Delete(id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Tool deleted successfully", nil)
}
