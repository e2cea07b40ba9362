// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"toolindex/internal/service"
)

// Sitemap serves /sitemap.xml with the public directory URLs: the static
// roots, one entry per category, and one per tool.
type Sitemap struct {
	categories *service.CategoryService
	tools      *service.ToolService
	baseURL    string
}

func NewSitemap(categories *service.CategoryService, tools *service.ToolService, baseURL string) *Sitemap {
	return &Sitemap{categories: categories, tools: tools, baseURL: baseURL}
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Serve handles GET /sitemap.xml.
func (h *Sitemap) Serve(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List("")
	if err != nil {
		writeError(w, err)
		return
	}
	tools, err := h.tools.GetAll("")
	if err != nil {
		writeError(w, err)
		return
	}

	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: h.baseURL, LastMod: time.Now().Format("2006-01-02")},
			{Loc: h.baseURL + "/dir"},
		},
	}

	for _, c := range categories {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     fmt.Sprintf("%s/dir/%s", h.baseURL, c.Slug),
			LastMod: c.UpdatedAt.Format("2006-01-02"),
		})
	}
	for _, t := range tools {
		if t.Category == nil {
			continue
		}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     fmt.Sprintf("%s/dir/%s/%s", h.baseURL, t.Category.Slug, t.Slug),
			LastMod: t.UpdatedAt.Format("2006-01-02"),
		})
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return
	}
	if err := xml.NewEncoder(w).Encode(set); err != nil {
		slog.Error("write sitemap failed", "error", err)
	}
}
