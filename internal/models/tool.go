// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Tool is a cataloged item belonging to exactly one category. Its slug is
// unique within that category only, so two tools in different categories
// may share a slug. Description holds markdown source; rendering happens
// at the API boundary.
type Tool struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Slug                string    `json:"slug"`
	Description         *string   `json:"description,omitempty"`
	LogoURL             *string   `json:"logo_url,omitempty"`
	Website             *string   `json:"website,omitempty"`
	MetadataDescription *string   `json:"metadata_description,omitempty"`
	CategoryID          uuid.UUID `json:"category_id"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`

	// Virtual field populated by read queries that join the owning category.
	Category *Category `json:"category,omitempty"`
}
