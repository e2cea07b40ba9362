// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"toolindex/internal/models"
)

// ToolStore handles all tool-related database operations.
type ToolStore struct {
	db *sql.DB
}

// NewToolStore creates a new ToolStore with the given database connection.
func NewToolStore(db *sql.DB) *ToolStore {
	return &ToolStore{db: db}
}

const toolColumns = `id, name, slug, description, logo_url, website,
	metadata_description, category_id, created_at, updated_at`

// toolJoinColumns selects a tool together with its owning category.
const toolJoinColumns = `t.id, t.name, t.slug, t.description, t.logo_url, t.website,
	t.metadata_description, t.category_id, t.created_at, t.updated_at,
	c.id, c.name, c.slug, c.metadata_description, c.created_at, c.updated_at`

// scanTool scans a bare tool row (no category join).
func scanTool(scanner interface{ Scan(...any) error }) (*models.Tool, error) {
	var t models.Tool
	err := scanner.Scan(
		&t.ID, &t.Name, &t.Slug, &t.Description, &t.LogoURL, &t.Website,
		&t.MetadataDescription, &t.CategoryID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// scanToolWithCategory scans a joined tool+category row.
func scanToolWithCategory(scanner interface{ Scan(...any) error }) (*models.Tool, error) {
	var t models.Tool
	var c models.Category
	err := scanner.Scan(
		&t.ID, &t.Name, &t.Slug, &t.Description, &t.LogoURL, &t.Website,
		&t.MetadataDescription, &t.CategoryID, &t.CreatedAt, &t.UpdatedAt,
		&c.ID, &c.Name, &c.Slug, &c.MetadataDescription, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Category = &c
	return &t, nil
}

// List returns tools whose name contains the filter (case-insensitive),
// each joined with its owning category, newest first. An empty filter
// returns the full catalog.
func (s *ToolStore) List(nameFilter string) ([]models.Tool, error) {
	rows, err := s.db.Query(`
		SELECT `+toolJoinColumns+`
		FROM tools t
		JOIN categories c ON c.id = t.category_id
		WHERE t.name ILIKE $1
		ORDER BY t.created_at DESC, t.id DESC
	`, likePattern(nameFilter))
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	defer rows.Close()

	var items []models.Tool
	for rows.Next() {
		t, err := scanToolWithCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tool: %w", err)
		}
		items = append(items, *t)
	}
	return items, rows.Err()
}

// ListByCategory returns the tools of one category whose name contains the
// filter (case-insensitive), newest first.
func (s *ToolStore) ListByCategory(categoryID uuid.UUID, nameFilter string) ([]models.Tool, error) {
	rows, err := s.db.Query(`
		SELECT `+toolColumns+`
		FROM tools
		WHERE category_id = $1 AND name ILIKE $2
		ORDER BY created_at DESC, id DESC
	`, categoryID, likePattern(nameFilter))
	if err != nil {
		return nil, fmt.Errorf("list tools by category: %w", err)
	}
	defer rows.Close()

	var items []models.Tool
	for rows.Next() {
		t, err := scanTool(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tool: %w", err)
		}
		items = append(items, *t)
	}
	return items, rows.Err()
}

// FindByID retrieves a tool by its UUID. Returns nil if not found.
func (s *ToolStore) FindByID(id uuid.UUID) (*models.Tool, error) {
	row := s.db.QueryRow(`SELECT `+toolColumns+` FROM tools WHERE id = $1`, id)
	t, err := scanTool(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find tool by id: %w", err)
	}
	return t, nil
}

// FindInCategoryBySlug retrieves the tool with the given slug inside one
// category, joined with that category. Returns nil if not found. Used to
// resolve /dir/{categorySlug}/{toolSlug} pages.
func (s *ToolStore) FindInCategoryBySlug(categoryID uuid.UUID, slug string) (*models.Tool, error) {
	row := s.db.QueryRow(`
		SELECT `+toolJoinColumns+`
		FROM tools t
		JOIN categories c ON c.id = t.category_id
		WHERE t.category_id = $1 AND t.slug = $2
	`, categoryID, slug)
	t, err := scanToolWithCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find tool by slugs: %w", err)
	}
	return t, nil
}

// SlugTaken reports whether another tool in the category already uses the
// slug. excludeID skips one tool (the one being updated) so a tool never
// collides with itself. Pass uuid.Nil to check all tools in the category.
func (s *ToolStore) SlugTaken(categoryID uuid.UUID, slug string, excludeID uuid.UUID) (bool, error) {
	var taken bool
	err := s.db.QueryRow(`
		SELECT EXISTS (
			SELECT 1 FROM tools
			WHERE category_id = $1 AND slug = $2 AND id <> $3
		)
	`, categoryID, slug, excludeID).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("check tool slug: %w", err)
	}
	return taken, nil
}

// CountByCategory returns the number of tools in a category.
func (s *ToolStore) CountByCategory(categoryID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM tools WHERE category_id = $1`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count tools: %w", err)
	}
	return count, nil
}

// Create inserts a new tool and returns it with the generated id and
// timestamps. Constraint violations (duplicate slug in the category, or a
// category that vanished since the pre-check) propagate as raw pg errors.
func (s *ToolStore) Create(t *models.Tool) (*models.Tool, error) {
	row := s.db.QueryRow(`
		INSERT INTO tools (name, slug, description, logo_url, website,
		                   metadata_description, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+toolColumns,
		t.Name, t.Slug, t.Description, t.LogoURL, t.Website,
		t.MetadataDescription, t.CategoryID,
	)
	result, err := scanTool(row)
	if err != nil {
		return nil, fmt.Errorf("create tool: %w", err)
	}
	return result, nil
}

// Update modifies an existing tool and returns the stored row.
// id and created_at are never written.
func (s *ToolStore) Update(t *models.Tool) (*models.Tool, error) {
	row := s.db.QueryRow(`
		UPDATE tools SET
			name = $1, slug = $2, description = $3, logo_url = $4, website = $5,
			metadata_description = $6, category_id = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING `+toolColumns,
		t.Name, t.Slug, t.Description, t.LogoURL, t.Website,
		t.MetadataDescription, t.CategoryID, t.ID,
	)
	result, err := scanTool(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update tool: %w", err)
	}
	return result, nil
}

// Delete removes a tool by ID.
func (s *ToolStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM tools WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tool: %w", err)
	}
	return nil
}
