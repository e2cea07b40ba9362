package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// seedCategory is a starter category inserted on first run.
type seedCategory struct {
	name, slug, metaDesc string
}

// seedTool is a starter tool; categories are assigned round-robin.
type seedTool struct {
	name, slug, description, logoURL, website string
}

var seedCategories = []seedCategory{
	{"Productivity", "productivity", "Boost your workflow with these productivity tools."},
	{"Development", "development", "Essential tools for developers."},
	{"Design", "design", "Design and creativity tools."},
}

var seedTools = []seedTool{
	{"Google", "google", "# Google\n\nSearch, Gmail, Maps, Drive and a broad cloud platform.", "https://logo.clearbit.com/google.com", "https://www.google.com"},
	{"Meta", "meta", "# Meta\n\nFacebook, Instagram, WhatsApp and Messenger under one roof.", "https://logo.clearbit.com/meta.com", "https://www.meta.com"},
	{"Amazon", "amazon", "# Amazon\n\nE-commerce at global scale plus AWS cloud services.", "https://logo.clearbit.com/amazon.com", "https://www.amazon.com"},
	{"Apple", "apple", "# Apple\n\niPhone, Mac and a tightly integrated software ecosystem.", "https://logo.clearbit.com/apple.com", "https://www.apple.com"},
	{"Microsoft", "microsoft", "# Microsoft\n\nWindows, Office, Azure, GitHub and Xbox.", "https://logo.clearbit.com/microsoft.com", "https://www.microsoft.com"},
	{"Netflix", "netflix", "# Netflix\n\nStreaming originals and licensed film and TV worldwide.", "https://logo.clearbit.com/netflix.com", "https://www.netflix.com"},
	{"Spotify", "spotify", "# Spotify\n\nMusic and podcast streaming with algorithmic discovery.", "https://logo.clearbit.com/spotify.com", "https://www.spotify.com"},
	{"Wikipedia", "wikipedia", "# Wikipedia\n\nThe free, collaboratively edited online encyclopedia.", "https://logo.clearbit.com/wikipedia.com", "https://www.wikipedia.org"},
	{"Instagram", "instagram", "# Instagram\n\nPhoto and video sharing with Stories and Reels.", "https://logo.clearbit.com/instagram.com", "https://www.instagram.com"},
	{"Coca-Cola", "coca-cola", "# Coca-Cola\n\nOne of the most recognized beverage brands in the world.", "https://logo.clearbit.com/coke.com", "https://www.coca-cola.com"},
}

// Seed populates the database with initial development data: a default
// admin user, the starter categories, and a set of well-known tools
// distributed across them. Each step is idempotent, so re-running on an
// already seeded database is a no-op.
func Seed(db *sql.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	if err := seedCatalog(db); err != nil {
		return err
	}
	return nil
}

// seedAdmin creates the default admin user if no users exist. The admin
// will be prompted to set up 2FA on first login (totp_enabled = false).
func seedAdmin(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name, totp_enabled)
		VALUES ($1, $2, $3, $4)
	`, "admin@toolindex.local", string(hash), "Admin", false)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	slog.Info("database seeded with default admin user",
		"email", "admin@toolindex.local",
		"password", "admin",
	)

	return nil
}

// seedCatalog inserts the starter categories and tools. Categories are
// upserted by slug; tools are assigned to categories round-robin and
// skipped when their (category, slug) pair already exists.
func seedCatalog(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}

	if count > 0 {
		slog.Info("catalog already seeded, skipping")
		return nil
	}

	var categoryIDs []string
	for _, c := range seedCategories {
		var id string
		err := db.QueryRow(`
			INSERT INTO categories (name, slug, metadata_description)
			VALUES ($1, $2, $3)
			ON CONFLICT ON CONSTRAINT categories_slug_key DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, c.name, c.slug, c.metaDesc).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed category %q: %w", c.slug, err)
		}
		categoryIDs = append(categoryIDs, id)
	}

	for i, t := range seedTools {
		categoryID := categoryIDs[i%len(categoryIDs)]
		_, err := db.Exec(`
			INSERT INTO tools (name, slug, description, logo_url, website, category_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT ON CONSTRAINT tools_category_id_slug_key DO NOTHING
		`, t.name, t.slug, t.description, t.logoURL, t.website, categoryID)
		if err != nil {
			return fmt.Errorf("seed tool %q: %w", t.slug, err)
		}
	}

	slog.Info("catalog seeded",
		"categories", len(seedCategories),
		"tools", len(seedTools),
	)

	return nil
}
