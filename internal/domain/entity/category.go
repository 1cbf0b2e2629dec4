// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products in the catalog (e.g. leafy greens, root vegetables).
type Category struct {
	ID          uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the category.
	Name        string    `json:"name"`        // The display name of the category.
	Slug        string    `json:"slug"`        // URL-safe unique identifier used in filter queries.
	Description string    `json:"description"` // Short description shown on category pages.
	Image       string    `json:"image"`       // Banner image URL.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of when the category was created.
	UpdatedAt   time.Time `json:"updated_at"`  // Timestamp of the last modification.
}
