package models

import (
	"time"

	"github.com/google/uuid"
)

// ToolType represents a slug-to-ranking-identifier mapping.
// Records are provisioned out of band; the resolution pipeline only reads them.
type ToolType struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Identifier  string    `json:"identifier"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
