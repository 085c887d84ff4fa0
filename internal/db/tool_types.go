package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pauljaws/StackBot/internal/models"
)

// GetToolTypeBySlug looks up a tool type by its exact slug.
// Returns ErrToolTypeNotFound when no record matches; any other error is a
// store-level failure and comes back wrapped.
func (d *DB) GetToolTypeBySlug(ctx context.Context, slug string) (*models.ToolType, error) {
	tt := &models.ToolType{}
	err := d.Pool.QueryRow(ctx, `
		SELECT id, slug, identifier, display_name, created_at, updated_at
		FROM tool_types
		WHERE slug = $1
	`, slug).Scan(&tt.ID, &tt.Slug, &tt.Identifier, &tt.DisplayName, &tt.CreatedAt, &tt.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrToolTypeNotFound
		}
		return nil, fmt.Errorf("failed to look up tool type: %w", err)
	}
	return tt, nil
}

// ListToolTypes returns all tool-type mappings ordered by slug.
func (d *DB) ListToolTypes(ctx context.Context) ([]models.ToolType, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, slug, identifier, display_name, created_at, updated_at
		FROM tool_types
		ORDER BY slug
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tool types: %w", err)
	}
	defer rows.Close()

	var toolTypes []models.ToolType
	for rows.Next() {
		var tt models.ToolType
		if err := rows.Scan(&tt.ID, &tt.Slug, &tt.Identifier, &tt.DisplayName, &tt.CreatedAt, &tt.UpdatedAt); err != nil {
			return nil, err
		}
		toolTypes = append(toolTypes, tt)
	}
	return toolTypes, rows.Err()
}

// UpsertToolType creates or updates the mapping for a slug and returns the
// stored record. Used by the ops API, never by the resolution pipeline.
func (d *DB) UpsertToolType(ctx context.Context, slug, identifier, displayName string) (*models.ToolType, error) {
	tt := &models.ToolType{}
	err := d.Pool.QueryRow(ctx, `
		INSERT INTO tool_types (slug, identifier, display_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (slug) DO UPDATE
		SET identifier = EXCLUDED.identifier,
		    display_name = EXCLUDED.display_name,
		    updated_at = NOW()
		RETURNING id, slug, identifier, display_name, created_at, updated_at
	`, slug, identifier, displayName).Scan(&tt.ID, &tt.Slug, &tt.Identifier, &tt.DisplayName, &tt.CreatedAt, &tt.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert tool type: %w", err)
	}
	return tt, nil
}
