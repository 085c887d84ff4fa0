package db

import (
	"context"

	"github.com/pauljaws/StackBot/internal/models"
)

// IncrementResolutionStat upserts a per-slug resolution count by outcome.
func (d *DB) IncrementResolutionStat(ctx context.Context, slug, outcome string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO resolution_stats (slug, outcome, count, last_seen_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (slug, outcome) DO UPDATE
		SET count = resolution_stats.count + 1, last_seen_at = NOW()
	`, slug, outcome)
	return err
}

// GetAllResolutionStats returns all resolution stat rows for metrics export.
func (d *DB) GetAllResolutionStats(ctx context.Context) ([]models.ResolutionStat, error) {
	rows, err := d.Pool.Query(ctx, `SELECT slug, outcome, count, last_seen_at FROM resolution_stats`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []models.ResolutionStat
	for rows.Next() {
		var s models.ResolutionStat
		if err := rows.Scan(&s.Slug, &s.Outcome, &s.Count, &s.LastSeenAt); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
