// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pauljaws/StackBot/internal/db"
)

// TestDB creates a test database connection and returns a cleanup function.
// Tests are skipped when TEST_DATABASE_URL is not set.
func TestDB(t *testing.T) (*db.DB, func()) {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database tests")
	}

	ctx := context.Background()
	database, err := db.New(ctx, connString)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// Run migrations
	if err := database.RunMigrations(connString); err != nil {
		database.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	cleanup := func() {
		// Clean up test data
		cleanupTestData(ctx, database.Pool)
		database.Close()
	}

	return database, cleanup
}

// cleanupTestData removes all test data from the database.
func cleanupTestData(ctx context.Context, pool *pgxpool.Pool) {
	pool.Exec(ctx, "DELETE FROM resolution_stats")
	pool.Exec(ctx, "DELETE FROM tool_types")
}

// CreateTestToolType creates a tool-type mapping and returns its slug.
func CreateTestToolType(t *testing.T, database *db.DB, slug, identifier, displayName string) string {
	t.Helper()
	ctx := context.Background()

	if _, err := database.UpsertToolType(ctx, slug, identifier, displayName); err != nil {
		t.Fatalf("failed to create test tool type: %v", err)
	}

	return slug
}
