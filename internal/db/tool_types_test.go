package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/pauljaws/StackBot/internal/db"
	"github.com/pauljaws/StackBot/internal/testutil"
)

func TestGetToolTypeBySlug(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	testutil.CreateTestToolType(t, database, "message-queue", "42", "Message Queue")

	tt, err := database.GetToolTypeBySlug(ctx, "message-queue")
	if err != nil {
		t.Fatalf("GetToolTypeBySlug returned error: %v", err)
	}
	if tt.Identifier != "42" {
		t.Errorf("identifier = %q, want %q", tt.Identifier, "42")
	}
	if tt.DisplayName != "Message Queue" {
		t.Errorf("display name = %q, want %q", tt.DisplayName, "Message Queue")
	}
}

func TestGetToolTypeBySlugNotFound(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	_, err := database.GetToolTypeBySlug(context.Background(), "no-such-slug")
	if !errors.Is(err, db.ErrToolTypeNotFound) {
		t.Errorf("error = %v, want ErrToolTypeNotFound", err)
	}
}

func TestGetToolTypeBySlugIsExactMatch(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	testutil.CreateTestToolType(t, database, "message-queue", "42", "Message Queue")

	// Lookup is by stored slug only, no fuzzy matching.
	for _, slug := range []string{"message", "message-queues", "Message-Queue"} {
		_, err := database.GetToolTypeBySlug(context.Background(), slug)
		if !errors.Is(err, db.ErrToolTypeNotFound) {
			t.Errorf("GetToolTypeBySlug(%q) error = %v, want ErrToolTypeNotFound", slug, err)
		}
	}
}

func TestUpsertToolType(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()

	created, err := database.UpsertToolType(ctx, "load-balancer", "17", "Load Balancer")
	if err != nil {
		t.Fatalf("UpsertToolType returned error: %v", err)
	}
	if created.Identifier != "17" {
		t.Errorf("identifier = %q, want %q", created.Identifier, "17")
	}

	// Upserting the same slug replaces the mapping in place.
	updated, err := database.UpsertToolType(ctx, "load-balancer", "18", "Load Balancers")
	if err != nil {
		t.Fatalf("UpsertToolType update returned error: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("upsert created a new row: id %v != %v", updated.ID, created.ID)
	}
	if updated.Identifier != "18" {
		t.Errorf("identifier = %q, want %q", updated.Identifier, "18")
	}
}

func TestListToolTypes(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	testutil.CreateTestToolType(t, database, "message-queue", "42", "Message Queue")
	testutil.CreateTestToolType(t, database, "databases", "7", "Databases")

	toolTypes, err := database.ListToolTypes(context.Background())
	if err != nil {
		t.Fatalf("ListToolTypes returned error: %v", err)
	}
	if len(toolTypes) != 2 {
		t.Fatalf("got %d tool types, want 2", len(toolTypes))
	}
	if toolTypes[0].Slug != "databases" || toolTypes[1].Slug != "message-queue" {
		t.Errorf("tool types not ordered by slug: %q, %q", toolTypes[0].Slug, toolTypes[1].Slug)
	}
}
