package db_test

import (
	"context"
	"testing"

	"github.com/pauljaws/StackBot/internal/models"
	"github.com/pauljaws/StackBot/internal/testutil"
)

func TestIncrementResolutionStat(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := database.IncrementResolutionStat(ctx, "message-queue", models.OutcomeResolved); err != nil {
			t.Fatalf("IncrementResolutionStat returned error: %v", err)
		}
	}
	if err := database.IncrementResolutionStat(ctx, "message-queue", models.OutcomeNotFound); err != nil {
		t.Fatalf("IncrementResolutionStat returned error: %v", err)
	}

	stats, err := database.GetAllResolutionStats(ctx)
	if err != nil {
		t.Fatalf("GetAllResolutionStats returned error: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d stat rows, want 2", len(stats))
	}

	counts := make(map[string]int64)
	for _, s := range stats {
		counts[s.Outcome] = s.Count
	}
	if counts[models.OutcomeResolved] != 3 {
		t.Errorf("resolved count = %d, want 3", counts[models.OutcomeResolved])
	}
	if counts[models.OutcomeNotFound] != 1 {
		t.Errorf("not_found count = %d, want 1", counts[models.OutcomeNotFound])
	}
}

func TestGetAllResolutionStatsEmpty(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	stats, err := database.GetAllResolutionStats(context.Background())
	if err != nil {
		t.Fatalf("GetAllResolutionStats returned error: %v", err)
	}
	if len(stats) != 0 {
		t.Errorf("got %d stat rows, want 0", len(stats))
	}
}
