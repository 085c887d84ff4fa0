package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/pauljaws/StackBot/internal/db"
	"github.com/pauljaws/StackBot/internal/models"
	"github.com/pauljaws/StackBot/internal/ranking"
)

type fakeStore struct {
	toolTypes map[string]*models.ToolType
	err       error
}

func (f *fakeStore) GetToolTypeBySlug(ctx context.Context, slug string) (*models.ToolType, error) {
	if f.err != nil {
		return nil, f.err
	}
	tt, ok := f.toolTypes[slug]
	if !ok {
		return nil, db.ErrToolTypeNotFound
	}
	return tt, nil
}

type fakeRanker struct {
	results map[string]models.RankedResult
	err     error
}

func (f *fakeRanker) LookupByIdentifier(ctx context.Context, identifier string) (models.RankedResult, error) {
	if f.err != nil {
		return models.RankedResult{}, f.err
	}
	r, ok := f.results[identifier]
	if !ok {
		return models.RankedResult{}, ranking.ErrNoResults
	}
	return r, nil
}

func TestResolveHappyPath(t *testing.T) {
	store := &fakeStore{toolTypes: map[string]*models.ToolType{
		"message-queue": {Slug: "message-queue", Identifier: "42"},
	}}
	ranker := &fakeRanker{results: map[string]models.RankedResult{
		"42": {Name: "Kafka", Popularity: 95, Function: models.ResultFunction{Name: "Message Queue"}},
	}}

	p := New(store, ranker)

	answer, resErr := p.Resolve(context.Background(), "Message Queue")
	if resErr != nil {
		t.Fatalf("Resolve returned error: %v", resErr)
	}
	want := "Message Queue: the most popular tool right now is Kafka."
	if answer != want {
		t.Errorf("answer = %q, want %q", answer, want)
	}
}

func TestResolveNormalizesPhrase(t *testing.T) {
	store := &fakeStore{toolTypes: map[string]*models.ToolType{
		"message-queue": {Slug: "message-queue", Identifier: "42"},
	}}
	ranker := &fakeRanker{results: map[string]models.RankedResult{
		"42": {Name: "Kafka", Popularity: 95},
	}}

	p := New(store, ranker)

	// All of these must land on the same stored slug.
	for _, phrase := range []string{"message queue", "  MESSAGE_QUEUE  ", "Message...Queue"} {
		if _, resErr := p.Resolve(context.Background(), phrase); resErr != nil {
			t.Errorf("Resolve(%q) returned error: %v", phrase, resErr)
		}
	}
}

func TestResolveFailureKinds(t *testing.T) {
	storeDown := errors.New("connection refused")
	upstreamDown := fmt.Errorf("%w: status 503", ranking.ErrUnavailable)

	tests := []struct {
		name        string
		phrase      string
		store       *fakeStore
		ranker      *fakeRanker
		wantKind    Kind
		wantOutcome string
	}{
		{
			name:        "unknown slug",
			phrase:      "quantum compiler",
			store:       &fakeStore{toolTypes: map[string]*models.ToolType{}},
			ranker:      &fakeRanker{},
			wantKind:    KindNotFound,
			wantOutcome: "not_found",
		},
		{
			name:        "store unavailable",
			phrase:      "message queue",
			store:       &fakeStore{err: storeDown},
			ranker:      &fakeRanker{},
			wantKind:    KindStoreUnavailable,
			wantOutcome: "store_error",
		},
		{
			name:   "no ranked results",
			phrase: "message queue",
			store: &fakeStore{toolTypes: map[string]*models.ToolType{
				"message-queue": {Slug: "message-queue", Identifier: "42"},
			}},
			ranker:      &fakeRanker{results: map[string]models.RankedResult{}},
			wantKind:    KindNoResults,
			wantOutcome: "no_results",
		},
		{
			name:   "ranking api down",
			phrase: "message queue",
			store: &fakeStore{toolTypes: map[string]*models.ToolType{
				"message-queue": {Slug: "message-queue", Identifier: "42"},
			}},
			ranker:      &fakeRanker{err: upstreamDown},
			wantKind:    KindUpstream,
			wantOutcome: "upstream_error",
		},
		{
			name:        "unusable phrase",
			phrase:      "?!...",
			store:       &fakeStore{},
			ranker:      &fakeRanker{},
			wantKind:    KindUnsupported,
			wantOutcome: "unsupported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.store, tt.ranker)

			answer, resErr := p.Resolve(context.Background(), tt.phrase)
			if resErr == nil {
				t.Fatalf("Resolve(%q) = %q, want failure", tt.phrase, answer)
			}
			if resErr.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", resErr.Kind, tt.wantKind)
			}
			if resErr.Outcome() != tt.wantOutcome {
				t.Errorf("Outcome() = %q, want %q", resErr.Outcome(), tt.wantOutcome)
			}
			// Every failure class surfaces the same well-formed message.
			if resErr.Message != fallbackMessage {
				t.Errorf("Message = %q, want uniform fallback", resErr.Message)
			}
		})
	}
}

func TestResolveNotFoundMessageIsWellFormed(t *testing.T) {
	p := New(&fakeStore{toolTypes: map[string]*models.ToolType{}}, &fakeRanker{})

	_, resErr := p.Resolve(context.Background(), "unmapped thing")
	if resErr == nil {
		t.Fatal("expected failure for unmapped slug")
	}
	msg := resErr.Message
	if msg == "" {
		t.Fatal("failure message is empty")
	}
	// No raw slugs or identifiers may leak into the reply text.
	if want := fallbackMessage; msg != want {
		t.Errorf("Message = %q, want %q", msg, want)
	}
}

func TestResolveErrorUnwrap(t *testing.T) {
	p := New(&fakeStore{toolTypes: map[string]*models.ToolType{}}, &fakeRanker{})

	_, resErr := p.Resolve(context.Background(), "missing")
	if resErr == nil {
		t.Fatal("expected failure")
	}
	if !errors.Is(resErr, db.ErrToolTypeNotFound) {
		t.Errorf("ResolutionError should unwrap to the store's sentinel error, got %v", resErr.Err)
	}
}
