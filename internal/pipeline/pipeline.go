// Package pipeline orchestrates the multi-stage tool resolution:
// normalize the phrase, resolve it to an identifier, query the ranking API
// and format the best result. A failure at any stage short-circuits to a
// single ResolutionError; callers always observe exactly one terminal
// outcome.
package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pauljaws/StackBot/internal/db"
	"github.com/pauljaws/StackBot/internal/models"
	"github.com/pauljaws/StackBot/internal/ranking"
	"github.com/pauljaws/StackBot/internal/validation"
)

// ToolTypeStore resolves a lookup slug to its stored mapping.
type ToolTypeStore interface {
	GetToolTypeBySlug(ctx context.Context, slug string) (*models.ToolType, error)
}

// Ranker returns the best-ranked tool for an identifier.
type Ranker interface {
	LookupByIdentifier(ctx context.Context, identifier string) (models.RankedResult, error)
}

// fallbackMessage is the one user-facing failure text. Failure kinds stay
// internal; both channels surface the same message.
const fallbackMessage = "Sorry, I couldn't find a good match for that. Try asking about another type of tool."

// Pipeline runs the resolution stages against a store and a ranking client.
// Safe for concurrent use; each invocation is fully independent.
type Pipeline struct {
	store  ToolTypeStore
	ranker Ranker
}

// New creates a resolution pipeline.
func New(store ToolTypeStore, ranker Ranker) *Pipeline {
	return &Pipeline{store: store, ranker: ranker}
}

// Resolve turns a free-text phrase into a formatted answer. On failure it
// returns a ResolutionError whose Kind preserves the failing stage's error
// class; the message is uniform across kinds.
func (p *Pipeline) Resolve(ctx context.Context, phrase string) (string, *ResolutionError) {
	slug := validation.Slugify(phrase)
	if slug == "" {
		slog.Warn("resolution failed", "phrase", phrase, "kind", KindUnsupported)
		return "", &ResolutionError{Kind: KindUnsupported, Message: fallbackMessage}
	}

	toolType, err := p.store.GetToolTypeBySlug(ctx, slug)
	if err != nil {
		kind := KindStoreUnavailable
		if errors.Is(err, db.ErrToolTypeNotFound) {
			kind = KindNotFound
		}
		slog.Warn("resolution failed", "slug", slug, "kind", kind, "error", err)
		return "", &ResolutionError{Kind: kind, Message: fallbackMessage, Err: err}
	}

	result, err := p.ranker.LookupByIdentifier(ctx, toolType.Identifier)
	if err != nil {
		kind := KindUpstream
		if errors.Is(err, ranking.ErrNoResults) {
			kind = KindNoResults
		}
		slog.Warn("resolution failed", "slug", slug, "identifier", toolType.Identifier, "kind", kind, "error", err)
		return "", &ResolutionError{Kind: kind, Message: fallbackMessage, Err: err}
	}

	answer := FormatAnswer(result)
	slog.Info("resolution succeeded", "slug", slug, "tool", result.Name)
	return answer, nil
}
