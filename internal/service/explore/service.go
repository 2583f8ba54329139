// Package explore implements cross-user browsing: reading another user's
// categories and items, gated by the follow graph.
package explore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/collecto-app/collecto-backend/internal/domain"
	"github.com/collecto-app/collecto-backend/pkg/ctxutil"
)

type followChecker interface {
	IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error)
}

type categoryRepo interface {
	List(ctx context.Context, ownerID int64) ([]domain.CategorySummary, error)
}

type itemRepo interface {
	ListDetailed(ctx context.Context, ownerID, categoryID int64) ([]*domain.Item, error)
}

// Service provides follow-gated browsing of other users' collections.
type Service struct {
	follows    followChecker
	categories categoryRepo
	items      itemRepo
	log        *slog.Logger
}

// NewService creates a new explore service.
func NewService(
	log *slog.Logger,
	follows followChecker,
	categories categoryRepo,
	items itemRepo,
) *Service {
	return &Service{
		follows:    follows,
		categories: categories,
		items:      items,
		log:        log.With("service", "explore"),
	}
}

// BrowseCategories returns the target user's category list, or ErrForbidden
// when the viewer does not follow the target. Unlike owner-scoped reads,
// the target's existence is not hidden here.
func (s *Service) BrowseCategories(ctx context.Context, targetID int64) ([]domain.CategorySummary, error) {
	if err := s.gate(ctx, targetID); err != nil {
		return nil, err
	}

	categories, err := s.categories.List(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("browse categories: %w", err)
	}

	return categories, nil
}

// BrowseItems returns the target user's items in one category with full
// value sets and resolved attribute names, under the same follow gate.
func (s *Service) BrowseItems(ctx context.Context, targetID, categoryID int64) ([]*domain.Item, error) {
	if err := s.gate(ctx, targetID); err != nil {
		return nil, err
	}

	if categoryID <= 0 {
		return nil, domain.NewValidationError("category_id", "required")
	}

	items, err := s.items.ListDetailed(ctx, targetID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("browse items: %w", err)
	}

	return items, nil
}

// gate rejects viewers that do not follow the target.
func (s *Service) gate(ctx context.Context, targetID int64) error {
	viewerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if targetID <= 0 {
		return domain.NewValidationError("user_id", "required")
	}

	following, err := s.follows.IsFollowing(ctx, viewerID, targetID)
	if err != nil {
		return fmt.Errorf("follow check: %w", err)
	}
	if !following {
		s.log.DebugContext(ctx, "browse forbidden",
			slog.Int64("viewer_id", viewerID),
			slog.Int64("target_id", targetID),
		)
		return domain.ErrForbidden
	}

	return nil
}
