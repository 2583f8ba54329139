package item

import (
	"context"
	"fmt"

	itemrepo "github.com/collecto-app/collecto-backend/internal/adapter/postgres/item"
	"github.com/collecto-app/collecto-backend/internal/domain"
	"github.com/collecto-app/collecto-backend/pkg/ctxutil"
)

// ListItems returns item summaries for one of the caller's categories.
// Each summary carries only the first value (by insertion order) as a
// preview — list views are deliberately truncated.
func (s *Service) ListItems(ctx context.Context, input ListItemsInput) ([]*domain.Item, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// A foreign category reports not-found, not an empty list.
	if _, err := s.categories.GetByID(ctx, ownerID, input.CategoryID); err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = s.cfg.ListDefaultLimit
	}
	if limit > s.cfg.ListMaxLimit {
		limit = s.cfg.ListMaxLimit
	}

	items, err := s.items.List(ctx, ownerID, input.CategoryID, itemrepo.Filter{
		Limit:  limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return items, nil
}
