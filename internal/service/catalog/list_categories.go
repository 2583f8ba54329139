package catalog

import (
	"context"
	"fmt"

	"github.com/collecto-app/collecto-backend/internal/domain"
	"github.com/collecto-app/collecto-backend/pkg/ctxutil"
)

// ListCategories returns the authenticated owner's categories in summary
// form (id + name only).
func (s *Service) ListCategories(ctx context.Context) ([]domain.CategorySummary, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	categories, err := s.categories.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}
