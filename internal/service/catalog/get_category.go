package catalog

import (
	"context"
	"fmt"

	"github.com/collecto-app/collecto-backend/internal/domain"
	"github.com/collecto-app/collecto-backend/pkg/ctxutil"
)

// GetCategory returns a category with its attributes for the authenticated
// owner. A category owned by someone else reports not-found, not forbidden.
func (s *Service) GetCategory(ctx context.Context, categoryID int64) (*domain.Category, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if categoryID <= 0 {
		return nil, domain.NewValidationError("category_id", "required")
	}

	category, err := s.categories.GetByID(ctx, ownerID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	return category, nil
}
