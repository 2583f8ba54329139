package item

import (
	"context"
	"fmt"

	"github.com/collecto-app/collecto-backend/internal/domain"
	"github.com/collecto-app/collecto-backend/pkg/ctxutil"
)

// GetItem returns the full item with resolved attribute names.
// An item owned by someone else reports not-found. A value whose attribute
// was since removed carries a nil name instead of failing the read.
func (s *Service) GetItem(ctx context.Context, itemID int64) (*domain.Item, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if itemID <= 0 {
		return nil, domain.NewValidationError("item_id", "required")
	}

	it, err := s.items.GetDetail(ctx, ownerID, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	return it, nil
}
