package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/collecto-app/collecto-backend/internal/domain"
	"github.com/collecto-app/collecto-backend/pkg/ctxutil"
)

// DeleteItem removes an item and all its values. Sibling items and the
// category are untouched.
func (s *Service) DeleteItem(ctx context.Context, input DeleteItemInput) error {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if delErr := s.items.Delete(txCtx, ownerID, input.ItemID); delErr != nil {
			return fmt.Errorf("delete item: %w", delErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "item deleted",
		slog.Int64("owner_id", ownerID),
		slog.Int64("item_id", input.ItemID),
	)

	return nil
}
