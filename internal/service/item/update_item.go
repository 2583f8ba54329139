package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/collecto-app/collecto-backend/internal/domain"
	"github.com/collecto-app/collecto-backend/pkg/ctxutil"
)

// UpdateItem replaces the item's entire value set: existing values are
// deleted, then the new set is validated against the schema and inserted,
// all inside one transaction. A validation failure rolls the delete back,
// so the item never ends up half-replaced. The category is immutable.
func (s *Service) UpdateItem(ctx context.Context, input UpdateItemInput) (*domain.Item, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxValuesPerItem); err != nil {
		return nil, err
	}

	it, err := s.items.GetByID(ctx, ownerID, input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if input.CategoryID != it.CategoryID {
		return nil, domain.NewValidationError("category_id", "changing item category is not allowed")
	}

	category, err := s.categories.GetByID(ctx, ownerID, it.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	if err := validateMembership(category, input.Values); err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if delErr := s.items.DeleteValues(txCtx, it.ID); delErr != nil {
			return fmt.Errorf("delete values: %w", delErr)
		}

		values, insErr := s.items.InsertValues(txCtx, it.ID, input.Values)
		if insErr != nil {
			return fmt.Errorf("insert values: %w", insErr)
		}
		it.Values = values

		if touchErr := s.items.Touch(txCtx, it.ID); touchErr != nil {
			return fmt.Errorf("touch item: %w", touchErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "item updated",
		slog.Int64("owner_id", ownerID),
		slog.Int64("item_id", it.ID),
		slog.Int("values", len(it.Values)),
	)

	return it, nil
}
