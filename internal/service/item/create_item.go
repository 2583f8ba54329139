package item

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/collecto-app/collecto-backend/internal/domain"
	"github.com/collecto-app/collecto-backend/pkg/ctxutil"
)

// CreateItem creates an item and its values as one atomic unit.
// The category must be owned by the caller (a foreign category reports
// not-found), and every value's attribute must belong to that category.
func (s *Service) CreateItem(ctx context.Context, input CreateItemInput) (*domain.Item, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxValuesPerItem); err != nil {
		return nil, err
	}

	// Resolve the schema scoped by owner: absence and foreign ownership are
	// indistinguishable here, so the item owner always equals the category
	// owner by construction.
	category, err := s.categories.GetByID(ctx, ownerID, input.CategoryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("category %d: %w", input.CategoryID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get category: %w", err)
	}

	if err := validateMembership(category, input.Values); err != nil {
		return nil, err
	}

	var created *domain.Item
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.items.Create(txCtx, ownerID, category.ID)
		if createErr != nil {
			return fmt.Errorf("create item: %w", createErr)
		}

		values, valErr := s.items.InsertValues(txCtx, created.ID, input.Values)
		if valErr != nil {
			return fmt.Errorf("insert values: %w", valErr)
		}
		created.Values = values

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "item created",
		slog.Int64("owner_id", ownerID),
		slog.Int64("item_id", created.ID),
		slog.Int64("category_id", category.ID),
		slog.Int("values", len(created.Values)),
	)

	return created, nil
}
