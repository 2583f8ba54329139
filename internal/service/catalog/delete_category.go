package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/collecto-app/collecto-backend/internal/domain"
	"github.com/collecto-app/collecto-backend/pkg/ctxutil"
)

// DeleteCategory removes a category together with its attributes, items and
// item values in one transaction. Only the owner can delete a category.
func (s *Service) DeleteCategory(ctx context.Context, input DeleteCategoryInput) error {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	category, err := s.categories.GetByID(ctx, ownerID, input.CategoryID)
	if err != nil {
		return fmt.Errorf("get category: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.categories.DeleteCascade(txCtx, ownerID, input.CategoryID); deleteErr != nil {
			return fmt.Errorf("delete category: %w", deleteErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "category deleted",
		slog.Int64("owner_id", ownerID),
		slog.Int64("category_id", input.CategoryID),
		slog.String("name", category.Name),
	)

	return nil
}
