package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/collecto-app/collecto-backend/internal/domain"
	"github.com/collecto-app/collecto-backend/pkg/ctxutil"
)

// CreateCategory creates a category together with its attribute definitions
// as one atomic unit. Returns ErrAlreadyExists if the owner already has a
// category with the same name.
func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	// Pre-check for a friendly error; the unique index on (owner_id, name)
	// remains the final authority under concurrent creation.
	exists, err := s.categories.ExistsByName(ctx, ownerID, name)
	if err != nil {
		return nil, fmt.Errorf("check category name: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("category %q: %w", name, domain.ErrAlreadyExists)
	}

	count, err := s.categories.Count(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	if count >= s.cfg.MaxCategoriesPerUser {
		return nil, domain.NewValidationError("categories", fmt.Sprintf("limit reached (max %d)", s.cfg.MaxCategoriesPerUser))
	}

	defs := make([]domain.AttributeDef, len(input.Attributes))
	for i, a := range input.Attributes {
		defs[i] = domain.AttributeDef{
			Name: strings.TrimSpace(a.Name),
			Type: strings.TrimSpace(a.Type),
		}
	}

	var category *domain.Category
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		category, createErr = s.categories.Create(txCtx, ownerID, name)
		if createErr != nil {
			return fmt.Errorf("create category: %w", createErr)
		}

		attrs, attrErr := s.categories.AddAttributes(txCtx, category.ID, defs)
		if attrErr != nil {
			return fmt.Errorf("create attributes: %w", attrErr)
		}
		category.Attributes = attrs

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "category created",
		slog.Int64("owner_id", ownerID),
		slog.Int64("category_id", category.ID),
		slog.String("name", name),
		slog.Int("attributes", len(category.Attributes)),
	)

	return category, nil
}
