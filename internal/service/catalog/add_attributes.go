package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/collecto-app/collecto-backend/internal/domain"
	"github.com/collecto-app/collecto-backend/pkg/ctxutil"
)

// AddAttributes appends attribute definitions to an existing category.
// The schema is append-only: attributes are never renamed or removed.
func (s *Service) AddAttributes(ctx context.Context, input AddAttributesInput) ([]domain.Attribute, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Ownership check; not-found and not-owned are indistinguishable.
	if _, err := s.categories.GetByID(ctx, ownerID, input.CategoryID); err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	defs := make([]domain.AttributeDef, len(input.Attributes))
	for i, a := range input.Attributes {
		defs[i] = domain.AttributeDef{
			Name: strings.TrimSpace(a.Name),
			Type: strings.TrimSpace(a.Type),
		}
	}

	var attrs []domain.Attribute
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var addErr error
		attrs, addErr = s.categories.AddAttributes(txCtx, input.CategoryID, defs)
		if addErr != nil {
			return fmt.Errorf("add attributes: %w", addErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "attributes added",
		slog.Int64("owner_id", ownerID),
		slog.Int64("category_id", input.CategoryID),
		slog.Int("attributes", len(attrs)),
	)

	return attrs, nil
}
