// Package item implements item CRUD against the owning category's schema:
// every write validates attribute membership via the schema registry.
package item

import (
	"context"
	"fmt"
	"log/slog"

	itemrepo "github.com/collecto-app/collecto-backend/internal/adapter/postgres/item"
	"github.com/collecto-app/collecto-backend/internal/config"
	"github.com/collecto-app/collecto-backend/internal/domain"
)

type itemRepo interface {
	Create(ctx context.Context, ownerID, categoryID int64) (*domain.Item, error)
	GetByID(ctx context.Context, ownerID, itemID int64) (*domain.Item, error)
	GetDetail(ctx context.Context, ownerID, itemID int64) (*domain.Item, error)
	InsertValues(ctx context.Context, itemID int64, values []domain.ValueInput) ([]domain.AttributeValue, error)
	DeleteValues(ctx context.Context, itemID int64) error
	Touch(ctx context.Context, itemID int64) error
	List(ctx context.Context, ownerID, categoryID int64, filter itemrepo.Filter) ([]*domain.Item, error)
	Delete(ctx context.Context, ownerID, itemID int64) error
}

type categoryRepo interface {
	GetByID(ctx context.Context, ownerID, categoryID int64) (*domain.Category, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides item management operations.
type Service struct {
	items      itemRepo
	categories categoryRepo
	tx         txManager
	cfg        config.CatalogConfig
	log        *slog.Logger
}

// NewService creates a new item service.
func NewService(
	log *slog.Logger,
	items itemRepo,
	categories categoryRepo,
	tx txManager,
	cfg config.CatalogConfig,
) *Service {
	return &Service{
		items:      items,
		categories: categories,
		tx:         tx,
		cfg:        cfg,
		log:        log.With("service", "item"),
	}
}

// validateMembership checks that every supplied value references an
// attribute defined by the category. The whole write aborts on the first
// violation; no partial item is ever persisted.
func validateMembership(category *domain.Category, values []domain.ValueInput) error {
	for _, v := range values {
		if _, ok := category.AttributeByID(v.FieldID); !ok {
			return domain.NewValidationError("values.field_id",
				fmt.Sprintf("attribute %d does not belong to category %d", v.FieldID, category.ID))
		}
	}
	return nil
}
