// Package catalog implements the schema registry: user-defined categories
// and their ordered, typed attribute definitions.
package catalog

import (
	"context"
	"log/slog"

	"github.com/collecto-app/collecto-backend/internal/config"
	"github.com/collecto-app/collecto-backend/internal/domain"
)

type categoryRepo interface {
	Create(ctx context.Context, ownerID int64, name string) (*domain.Category, error)
	ExistsByName(ctx context.Context, ownerID int64, name string) (bool, error)
	AddAttributes(ctx context.Context, categoryID int64, defs []domain.AttributeDef) ([]domain.Attribute, error)
	GetByID(ctx context.Context, ownerID, categoryID int64) (*domain.Category, error)
	List(ctx context.Context, ownerID int64) ([]domain.CategorySummary, error)
	Count(ctx context.Context, ownerID int64) (int, error)
	DeleteCascade(ctx context.Context, ownerID, categoryID int64) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides category schema management operations.
type Service struct {
	categories categoryRepo
	tx         txManager
	cfg        config.CatalogConfig
	log        *slog.Logger
}

// NewService creates a new catalog service.
func NewService(
	log *slog.Logger,
	categories categoryRepo,
	tx txManager,
	cfg config.CatalogConfig,
) *Service {
	return &Service{
		categories: categories,
		tx:         tx,
		cfg:        cfg,
		log:        log.With("service", "catalog"),
	}
}
