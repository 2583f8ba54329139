// Package export renders a category's items to a downloadable document.
// The service assembles items with resolved attribute names; the document
// format is the renderer's concern.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/collecto-app/collecto-backend/internal/domain"
	"github.com/collecto-app/collecto-backend/pkg/ctxutil"
)

type categoryRepo interface {
	GetByID(ctx context.Context, ownerID, categoryID int64) (*domain.Category, error)
}

type itemRepo interface {
	ListDetailed(ctx context.Context, ownerID, categoryID int64) ([]*domain.Item, error)
}

// Renderer turns a category and its items into document bytes.
type Renderer interface {
	Render(category *domain.Category, items []*domain.Item) ([]byte, error)
}

// Document is the rendered export handed back to the transport layer.
type Document struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Service provides category export operations.
type Service struct {
	categories categoryRepo
	items      itemRepo
	renderer   Renderer
	log        *slog.Logger
}

// NewService creates a new export service.
func NewService(
	log *slog.Logger,
	categories categoryRepo,
	items itemRepo,
	renderer Renderer,
) *Service {
	return &Service{
		categories: categories,
		items:      items,
		renderer:   renderer,
		log:        log.With("service", "export"),
	}
}

// ExportCategory renders all items of one of the caller's categories.
// A category with no items reports not-found rather than producing an
// empty document.
func (s *Service) ExportCategory(ctx context.Context, categoryID int64) (*Document, error) {
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

	items, err := s.items.ListDetailed(ctx, ownerID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("category %d has no items: %w", categoryID, domain.ErrNotFound)
	}

	content, err := s.renderer.Render(category, items)
	if err != nil {
		return nil, fmt.Errorf("render export: %w", err)
	}

	s.log.InfoContext(ctx, "category exported",
		slog.Int64("owner_id", ownerID),
		slog.Int64("category_id", categoryID),
		slog.Int("items", len(items)),
	)

	return &Document{
		Filename:    exportFilename(category.Name),
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}

// exportFilename derives a download name from the category name that can
// be embedded in a Content-Disposition header verbatim. Anything outside
// [A-Za-z0-9._-] is replaced with an underscore.
func exportFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	base := strings.Trim(b.String(), "._")
	if base == "" {
		base = "category"
	}
	return base + "_items.pdf"
}
