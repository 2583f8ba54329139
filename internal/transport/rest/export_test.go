package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collecto-app/collecto-backend/internal/domain"
	"github.com/collecto-app/collecto-backend/internal/service/export"
)

type mockExportService struct {
	ExportCategoryFunc func(ctx context.Context, categoryID int64) (*export.Document, error)
}

func (m *mockExportService) ExportCategory(ctx context.Context, categoryID int64) (*export.Document, error) {
	if m.ExportCategoryFunc != nil {
		return m.ExportCategoryFunc(ctx, categoryID)
	}
	return nil, domain.ErrNotFound
}

func newExportHandler() (*ExportHandler, *mockExportService) {
	svc := &mockExportService{}
	return NewExportHandler(svc, slog.Default()), svc
}

func TestExportHandler_Category(t *testing.T) {
	t.Parallel()
	h, svc := newExportHandler()

	svc.ExportCategoryFunc = func(_ context.Context, categoryID int64) (*export.Document, error) {
		assert.Equal(t, int64(5), categoryID)
		return &export.Document{
			Filename:    "Books_items.pdf",
			ContentType: "application/pdf",
			Content:     []byte("%PDF-1.4 fake"),
		}, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/categories/5/export", nil)
	req.SetPathValue("id", "5")
	rec := httptest.NewRecorder()

	h.Category(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Books_items.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.4 fake", rec.Body.String())
}

func TestExportHandler_Category_Empty(t *testing.T) {
	t.Parallel()
	h, _ := newExportHandler()

	req := httptest.NewRequest(http.MethodGet, "/categories/5/export", nil)
	req.SetPathValue("id", "5")
	rec := httptest.NewRecorder()

	h.Category(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportHandler_Category_BadID(t *testing.T) {
	t.Parallel()
	h, _ := newExportHandler()

	req := httptest.NewRequest(http.MethodGet, "/categories/x/export", nil)
	req.SetPathValue("id", "x")
	rec := httptest.NewRecorder()

	h.Category(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
