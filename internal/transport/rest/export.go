package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/collecto-app/collecto-backend/internal/service/export"
)

// exportService defines the minimal interface needed by ExportHandler.
type exportService interface {
	ExportCategory(ctx context.Context, categoryID int64) (*export.Document, error)
}

// ExportHandler serves category export downloads.
type ExportHandler struct {
	svc exportService
	log *slog.Logger
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(svc exportService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{svc: svc, log: logger.With("handler", "export")}
}

// Category handles GET /categories/{id}/export.
func (h *ExportHandler) Category(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	doc, err := h.svc.ExportCategory(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(doc.Content) //nolint:errcheck
}
