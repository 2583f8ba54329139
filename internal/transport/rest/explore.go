package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/collecto-app/collecto-backend/internal/domain"
)

// exploreService defines the minimal interface needed by ExploreHandler.
type exploreService interface {
	BrowseCategories(ctx context.Context, targetID int64) ([]domain.CategorySummary, error)
	BrowseItems(ctx context.Context, targetID, categoryID int64) ([]*domain.Item, error)
}

// ExploreHandler serves follow-gated browsing of other users' collections.
type ExploreHandler struct {
	svc exploreService
	log *slog.Logger
}

// NewExploreHandler creates an ExploreHandler.
func NewExploreHandler(svc exploreService, logger *slog.Logger) *ExploreHandler {
	return &ExploreHandler{svc: svc, log: logger.With("handler", "explore")}
}

// Categories handles GET /users/{id}/categories.
func (h *ExploreHandler) Categories(w http.ResponseWriter, r *http.Request) {
	targetID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	summaries, err := h.svc.BrowseCategories(r.Context(), targetID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategorySummaries(summaries))
}

// Items handles GET /users/{id}/categories/{categoryID}/items.
func (h *ExploreHandler) Items(w http.ResponseWriter, r *http.Request) {
	targetID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	categoryID, err := pathID(r, "categoryID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	items, err := h.svc.BrowseItems(r.Context(), targetID, categoryID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponses(items))
}
