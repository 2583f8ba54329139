package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/collecto-app/collecto-backend/internal/domain"
	"github.com/collecto-app/collecto-backend/internal/service/item"
)

// itemService defines the minimal interface needed by ItemHandler.
type itemService interface {
	CreateItem(ctx context.Context, input item.CreateItemInput) (*domain.Item, error)
	GetItem(ctx context.Context, itemID int64) (*domain.Item, error)
	ListItems(ctx context.Context, input item.ListItemsInput) ([]*domain.Item, error)
	UpdateItem(ctx context.Context, input item.UpdateItemInput) (*domain.Item, error)
	DeleteItem(ctx context.Context, input item.DeleteItemInput) error
}

// ItemHandler serves item REST endpoints.
type ItemHandler struct {
	svc itemService
	log *slog.Logger
}

// NewItemHandler creates an ItemHandler.
func NewItemHandler(svc itemService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{svc: svc, log: logger.With("handler", "item")}
}

type valueRequest struct {
	FieldID int64  `json:"field_id"`
	Value   string `json:"value"`
}

type itemRequest struct {
	CategoryID int64          `json:"category_id"`
	Values     []valueRequest `json:"values"`
}

type valueResponse struct {
	AttributeName *string `json:"attribute_name"`
	Value         string  `json:"value"`
	FieldID       int64   `json:"field_id"`
}

type itemResponse struct {
	ID         int64           `json:"id"`
	CategoryID int64           `json:"category_id"`
	Values     []valueResponse `json:"values"`
}

// Create handles POST /items.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateItem(r.Context(), item.CreateItemInput{
		CategoryID: req.CategoryID,
		Values:     toValueInputs(req.Values),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(created))
}

// Get handles GET /items/{id}.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	found, err := h.svc.GetItem(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(found))
}

// List handles GET /categories/{id}/items?limit=50&offset=0.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	items, err := h.svc.ListItems(r.Context(), item.ListItemsInput{
		CategoryID: categoryID,
		Limit:      queryInt(r, "limit", 0),
		Offset:     queryInt(r, "offset", 0),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponses(items))
}

// Update handles PUT /items/{id}. The supplied values replace the item's
// whole value set.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateItem(r.Context(), item.UpdateItemInput{
		ItemID:     id,
		CategoryID: req.CategoryID,
		Values:     toValueInputs(req.Values),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(updated))
}

// Delete handles DELETE /items/{id}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := h.svc.DeleteItem(r.Context(), item.DeleteItemInput{ItemID: id}); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toValueInputs(reqs []valueRequest) []domain.ValueInput {
	values := make([]domain.ValueInput, 0, len(reqs))
	for _, v := range reqs {
		values = append(values, domain.ValueInput{FieldID: v.FieldID, Value: v.Value})
	}
	return values
}

func toItemResponse(it *domain.Item) itemResponse {
	values := make([]valueResponse, 0, len(it.Values))
	for _, v := range it.Values {
		values = append(values, valueResponse{
			AttributeName: v.AttributeName,
			Value:         v.Value,
			FieldID:       v.FieldID,
		})
	}
	return itemResponse{
		ID:         it.ID,
		CategoryID: it.CategoryID,
		Values:     values,
	}
}

func toItemResponses(items []*domain.Item) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out
}
