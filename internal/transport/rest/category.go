package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/collecto-app/collecto-backend/internal/domain"
	"github.com/collecto-app/collecto-backend/internal/service/catalog"
)

// catalogService defines the minimal interface needed by CategoryHandler.
type catalogService interface {
	CreateCategory(ctx context.Context, input catalog.CreateCategoryInput) (*domain.Category, error)
	GetCategory(ctx context.Context, categoryID int64) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.CategorySummary, error)
	AddAttributes(ctx context.Context, input catalog.AddAttributesInput) ([]domain.Attribute, error)
	DeleteCategory(ctx context.Context, input catalog.DeleteCategoryInput) error
}

// CategoryHandler serves category REST endpoints.
type CategoryHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc catalogService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, log: logger.With("handler", "category")}
}

type attributeDefRequest struct {
	Name     string `json:"name"`
	DataType string `json:"data_type"`
}

type createCategoryRequest struct {
	Name       string                `json:"name"`
	Attributes []attributeDefRequest `json:"attributes"`
}

type addAttributesRequest struct {
	Attributes []attributeDefRequest `json:"attributes"`
}

type categorySummaryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type attributeResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	AttributeType string `json:"attribute_type"`
}

type categoryResponse struct {
	ID         int64               `json:"id"`
	Name       string              `json:"name"`
	Attributes []attributeResponse `json:"attributes"`
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := h.svc.CreateCategory(r.Context(), catalog.CreateCategoryInput{
		Name:       req.Name,
		Attributes: toAttributeDefs(req.Attributes),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, categorySummaryResponse{
		ID:   category.ID,
		Name: category.Name,
	})
}

// List handles GET /categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.ListCategories(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategorySummaries(summaries))
}

// Get handles GET /categories/{id}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	category, err := h.svc.GetCategory(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponse(category))
}

// AddAttributes handles POST /categories/{id}/attributes.
func (h *CategoryHandler) AddAttributes(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	var req addAttributesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	attrs, err := h.svc.AddAttributes(r.Context(), catalog.AddAttributesInput{
		CategoryID: id,
		Attributes: toAttributeDefs(req.Attributes),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAttributeResponses(attrs))
}

// Delete handles DELETE /categories/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := h.svc.DeleteCategory(r.Context(), catalog.DeleteCategoryInput{CategoryID: id}); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toAttributeDefs(reqs []attributeDefRequest) []catalog.AttributeDefInput {
	defs := make([]catalog.AttributeDefInput, 0, len(reqs))
	for _, a := range reqs {
		defs = append(defs, catalog.AttributeDefInput{Name: a.Name, Type: a.DataType})
	}
	return defs
}

func toCategorySummaries(summaries []domain.CategorySummary) []categorySummaryResponse {
	out := make([]categorySummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, categorySummaryResponse{ID: s.ID, Name: s.Name})
	}
	return out
}

func toAttributeResponses(attrs []domain.Attribute) []attributeResponse {
	out := make([]attributeResponse, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, attributeResponse{
			ID:            a.ID,
			Name:          a.Name,
			AttributeType: a.Type,
		})
	}
	return out
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:         c.ID,
		Name:       c.Name,
		Attributes: toAttributeResponses(c.Attributes),
	}
}
