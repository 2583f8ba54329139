package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/collecto-app/collecto-backend/internal/domain"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
}

// UserHandler serves the current-user profile endpoint.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

// Me handles GET /me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.CurrentUser(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{ID: user.ID, Email: user.Email})
}
