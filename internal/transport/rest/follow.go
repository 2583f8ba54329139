package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/collecto-app/collecto-backend/internal/domain"
	"github.com/collecto-app/collecto-backend/internal/service/follow"
)

// followService defines the minimal interface needed by FollowHandler.
type followService interface {
	FollowUser(ctx context.Context, targetEmail string) (follow.Outcome, *domain.FollowedUser, error)
	ListFollowing(ctx context.Context) ([]domain.FollowedUser, error)
}

// FollowHandler serves follow-graph REST endpoints.
type FollowHandler struct {
	svc followService
	log *slog.Logger
}

// NewFollowHandler creates a FollowHandler.
func NewFollowHandler(svc followService, logger *slog.Logger) *FollowHandler {
	return &FollowHandler{svc: svc, log: logger.With("handler", "follow")}
}

type followedUserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type followResponse struct {
	Status string               `json:"status"`
	User   followedUserResponse `json:"user"`
}

// Follow handles POST /follow/{email}. Following an already-followed user
// succeeds with status "already_following".
func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	outcome, target, err := h.svc.FollowUser(r.Context(), email)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	status := http.StatusCreated
	statusText := "following"
	if outcome == follow.OutcomeAlreadyFollowing {
		status = http.StatusOK
		statusText = "already_following"
	}

	writeJSON(w, status, followResponse{
		Status: statusText,
		User:   followedUserResponse{ID: target.ID, Email: target.Email},
	})
}

// ListFollowing handles GET /following.
func (h *FollowHandler) ListFollowing(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListFollowing(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]followedUserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, followedUserResponse{ID: u.ID, Email: u.Email})
	}

	writeJSON(w, http.StatusOK, out)
}
