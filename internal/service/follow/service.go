// Package follow maintains the directed follow graph that gates read access
// to other users' collections.
package follow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/collecto-app/collecto-backend/internal/domain"
	"github.com/collecto-app/collecto-backend/pkg/ctxutil"
)

type followRepo interface {
	IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error)
	Create(ctx context.Context, followerID, followedID int64) (bool, error)
	ListFollowing(ctx context.Context, followerID int64) ([]domain.FollowedUser, error)
}

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Outcome reports what a FollowUser call did.
type Outcome int

const (
	// OutcomeCreated means a new follow edge was created.
	OutcomeCreated Outcome = iota
	// OutcomeAlreadyFollowing means the edge already existed; not an error.
	OutcomeAlreadyFollowing
)

// Service provides follow-graph operations.
type Service struct {
	follows followRepo
	users   userRepo
	log     *slog.Logger
}

// NewService creates a new follow service.
func NewService(log *slog.Logger, follows followRepo, users userRepo) *Service {
	return &Service{
		follows: follows,
		users:   users,
		log:     log.With("service", "follow"),
	}
}

// FollowUser creates a follow edge to the user identified by email.
// Idempotent: following an already-followed user reports
// OutcomeAlreadyFollowing without error. Self-follow is rejected.
func (s *Service) FollowUser(ctx context.Context, targetEmail string) (Outcome, *domain.FollowedUser, error) {
	followerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, nil, domain.ErrUnauthorized
	}

	email := strings.ToLower(strings.TrimSpace(targetEmail))
	if email == "" {
		return 0, nil, domain.NewValidationError("email", "required")
	}

	target, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, nil, fmt.Errorf("user %q: %w", email, domain.ErrNotFound)
		}
		return 0, nil, fmt.Errorf("get target user: %w", err)
	}

	if target.ID == followerID {
		return 0, nil, domain.NewValidationError("email", "cannot follow yourself")
	}

	created, err := s.follows.Create(ctx, followerID, target.ID)
	if err != nil {
		// A concurrent duplicate insert lands here via the unique index;
		// report it the same way as the ON CONFLICT no-op path.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return OutcomeAlreadyFollowing, &domain.FollowedUser{ID: target.ID, Email: target.Email}, nil
		}
		return 0, nil, fmt.Errorf("create follow: %w", err)
	}

	followed := &domain.FollowedUser{ID: target.ID, Email: target.Email}
	if !created {
		return OutcomeAlreadyFollowing, followed, nil
	}

	s.log.InfoContext(ctx, "follow created",
		slog.Int64("follower_id", followerID),
		slog.Int64("followed_id", target.ID),
	)

	return OutcomeCreated, followed, nil
}

// ListFollowing returns the users followed by the caller.
func (s *Service) ListFollowing(ctx context.Context) ([]domain.FollowedUser, error) {
	followerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	following, err := s.follows.ListFollowing(ctx, followerID)
	if err != nil {
		return nil, fmt.Errorf("list following: %w", err)
	}

	return following, nil
}

// IsFollowing reports whether the caller follows the target user. It is the
// gate for every cross-user read.
func (s *Service) IsFollowing(ctx context.Context, targetID int64) (bool, error) {
	followerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	following, err := s.follows.IsFollowing(ctx, followerID, targetID)
	if err != nil {
		return false, fmt.Errorf("is following: %w", err)
	}

	return following, nil
}
