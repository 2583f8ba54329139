package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/collecto-app/collecto-backend/internal/domain"
	"github.com/collecto-app/collecto-backend/pkg/ctxutil"
)

// Logout revokes all active refresh tokens of the authenticated user.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out",
		slog.Int64("user_id", userID))

	return nil
}
