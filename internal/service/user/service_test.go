package user

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collecto-app/collecto-backend/internal/domain"
	"github.com/collecto-app/collecto-backend/pkg/ctxutil"
)

type mockUserRepo struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.User, error)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func TestService_CurrentUser_HappyPath(t *testing.T) {
	t.Parallel()
	users := &mockUserRepo{
		GetByIDFunc: func(_ context.Context, id int64) (*domain.User, error) {
			assert.Equal(t, int64(42), id)
			return &domain.User{ID: id, Email: "alice@example.com"}, nil
		},
	}
	svc := NewService(slog.Default(), users)

	u, err := svc.CurrentUser(ctxutil.WithUserID(context.Background(), 42))

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
}

func TestService_CurrentUser_Unauthenticated(t *testing.T) {
	t.Parallel()
	svc := NewService(slog.Default(), &mockUserRepo{})

	_, err := svc.CurrentUser(context.Background())

	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestService_CurrentUser_Missing(t *testing.T) {
	t.Parallel()
	svc := NewService(slog.Default(), &mockUserRepo{})

	_, err := svc.CurrentUser(ctxutil.WithUserID(context.Background(), 42))

	require.ErrorIs(t, err, domain.ErrNotFound)
}
