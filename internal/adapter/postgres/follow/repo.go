// Package follow implements the follow-graph repository using PostgreSQL.
package follow

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/collecto-app/collecto-backend/internal/adapter/postgres"
	"github.com/collecto-app/collecto-backend/internal/domain"
)

// Repo provides follow-edge persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new follow repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const existsSQL = `
SELECT EXISTS (SELECT 1 FROM follows WHERE follower_id = $1 AND followed_id = $2)`

// ON CONFLICT DO NOTHING makes the insert idempotent; the unique index on
// (follower_id, followed_id) is the final authority under concurrency.
const createSQL = `
INSERT INTO follows (follower_id, followed_id)
VALUES ($1, $2)
ON CONFLICT (follower_id, followed_id) DO NOTHING`

const listFollowingSQL = `
SELECT u.id, u.email
FROM follows f
JOIN users u ON u.id = f.followed_id
WHERE f.follower_id = $1
ORDER BY u.email`

// IsFollowing reports whether a follow edge exists from follower to target.
func (r *Repo) IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, existsSQL, followerID, followedID).Scan(&exists); err != nil {
		return false, fmt.Errorf("is following: %w", err)
	}

	return exists, nil
}

// Create inserts a follow edge. Returns false with no error when the edge
// already existed. Self-follow is rejected by a CHECK constraint and maps
// to domain.ErrValidation.
func (r *Repo) Create(ctx context.Context, followerID, followedID int64) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, createSQL, followerID, followedID)
	if err != nil {
		return false, postgres.MapError(err, "follow", followedID)
	}

	return tag.RowsAffected() > 0, nil
}

// ListFollowing returns the users followed by followerID, ordered by email.
// Returns an empty slice (not nil) when the user follows nobody.
func (r *Repo) ListFollowing(ctx context.Context, followerID int64) ([]domain.FollowedUser, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listFollowingSQL, followerID)
	if err != nil {
		return nil, fmt.Errorf("list following: %w", err)
	}
	defer rows.Close()

	result := []domain.FollowedUser{}
	for rows.Next() {
		var fu domain.FollowedUser
		if err := rows.Scan(&fu.ID, &fu.Email); err != nil {
			return nil, fmt.Errorf("list following: %w", err)
		}
		result = append(result, fu)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list following: %w", err)
	}

	return result, nil
}
