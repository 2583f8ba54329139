package domain

import "time"

// Follow is a directed edge granting the follower read access to the
// followed user's categories and items.
type Follow struct {
	ID         int64
	FollowerID int64
	FollowedID int64
	CreatedAt  time.Time
}

// FollowedUser is the list-view form of a followed user.
type FollowedUser struct {
	ID    int64
	Email string
}
