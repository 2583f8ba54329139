package auth

import "github.com/collecto-app/collecto-backend/internal/domain"

// AuthResult is returned by Register, Login and Refresh.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         *domain.User
}
