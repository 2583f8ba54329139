package rest

import "net/http"

// Handlers groups all REST handlers for router construction.
type Handlers struct {
	Auth     *AuthHandler
	User     *UserHandler
	Category *CategoryHandler
	Item     *ItemHandler
	Follow   *FollowHandler
	Explore  *ExploreHandler
	Export   *ExportHandler
	Health   *HealthHandler
}

// NewRouter builds the HTTP route table. Authentication is enforced in the
// service layer via the request context; the auth middleware only resolves
// bearer tokens into user IDs.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.HandleFunc("POST /auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /auth/logout", h.Auth.Logout)

	mux.HandleFunc("GET /me", h.User.Me)

	mux.HandleFunc("POST /categories", h.Category.Create)
	mux.HandleFunc("GET /categories", h.Category.List)
	mux.HandleFunc("GET /categories/{id}", h.Category.Get)
	mux.HandleFunc("POST /categories/{id}/attributes", h.Category.AddAttributes)
	mux.HandleFunc("DELETE /categories/{id}", h.Category.Delete)
	mux.HandleFunc("GET /categories/{id}/items", h.Item.List)
	mux.HandleFunc("GET /categories/{id}/export", h.Export.Category)

	mux.HandleFunc("POST /items", h.Item.Create)
	mux.HandleFunc("GET /items/{id}", h.Item.Get)
	mux.HandleFunc("PUT /items/{id}", h.Item.Update)
	mux.HandleFunc("DELETE /items/{id}", h.Item.Delete)

	mux.HandleFunc("POST /follow/{email}", h.Follow.Follow)
	mux.HandleFunc("GET /following", h.Follow.ListFollowing)

	mux.HandleFunc("GET /users/{id}/categories", h.Explore.Categories)
	mux.HandleFunc("GET /users/{id}/categories/{categoryID}/items", h.Explore.Items)

	return mux
}
