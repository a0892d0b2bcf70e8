package rest

import "net/http"

// Handlers groups the handler set the router mounts.
type Handlers struct {
	Auth       *AuthHandler
	Gallery    *GalleryHandler
	Generation *GenerationHandler
	Health     *HealthHandler
}

// NewRouter builds the API route table.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)
	mux.HandleFunc("GET /api/auth/me", h.Auth.Me)

	mux.HandleFunc("GET /api/gallery", h.Gallery.Feed)
	mux.HandleFunc("GET /api/profile/items", h.Gallery.UserItems)
	mux.HandleFunc("POST /api/items/{id}/like", h.Gallery.Like)
	mux.HandleFunc("POST /api/items/{id}/publish", h.Gallery.Publish)
	mux.HandleFunc("POST /api/items/{id}/view", h.Gallery.View)
	mux.HandleFunc("POST /api/items/{id}/remix", h.Gallery.Remix)
	mux.HandleFunc("DELETE /api/items/{id}", h.Gallery.Delete)
	mux.HandleFunc("GET /api/items/detail", h.Gallery.Detail)
	mux.HandleFunc("DELETE /api/items/detail", h.Gallery.CloseDetail)

	mux.HandleFunc("POST /api/generation", h.Generation.Generate)
	mux.HandleFunc("POST /api/generation/optimize", h.Generation.Optimize)
	mux.HandleFunc("POST /api/generation/translate", h.Generation.Translate)
	mux.HandleFunc("PUT /api/generation/credential", h.Generation.Credential)
	mux.HandleFunc("POST /api/generation/reset", h.Generation.Reset)
	mux.HandleFunc("GET /api/generation/seed", h.Generation.Seed)

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	return mux
}
