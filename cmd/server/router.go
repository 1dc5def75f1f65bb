package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/davrell/storefront-api/internal/api"
	apiMiddleware "github.com/davrell/storefront-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. The token verification stage runs on every
// request and fails open to "unauthenticated"; RequireAuth guards the
// routes that need an identity. Only sign-up and sign-in are public,
// mirroring the stateless security policy of the API.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenService)
	r.Use(authMiddleware.Authenticate)

	authHandler := api.NewAuthHandler(app.credentialVerifier, app.tokenService)
	userHandler := api.NewUserHandler(app.userStore, app.cartStore)
	itemHandler := api.NewItemHandler(app.itemStore)
	cartHandler := api.NewCartHandler(app.userStore, app.itemStore, app.cartStore)
	orderHandler := api.NewOrderHandler(app.userStore, app.cartStore, app.orderStore)

	// Public endpoints
	r.Post("/login", authHandler.Login)

	r.Route("/api", func(r chi.Router) {
		r.Post("/user/create", userHandler.Create)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth)

			r.Get("/user/id/{id}", userHandler.GetByID)
			r.Get("/user/{username}", userHandler.GetByUsername)

			r.Get("/item", itemHandler.List)
			r.Get("/item/{id}", itemHandler.GetByID)
			r.Get("/item/name/{name}", itemHandler.GetByName)

			r.Post("/cart/addToCart", cartHandler.AddToCart)
			r.Post("/cart/removeFromCart", cartHandler.RemoveFromCart)

			r.Post("/order/submit/{username}", orderHandler.Submit)
			r.Get("/order/history/{username}", orderHandler.History)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
