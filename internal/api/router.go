package api

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mbelda/fridgechef-be/internal/api/handlers"
	"github.com/mbelda/fridgechef-be/internal/auth"
	"github.com/mbelda/fridgechef-be/internal/generation"
	"github.com/mbelda/fridgechef-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	db *sql.DB,
	tokens *auth.TokenManager,
	userService services.UserServiceProvider,
	recipeService services.RecipeServiceProvider,
	eventService services.EventServiceProvider,
	generator generation.Generator,
	allowedOrigins []string,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, tokens, eventService)
	recipeHandler := handlers.NewRecipeHandler(recipeService, generator, eventService)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
	})

	// Generation works anonymously; a valid token upgrades the request so
	// the result is also appended to that user's history.
	r.With(tokens.Optional()).Post("/recipe", recipeHandler.Generate)

	r.Route("/recipes", func(r chi.Router) {
		r.Use(tokens.Require())
		r.Get("/", recipeHandler.List)
		r.Delete("/", recipeHandler.Delete)
	})

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if err := db.Ping(); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	return r
}
