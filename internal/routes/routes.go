package routes

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"

	"github.com/swipeschedule/ss_backendl/config"
	authHandlers "github.com/swipeschedule/ss_backendl/internal/handlers/auth"
	shiftHandlers "github.com/swipeschedule/ss_backendl/internal/handlers/shift"
	"github.com/swipeschedule/ss_backendl/internal/middleware"
	"github.com/swipeschedule/ss_backendl/internal/pkg/response"
	"github.com/swipeschedule/ss_backendl/internal/repositories"
	authService "github.com/swipeschedule/ss_backendl/internal/services/auth"
)

// Setup initializes and returns the configured router.
func Setup(cfg *config.Config, database *sql.DB, shifts shiftHandlers.Lister) *chi.Mux {
	jwtAuth := jwtauth.New("HS256", []byte(cfg.JwtSecret), nil)
	jwtService := authService.NewJWTService(cfg.JwtSecret)

	userRepo := repositories.NewUserRepository(database)
	authHandler := authHandlers.NewAuthHandler(userRepo, jwtService)
	profileHandler := authHandlers.NewProfileHandler(userRepo)

	router := chi.NewRouter()
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(jwtauth.Verifier(jwtAuth))
	router.Use(middleware.AddUserIDToContext())

	// Public routes
	router.Post("/api/auth/register", authHandler.RegisterHandler)
	router.Post("/api/auth/login", authHandler.LoginHandler)
	router.Get("/api/shifts", shiftHandlers.GetShiftsHandler(shifts))
	router.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		response.RespondWithJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Authenticated routes
	router.Group(func(r chi.Router) {
		r.Use(jwtauth.Authenticator(jwtAuth))

		r.Get("/api/profile", profileHandler.GetProfile)
		r.Post("/api/logout", authHandler.LogoutHandler)
		r.Get("/api/shifts/export", shiftHandlers.ExportShiftsHandler(shifts))
	})

	return router
}
