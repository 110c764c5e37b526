package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/CODINGDONG1211/Lifestyleapp/middleware"
	"github.com/CODINGDONG1211/Lifestyleapp/repository"
	"github.com/CODINGDONG1211/Lifestyleapp/store"
)

// RouterConfig carries everything the API router needs.
type RouterConfig struct {
	UserRepo    *repository.UserRepository
	Sessions    *store.Manager
	Logger      *slog.Logger
	JWTSecret   []byte
	TokenTTL    time.Duration
	CORSOrigins []string
}

// NewRouter builds the full API router: public auth and health endpoints,
// and the JWT-protected state, calendar, analytics and export endpoints.
func NewRouter(cfg RouterConfig) *chi.Mux {
	authHandler := NewAuthHandler(cfg.UserRepo, cfg.Sessions, cfg.Logger, cfg.JWTSecret, cfg.TokenTTL)
	taskHandler := NewTaskHandler(cfg.Sessions, cfg.Logger)
	habitHandler := NewHabitHandler(cfg.Sessions, cfg.Logger)
	workoutHandler := NewWorkoutHandler(cfg.Sessions, cfg.Logger)
	eventHandler := NewEventHandler(cfg.Sessions, cfg.Logger)
	calendarHandler := NewCalendarHandler(cfg.Sessions, cfg.Logger)
	analyticsHandler := NewAnalyticsHandler(cfg.Sessions, cfg.Logger)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logger(cfg.Logger))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Public routes
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret, cfg.Logger))
			r.Post("/logout", authHandler.Logout)
		})
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret, cfg.Logger))

		r.Route("/api/tasks", func(r chi.Router) {
			r.Get("/", taskHandler.List)
			r.Post("/", taskHandler.Create)
			r.Put("/{id}", taskHandler.Update)
			r.Delete("/{id}", taskHandler.Delete)
		})

		r.Route("/api/habits", func(r chi.Router) {
			r.Get("/", habitHandler.List)
			r.Post("/", habitHandler.Create)
			r.Put("/{id}", habitHandler.Update)
			r.Delete("/{id}", habitHandler.Delete)
			r.Post("/{id}/toggle", habitHandler.ToggleDay)
		})

		r.Route("/api/workouts", func(r chi.Router) {
			r.Get("/", workoutHandler.List)
			r.Post("/", workoutHandler.Create)
			r.Put("/{id}", workoutHandler.Update)
			r.Delete("/{id}", workoutHandler.Delete)
			r.Get("/{id}/export", workoutHandler.Export)
		})

		r.Route("/api/events", func(r chi.Router) {
			r.Get("/", eventHandler.List)
			r.Post("/", eventHandler.Create)
			r.Post("/drag", eventHandler.CreateFromDrag)
			r.Put("/{id}", eventHandler.Update)
			r.Delete("/{id}", eventHandler.Delete)
			r.Get("/{id}/calendar-link", eventHandler.CalendarLink)
		})

		r.Route("/api/calendar", func(r chi.Router) {
			r.Get("/month", calendarHandler.Month)
			r.Get("/day", calendarHandler.Day)
			r.Get("/navigate", calendarHandler.Navigate)
		})

		r.Get("/api/analytics/summary", analyticsHandler.Summary)
		r.Get("/api/exercises", Exercises)
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
