package routes

import (
	"net/http"
	"time"

	"github.com/Dosada05/teamsync/handlers"
	"github.com/Dosada05/teamsync/middleware"
	"github.com/Dosada05/teamsync/models"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Dosada05/teamsync/docs"
)

type Config struct {
	JWTSecret      string
	CronSecret     string
	AllowedOrigins []string
	RequestTimeout time.Duration
}

type Handlers struct {
	Schedule  *handlers.ScheduleHandler
	Session   *handlers.SessionHandler
	WebSocket *handlers.WebSocketHandler
	Health    *handlers.HealthHandler
}

func SetupRoutes(router chi.Router, cfg Config, h Handlers) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", h.Health.Health)
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// websocket-соединения живут дольше таймаута запросов
	router.Route("/ws", func(r chi.Router) {
		r.Get("/sessions/{sessionID}", h.WebSocket.ServeSessionWs)
		r.Get("/tournaments/{tournamentID}", h.WebSocket.ServeTournamentWs)
	})

	router.Route("/api", func(r chi.Router) {
		if cfg.RequestTimeout > 0 {
			r.Use(chiMiddleware.Timeout(cfg.RequestTimeout))
		}

		r.Route("/tournaments/{tournamentID}", func(r chi.Router) {
			r.Get("/fixtures", h.Schedule.ListFixtures)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Authenticate(cfg.JWTSecret))
				r.Use(middleware.RequireRole(models.RoleManager, models.RoleAdmin))
				r.Post("/schedule", h.Schedule.GenerateSchedule)
			})
		})

		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Get("/", h.Session.GetSession)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Authenticate(cfg.JWTSecret))
				r.Use(middleware.RequireRole(models.RoleManager, models.RoleAdmin))
				r.Post("/sync", h.Session.SyncSession)
			})
		})

		r.With(middleware.RequireCronSecret(cfg.CronSecret)).Post("/cron/sync-sessions", h.Session.SyncRecent)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"the requested resource could not be found"}` + "\n"))
	})
}
