package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/moath17/taskdashbord-sub001/internal/config"
	"github.com/moath17/taskdashbord-sub001/internal/handler/http/middleware"
	"github.com/moath17/taskdashbord-sub001/internal/pkg/jwt"
)

func NewRouter(cfg *config.Config, JWTService jwt.Service, analyticsHandler AnalyticsHandler, dashboardHandler DashboardHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "taskdashbord"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Get("/dashboard", dashboardHandler.GetSummary)

			r.Route("/analytics", func(r chi.Router) {
				// The whole subtree is gated by the startup-time flag; the
				// reporting core never sees it.
				r.Use(middleware.AnalyticsEnabled(cfg.App.EnableSmartAnalytics))

				r.Get("/goals", analyticsHandler.GetGoalRisks)
				r.Get("/dashboard", analyticsHandler.GetDashboard)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/workload", analyticsHandler.GetWorkloads)
				})
			})
		})
	})
	return r
}
