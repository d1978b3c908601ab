package http

import (
	"log/slog"
	"os"

	"github.com/caretrack/agency-backend-go/internal/domain/user"
	"github.com/caretrack/agency-backend-go/internal/handler/http/middleware"
	"github.com/caretrack/agency-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	visitHandler VisitHandler,
	documentationHandler DocumentationHandler,
	scheduleHandler ScheduleHandler,
	assignmentHandler AssignmentHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "caretrack-agency"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/visits", func(r chi.Router) {
				r.Get("/", visitHandler.List)
				r.Get("/{id}", visitHandler.Get)

				// Care staff clock events, visit identified in the body
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireCareStaff)
					r.Post("/clock-in", visitHandler.ClockIn)
					r.Post("/clock-out", visitHandler.ClockOut)
				})

				// Scheduler or admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionVisitManage))
					r.Post("/", visitHandler.Create)
					r.Post("/{id}/confirm", visitHandler.Confirm)
					r.Post("/{id}/cancel", visitHandler.Cancel)
					r.Post("/{id}/no-show", visitHandler.NoShow)
					r.Post("/{id}/reschedule", visitHandler.Reschedule)
				})
			})

			r.Route("/employee/documentation", func(r chi.Router) {
				r.Use(middleware.RequireCareStaff)
				r.Get("/", documentationHandler.List)
				r.Post("/", documentationHandler.Submit)
			})

			r.Route("/schedule", func(r chi.Router) {
				r.Get("/week", scheduleHandler.Week)
			})

			r.Route("/assignments", func(r chi.Router) {
				r.Use(middleware.RequireScheduler)
				r.Get("/", assignmentHandler.List)
				r.Post("/", assignmentHandler.Create)
				r.Post("/{id}/end", assignmentHandler.End)
			})
		})
	})

	return r
}
