package main

import (
	"fmt"
	"net/http"

	"github.com/caretrack/agency-backend-go/internal/config"
	appHTTP "github.com/caretrack/agency-backend-go/internal/handler/http"
	"github.com/caretrack/agency-backend-go/internal/pkg/database"
	"github.com/caretrack/agency-backend-go/internal/pkg/jwt"
	"github.com/caretrack/agency-backend-go/internal/repository/postgresql"
	assignmentService "github.com/caretrack/agency-backend-go/internal/service/assignment"
	authService "github.com/caretrack/agency-backend-go/internal/service/auth"
	scheduleService "github.com/caretrack/agency-backend-go/internal/service/schedule"
	visitService "github.com/caretrack/agency-backend-go/internal/service/visit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, database.PoolSettings{
		MaxConns: int32(cfg.Database.MaxConns),
		MinConns: int32(cfg.Database.MinConns),
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	clientRepo := postgresql.NewClientRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	visitRepo := postgresql.NewVisitRepository(db)
	visitTaskRepo := postgresql.NewVisitTaskRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	resolver := assignmentService.NewResolver(visitRepo, assignmentRepo)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	assignmentSvc := assignmentService.NewAssignmentService(assignmentRepo, employeeRepo, clientRepo)
	visitSvc := visitService.NewVisitService(visitRepo, visitTaskRepo, clientRepo, employeeRepo, resolver)
	scheduleSvc := scheduleService.NewScheduleService(visitRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	visitHandler := appHTTP.NewVisitHandler(visitSvc)
	documentationHandler := appHTTP.NewDocumentationHandler(visitSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	assignmentHandler := appHTTP.NewAssignmentHandler(assignmentSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		visitHandler,
		documentationHandler,
		scheduleHandler,
		assignmentHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
