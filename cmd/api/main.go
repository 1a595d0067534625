package main

import (
	"fmt"
	"net/http"

	"github.com/moath17/taskdashbord-sub001/internal/config"
	appHTTP "github.com/moath17/taskdashbord-sub001/internal/handler/http"
	"github.com/moath17/taskdashbord-sub001/internal/pkg/database"
	"github.com/moath17/taskdashbord-sub001/internal/pkg/jwt"
	"github.com/moath17/taskdashbord-sub001/internal/repository/postgresql"
	analyticsService "github.com/moath17/taskdashbord-sub001/internal/service/analytics"
	dashboardService "github.com/moath17/taskdashbord-sub001/internal/service/dashboard"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	goalRepo := postgresql.NewGoalRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	planRepo := postgresql.NewPlanRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	riskEngine := analyticsService.NewRiskEngine(cfg.Analytics.MaxRecommendedTasks)
	analyticsSvc := analyticsService.NewAnalyticsService(goalRepo, taskRepo, userRepo, riskEngine)
	dashboardSvc := dashboardService.NewDashboardService(taskRepo, userRepo, planRepo)

	analyticsHandler := appHTTP.NewAnalyticsHandler(analyticsSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(cfg, JWTService, analyticsHandler, dashboardHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
