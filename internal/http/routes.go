package http

import (
	"os"

	"taskboard/internal/config"
	"taskboard/internal/http/handlers"
	"taskboard/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config) {
	h := handlers.NewHandler(db, cfg)
	healthHandler := handlers.NewHealthHandler(db, os.Getenv("APP_VERSION"))

	r.SetHTMLTemplate(handlers.PageTemplates())

	r.Use(middleware.Metrics())
	r.Use(middleware.Session([]byte(cfg.JWTSecret)))

	// Health checks
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", h.Login)
	auth.DELETE("/login", h.Logout)
	auth.GET("/login", h.MethodNotAllowed)
	auth.POST("/register", h.Register)
	auth.GET("/register", h.MethodNotAllowed)

	tasks := api.Group("/tasks")
	tasks.GET("", h.ListTasks)
	tasks.POST("", h.CreateTask)
	tasks.PUT("", h.UpdateTask)
	tasks.DELETE("", h.DeleteTask)

	// Templated pages
	r.GET("/", h.PageHome)
	r.GET("/auth/login", h.PageLogin)
	r.GET("/auth/register", h.PageRegister)
	r.GET("/dashboard", h.PageDashboard)
}
