package http

import (
	"github.com/daveshb/taskload/internal/adapter/http/handlers"
	"github.com/daveshb/taskload/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	helloHandler *handlers.HelloHandler,
	taskHandler *handlers.TaskHandler,
	userHandler *handlers.UserHandler,
	authHandler *handlers.AuthHandler,
	productHandler *handlers.ProductHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
		api.GET("/hello", helloHandler.Hello)
		api.POST("/tasks", taskHandler.CreateTask)
		api.GET("/tasks", taskHandler.ListTasks)
		api.POST("/user", userHandler.Register)
		api.GET("/user", userHandler.ListUsers)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/products", productHandler.CreateProduct)
	}
}
