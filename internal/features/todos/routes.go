package todos

import (
	"github.com/gin-gonic/gin"

	"github.com/codetern/gotasks/internal/middleware"
	"github.com/codetern/gotasks/internal/pkg/token"
)

func RegisterRoutes(router *gin.RouterGroup, repo *Repository, tokens *token.Manager) {
	handler := NewHandler(repo)

	todos := router.Group("/todos")
	todos.Use(middleware.Auth(tokens))
	{
		todos.GET("", handler.List)
		todos.POST("", handler.Create)
		todos.DELETE("", handler.DeleteMany)

		todos.GET("/stats/dashboard", handler.Dashboard)

		todos.GET("/:id", handler.Get)
		todos.PUT("/:id", handler.Update)
		todos.DELETE("/:id", handler.Delete)
		todos.PATCH("/:id/toggle", handler.Toggle)
	}
}
