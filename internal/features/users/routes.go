package users

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/codetern/gotasks/internal/config"
	"github.com/codetern/gotasks/internal/middleware"
	"github.com/codetern/gotasks/internal/pkg/ratelimit"
	"github.com/codetern/gotasks/internal/pkg/token"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config, tokens *token.Manager, purger TodoPurger, log *zap.Logger) {
	repo := NewRepository(db)
	handler := NewHandler(repo, tokens, purger, cfg.BcryptCost, log)

	// Credential endpoints are rate limited per client IP.
	limiter := ratelimit.New(10, time.Minute)
	limiter.StartCleanup(5 * time.Minute)

	users := router.Group("/users")
	{
		public := users.Group("")
		public.Use(ratelimit.Middleware(limiter))
		{
			public.POST("/register", handler.Register)
			public.POST("/login", handler.Login)
		}

		protected := users.Group("")
		protected.Use(middleware.Auth(tokens))
		{
			protected.GET("/profile", handler.Profile)
			protected.PUT("/profile", handler.UpdateProfile)
			protected.PUT("/password", handler.ChangePassword)
			protected.DELETE("/delete", handler.Delete)
		}
	}
}
