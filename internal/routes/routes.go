package routes

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/codetern/gotasks/internal/config"
	"github.com/codetern/gotasks/internal/features/todos"
	"github.com/codetern/gotasks/internal/features/users"
	"github.com/codetern/gotasks/internal/pkg/token"
)

// todoPurgeAdapter adapts todos.Repository to users.TodoPurger so the
// account-deletion cascade can run without coupling the packages.
type todoPurgeAdapter struct {
	repo *todos.Repository
}

func (a *todoPurgeAdapter) DeleteAllByUser(ctx context.Context, userID string) (int64, error) {
	return a.repo.DeleteAllByUser(ctx, userID)
}

// SetupRoutes registers all feature routes under /api.
func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config, log *zap.Logger) {
	api := router.Group("/api")

	tokens := token.NewManager(cfg.JWTSecret, time.Duration(cfg.JWTExpireDays)*24*time.Hour)
	todosRepo := todos.NewRepository(db)

	users.RegisterRoutes(api, db, cfg, tokens, &todoPurgeAdapter{repo: todosRepo}, log)
	todos.RegisterRoutes(api, todosRepo, tokens)
}
