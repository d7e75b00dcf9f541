package routes

import (
	"net/http"

	"inspirahub/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes вешает все маршруты приложения на /api/v1
func RegisterRoutes(engine *gin.Engine, h *handlers.AppHandlers) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := engine.Group("/api/v1")

	h.Auth.RegisterRoutes(v1)
	h.User.RegisterRoutes(v1)
	h.Content.RegisterRoutes(v1)
	h.Comment.RegisterRoutes(v1)
}
