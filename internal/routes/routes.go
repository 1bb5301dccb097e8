package routes

import (
	"net/http"

	"umlwidget/internal/handlers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine, widgetHandler *handlers.WidgetHandler, editorHandler *handlers.EditorHandler, editorSecret []byte) {
	api := router.Group("/api/v1")

	widgetRoutes := NewWidgetRoutes(widgetHandler)
	widgetRoutes.RegisterRoutes(api)

	editorRoutes := NewEditorRoutes(editorHandler, editorSecret)
	editorRoutes.RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
