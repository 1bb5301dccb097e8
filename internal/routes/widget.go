package routes

import (
	"umlwidget/internal/handlers"

	"github.com/gin-gonic/gin"
)

type WidgetRoutes struct {
	handler *handlers.WidgetHandler
}

func NewWidgetRoutes(handler *handlers.WidgetHandler) *WidgetRoutes {
	return &WidgetRoutes{handler: handler}
}

func (r *WidgetRoutes) RegisterRoutes(router *gin.RouterGroup) {
	widgets := router.Group("/widgets")
	{
		widgets.POST("", r.handler.CreateWidget)
		widgets.GET("/:id", r.handler.GetWidget)
		widgets.DELETE("/:id", r.handler.DeleteWidget)

		// Property menu
		widgets.GET("/:id/menu", r.handler.GetMenu)
		widgets.POST("/:id/actions", r.handler.HandleAction)

		widgets.GET("/:id/render", r.handler.Render)
	}

	router.GET("/documents/:documentId/widgets", r.handler.ListWidgets)
}
