package routes

import (
	"umlwidget/internal/handlers"
	"umlwidget/internal/middlewares"

	"github.com/gin-gonic/gin"
)

type EditorRoutes struct {
	handler *handlers.EditorHandler
	secret  []byte
}

func NewEditorRoutes(handler *handlers.EditorHandler, secret []byte) *EditorRoutes {
	return &EditorRoutes{handler: handler, secret: secret}
}

func (r *EditorRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/widgets/:id/editor", r.handler.OpenEditor)

	editor := router.Group("/editor")
	editor.Use(middlewares.RequireEditorToken(r.secret))
	{
		editor.PUT("", r.handler.SubmitEdit)
	}
}
