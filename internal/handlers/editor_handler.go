package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"umlwidget/internal/middlewares"
	"umlwidget/internal/responses"
	"umlwidget/internal/services"
	"umlwidget/internal/tablemodel"
	"umlwidget/internal/utils"
)

type EditorHandler struct {
	editorService *services.EditorService
}

func NewEditorHandler(editorService *services.EditorService) *EditorHandler {
	return &EditorHandler{
		editorService: editorService,
	}
}

func (h *EditorHandler) OpenEditor(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid widget id format")
		return
	}

	handoff, err := h.editorService.OpenEditor(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Cannot open the editor")
		return
	}

	responses.Success(c, http.StatusOK, handoff, "Editor opened")
}

// SubmitEdit receives the table edited in the side panel. It must run behind
// middlewares.RequireEditorToken.
func (h *EditorHandler) SubmitEdit(c *gin.Context) {
	value, exists := c.Get(middlewares.EditorClaimsKey)
	if !exists {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}
	claims, ok := value.(*utils.EditorClaims)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	var table tablemodel.Table
	if err := c.ShouldBindJSON(&table); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	result, err := h.editorService.SubmitEdit(c.Request.Context(), claims, table)
	if err != nil {
		fail(c, err, "Cannot apply the edited table")
		return
	}

	responses.Success(c, http.StatusOK, result, "Table replaced")
}
