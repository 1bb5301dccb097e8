package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"umlwidget/internal/menu"
	"umlwidget/internal/responses"
	"umlwidget/internal/services"
	"umlwidget/internal/utils"
)

type WidgetHandler struct {
	widgetService *services.WidgetService
	editorService *services.EditorService
}

func NewWidgetHandler(widgetService *services.WidgetService, editorService *services.EditorService) *WidgetHandler {
	return &WidgetHandler{
		widgetService: widgetService,
		editorService: editorService,
	}
}

func (h *WidgetHandler) CreateWidget(c *gin.Context) {
	var req services.CreateWidgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	widget, err := h.widgetService.CreateWidget(c.Request.Context(), req)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Error while creating the widget")
		return
	}

	responses.Success(c, http.StatusCreated, widget, "Widget created successfully")
}

func (h *WidgetHandler) GetWidget(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid widget id format")
		return
	}

	widget, err := h.widgetService.GetWidget(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Cannot load the widget")
		return
	}

	responses.Success(c, http.StatusOK, widget, "Widget fetched successfully")
}

func (h *WidgetHandler) ListWidgets(c *gin.Context) {
	documentID := c.Param("documentId")
	if documentID == "" {
		responses.Fail(c, http.StatusBadRequest, nil, "Document id is required")
		return
	}

	widgets, err := h.widgetService.ListWidgets(c.Request.Context(), documentID)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Cannot list widgets")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"widgets": widgets}, "Widgets fetched successfully")
}

func (h *WidgetHandler) DeleteWidget(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid widget id format")
		return
	}

	if err := h.widgetService.DeleteWidget(c.Request.Context(), id); err != nil {
		fail(c, err, "Cannot delete the widget")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Widget deleted successfully")
}

func (h *WidgetHandler) GetMenu(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid widget id format")
		return
	}

	widget, err := h.widgetService.GetWidget(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Cannot load the widget")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"items": widget.State.Menu}, "Menu built successfully")
}

// HandleAction receives a property-menu event. "openEditor" starts a side-panel
// session; every other event goes through the table editor.
func (h *WidgetHandler) HandleAction(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid widget id format")
		return
	}

	var ev menu.Event
	if err := c.ShouldBindJSON(&ev); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	if ev.PropertyName == menu.PropOpenEditor {
		handoff, err := h.editorService.OpenEditor(c.Request.Context(), id)
		if err != nil {
			fail(c, err, "Cannot open the editor")
			return
		}
		responses.Success(c, http.StatusOK, handoff, "Editor opened")
		return
	}

	result, err := h.widgetService.HandleMenuEvent(c.Request.Context(), id, ev)
	if err != nil {
		fail(c, err, "Cannot apply the action")
		return
	}

	message := "Action applied"
	if !result.Applied {
		message = "Nothing changed"
	}
	responses.Success(c, http.StatusOK, result, message)
}

func (h *WidgetHandler) Render(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid widget id format")
		return
	}

	body, contentType, err := h.widgetService.Render(c.Request.Context(), id, c.Query("format"))
	if err != nil {
		fail(c, err, "Cannot render the widget")
		return
	}

	c.Data(http.StatusOK, contentType, []byte(body))
}

// fail answers with the status code matching a service error.
func fail(c *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrWidgetNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrEditorSessionGone):
		status = http.StatusGone
	case errors.Is(err, services.ErrEditorTokenInvalid):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrUnsupportedFormat):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrNotExportable):
		status = http.StatusUnprocessableEntity
	}
	responses.Fail(c, status, err, message)
}
