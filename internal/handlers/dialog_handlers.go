package handlers

import (
	"net/http"

	"github.com/epeers/registry-warnings/internal/models"
	"github.com/epeers/registry-warnings/internal/services"
	"github.com/gin-gonic/gin"
)

// DialogHandler handles dialog resolution endpoints
type DialogHandler struct {
	notificationSvc *services.NotificationService
}

// NewDialogHandler creates a new DialogHandler
func NewDialogHandler(notificationSvc *services.NotificationService) *DialogHandler {
	return &DialogHandler{
		notificationSvc: notificationSvc,
	}
}

// Get handles GET /dialogs/:code
// @Summary Resolve a dialog
// @Description Returns the localized dialog for a warning type or failure code such as DOWNLOAD_FILE
// @Tags dialogs
// @Produce json
// @Param code path string true "Warning type or failure code"
// @Param locale query string false "Preferred locale (en, fr)"
// @Success 200 {object} models.DialogOptions
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /dialogs/{code} [get]
func (h *DialogHandler) Get(c *gin.Context) {
	code, err := models.ParseDialogCode(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
		return
	}

	dialog, err := h.notificationSvc.ResolveDialog(code, locale(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dialog)
}
