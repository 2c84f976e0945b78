package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/epeers/registry-warnings/internal/i18n"
	"github.com/epeers/registry-warnings/internal/middleware"
	"github.com/epeers/registry-warnings/internal/models"
	"github.com/epeers/registry-warnings/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// WarningHandler handles business warning endpoints
type WarningHandler struct {
	notificationSvc *services.NotificationService
	now             func() time.Time
}

// NewWarningHandler creates a new WarningHandler
func NewWarningHandler(notificationSvc *services.NotificationService) *WarningHandler {
	return &WarningHandler{
		notificationSvc: notificationSvc,
		now:             time.Now,
	}
}

func locale(c *gin.Context) language.Tag {
	tag, _ := middleware.GetLocale(c)
	return tag
}

// respondError writes the error response for a service error. Resolution
// failures are never turned into a partial dialog.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrBusinessNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "business not found",
		})
	case errors.Is(err, services.ErrConfiguration):
		log.WithField(middleware.RequestIDKey, middleware.GetRequestID(c)).Errorf("Dialog configuration error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "configuration_error",
			Message: err.Error(),
		})
	case errors.Is(err, i18n.ErrMissingTranslation):
		log.WithField(middleware.RequestIDKey, middleware.GetRequestID(c)).Errorf("Localization error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "localization_error",
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
	}
}

// Classify handles POST /warnings/classify
// @Summary Classify a business status snapshot
// @Description Returns the applicable warnings, most severe first, and the localized dialog for the primary warning
// @Tags warnings
// @Accept json
// @Produce json
// @Param locale query string false "Preferred locale (en, fr)"
// @Param request body models.ClassifyRequest true "Business status"
// @Success 200 {object} models.WarningsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /warnings/classify [post]
func (h *WarningHandler) Classify(c *gin.Context) {
	var req models.ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	result, err := h.notificationSvc.Evaluate(req.ToStatus(h.now()), locale(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBusinessWarnings handles GET /businesses/:identifier/warnings
// @Summary Get warnings for a business
// @Description Loads the business status and returns its warnings and primary dialog
// @Tags warnings
// @Produce json
// @Param identifier path string true "Business identifier"
// @Param locale query string false "Preferred locale (en, fr)"
// @Success 200 {object} models.WarningsResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /businesses/{identifier}/warnings [get]
func (h *WarningHandler) GetBusinessWarnings(c *gin.Context) {
	identifier := c.Param("identifier")

	result, err := h.notificationSvc.GetBusinessWarnings(c.Request.Context(), identifier, locale(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// BatchWarnings handles POST /businesses/warnings
// @Summary Get warnings for several businesses
// @Description Evaluates up to 50 businesses. Unknown identifiers are skipped and reported as notices.
// @Tags warnings
// @Accept json
// @Produce json
// @Param locale query string false "Preferred locale (en, fr)"
// @Param request body models.BatchWarningsRequest true "Business identifiers"
// @Success 200 {object} models.BatchWarningsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /businesses/warnings [post]
func (h *WarningHandler) BatchWarnings(c *gin.Context) {
	var req models.BatchWarningsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	ctx, nc := services.NewNoticeContext(c.Request.Context())
	results, err := h.notificationSvc.GetWarningsForBusinesses(ctx, req.Identifiers, locale(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BatchWarningsResponse{
		Results: results,
		Notices: nc.Notices(),
	})
}
