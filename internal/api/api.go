package api

import (
	"errors"
	"net/http"

	"fitcoach/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// respondServiceError maps service errors onto HTTP status codes. Validation
// failures and known not-found cases keep their message; anything else is an
// internal error and only gets logged server-side.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrTraineeNotFound),
		errors.Is(err, service.ErrExerciseNotFound),
		errors.Is(err, service.ErrMealNotFound),
		errors.Is(err, service.ErrScheduleEntryNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrNameRequired):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		log.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		abortWithError(c, http.StatusInternalServerError, "Internal server error.")
	}
}
