package middlewares

import (
	"DentalDesk/database"
	"DentalDesk/repositories"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// HttpError logs an error and writes an HTTP error response to the client.
func HttpError(c *gin.Context, message string, status int, err error) {
	log.Error().Err(err).Int("status", status).Msg(message)
	c.JSON(status, gin.H{"error": message})
}

// RespondError maps the error taxonomy to HTTP statuses: an unavailable
// store yields 503 with an actionable message, a missing row 404, anything
// else 500.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, database.ErrUnavailable):
		HttpError(c, "database unavailable, the service is running in reduced-functionality mode", http.StatusServiceUnavailable, err)
	case errors.Is(err, repositories.ErrNotFound):
		HttpError(c, "record not found", http.StatusNotFound, err)
	default:
		HttpError(c, err.Error(), http.StatusInternalServerError, err)
	}
}
