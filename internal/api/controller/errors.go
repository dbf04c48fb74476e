package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"mliou521/Inkwell/internal/api/repository"
	"mliou521/Inkwell/internal/api/response"

	"github.com/gin-gonic/gin"
)

// renderError is the single place repository failures become HTTP responses:
// NotFound turns into a fixed 404 body for the resource kind, everything else
// is logged and normalized to the generic 500.
func renderError(c *gin.Context, err error, resource string) {
	var notFound *repository.NotFoundError
	if errors.As(err, &notFound) {
		response.Message(c, http.StatusNotFound, resource+" not found")
		return
	}

	slog.ErrorContext(c.Request.Context(), "request failed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"error", err,
	)
	response.Internal(c)
}
