package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/beken0w/yatube/internal/auth"
	"github.com/beken0w/yatube/internal/blog"
)

// handleError maps service errors onto the web surface. Unauthorized
// becomes a login redirect carrying the original path; Forbidden
// becomes a redirect to the given fallback view; NotFound is the
// uniform 404.
func (h *Handlers) handleError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, blog.ErrNotFound):
		h.notFound(c)
	case errors.Is(err, blog.ErrUnauthorized):
		c.Redirect(http.StatusFound, auth.LoginRedirect(c.Request.URL.Path))
	case errors.Is(err, blog.ErrForbidden):
		c.Redirect(http.StatusFound, fallback)
	case errors.Is(err, blog.ErrEmptyText), errors.Is(err, blog.ErrTextTooLong):
		h.render.Render(c, http.StatusBadRequest, "error", gin.H{"error": err.Error()})
	default:
		h.logger.Error("Request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		h.render.Render(c, http.StatusInternalServerError, "error", gin.H{"error": "internal error"})
	}
}
