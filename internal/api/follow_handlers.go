package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beken0w/yatube/internal/auth"
)

func (h *Handlers) follow(c *gin.Context) {
	actor := auth.RequireActor(c)
	if actor == nil {
		return
	}
	username := c.Param("username")
	profile := fmt.Sprintf("/profile/%s/", username)

	if err := h.blog.Follow(c.Request.Context(), actor, username); err != nil {
		h.handleError(c, err, profile)
		return
	}
	c.Redirect(http.StatusFound, profile)
}

func (h *Handlers) unfollow(c *gin.Context) {
	actor := auth.RequireActor(c)
	if actor == nil {
		return
	}
	username := c.Param("username")
	profile := fmt.Sprintf("/profile/%s/", username)

	if err := h.blog.Unfollow(c.Request.Context(), actor, username); err != nil {
		h.handleError(c, err, profile)
		return
	}
	c.Redirect(http.StatusFound, profile)
}
