package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beken0w/yatube/internal/auth"
)

func (h *Handlers) signupForm(c *gin.Context) {
	h.render.Render(c, http.StatusOK, "users/signup", gin.H{})
}

func (h *Handlers) signup(c *gin.Context) {
	var form SignupForm
	if !h.bindForm(c, &form) {
		return
	}

	user, err := h.sessions.Signup(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUsernameTaken) {
			h.render.Render(c, http.StatusBadRequest, "users/signup", gin.H{"error": err.Error()})
			return
		}
		h.handleError(c, err, "/")
		return
	}

	token, err := h.sessions.IssueToken(user)
	if err != nil {
		h.handleError(c, err, "/")
		return
	}
	h.sessions.SetSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/")
}

func (h *Handlers) loginForm(c *gin.Context) {
	h.render.Render(c, http.StatusOK, "users/login", gin.H{
		"next": c.Query("next"),
	})
}

func (h *Handlers) login(c *gin.Context) {
	var form LoginForm
	if !h.bindForm(c, &form) {
		return
	}

	user, err := h.sessions.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.render.Render(c, http.StatusUnauthorized, "users/login", gin.H{"error": err.Error()})
			return
		}
		h.handleError(c, err, "/")
		return
	}

	token, err := h.sessions.IssueToken(user)
	if err != nil {
		h.handleError(c, err, "/")
		return
	}
	h.sessions.SetSessionCookie(c, token)

	// Return to the originally requested path when the login was a
	// redirect target
	next := c.Query("next")
	if next == "" || next[0] != '/' {
		next = "/"
	}
	c.Redirect(http.StatusFound, next)
}

func (h *Handlers) logout(c *gin.Context) {
	h.sessions.ClearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}
