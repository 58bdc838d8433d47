package api

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// PostForm is the request body for creating or editing a post
type PostForm struct {
	Text    string `form:"text" json:"text" validate:"required"`
	GroupID *int64 `form:"group" json:"group" validate:"omitempty,min=1"`
	Image   string `form:"image" json:"image" validate:"omitempty,max=1024"`
}

// CommentForm is the request body for adding a comment
type CommentForm struct {
	Text string `form:"text" json:"text" validate:"required,max=200"`
}

// SignupForm is the request body for registration
type SignupForm struct {
	Username string `form:"username" json:"username" validate:"required,min=3,max=150"`
	Password string `form:"password" json:"password" validate:"required,min=8"`
}

// LoginForm is the request body for login
type LoginForm struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

// bindForm binds and validates a request body, accepting form or JSON
// encoding. A false return means the response has been written.
func (h *Handlers) bindForm(c *gin.Context, form interface{}) bool {
	if err := c.ShouldBind(form); err != nil {
		h.render.Render(c, 400, "error", gin.H{"error": err.Error()})
		return false
	}
	if err := h.validate.Struct(form); err != nil {
		var message string
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			message = errs[0].Error()
		} else {
			message = err.Error()
		}
		h.render.Render(c, 400, "error", gin.H{"error": message})
		return false
	}
	return true
}
