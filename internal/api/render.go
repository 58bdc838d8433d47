package api

import (
	"github.com/gin-gonic/gin"
)

// Renderer produces a response from a template name and its context.
// The HTML rendering stack is a collaborator; the default renderer
// serves the context as JSON, which the tests and API clients consume.
type Renderer interface {
	Render(c *gin.Context, status int, template string, context gin.H)
}

// JSONRenderer renders every template context as a JSON body
type JSONRenderer struct{}

// Render implements Renderer
func (JSONRenderer) Render(c *gin.Context, status int, template string, context gin.H) {
	c.JSON(status, context)
}
