package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/beken0w/yatube/internal/auth"
	"github.com/beken0w/yatube/internal/blog"
	"github.com/beken0w/yatube/pkg/logging"
)

// Handlers holds the web layer dependencies
type Handlers struct {
	blog     *blog.Service
	sessions *auth.Service
	render   Renderer
	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandlers creates the web layer
func NewHandlers(blogSvc *blog.Service, sessions *auth.Service, renderer Renderer) *Handlers {
	if renderer == nil {
		renderer = JSONRenderer{}
	}
	return &Handlers{
		blog:     blogSvc,
		sessions: sessions,
		render:   renderer,
		validate: validator.New(),
		logger:   logging.WithComponent("api"),
	}
}

// SetupRoutes registers all routes on the engine
func (h *Handlers) SetupRoutes(engine *gin.Engine) {
	engine.Use(h.sessions.Middleware())

	// Health check endpoint
	engine.GET("/health", h.healthHandler)

	// Feeds
	engine.GET("/", h.globalFeed)
	engine.GET("/group/:slug/", h.groupFeed)
	engine.GET("/profile/:username/", h.profileFeed)
	engine.GET("/follow/", h.followFeed)

	// Posts
	engine.GET("/posts/:id/", h.postDetail)
	engine.GET("/create/", h.createPostForm)
	engine.POST("/create/", h.createPost)
	engine.GET("/posts/:id/edit/", h.editPostForm)
	engine.POST("/posts/:id/edit/", h.editPost)
	engine.POST("/posts/:id/comment/", h.addComment)

	// Follow edges
	engine.GET("/profile/:username/follow/", h.follow)
	engine.GET("/profile/:username/unfollow/", h.unfollow)

	// Sessions
	engine.GET("/auth/signup/", h.signupForm)
	engine.POST("/auth/signup/", h.signup)
	engine.GET("/auth/login/", h.loginForm)
	engine.POST("/auth/login/", h.login)
	engine.GET("/auth/logout/", h.logout)

	// Static pages
	engine.GET("/about/author/", h.aboutAuthor)
	engine.GET("/about/tech/", h.aboutTech)

	// Uniform not-found boundary for unmatched paths
	engine.NoRoute(h.notFound)
}

// healthHandler handles health check requests
func (h *Handlers) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"service": "yatube",
	})
}

func (h *Handlers) notFound(c *gin.Context) {
	h.render.Render(c, http.StatusNotFound, "core/404", gin.H{
		"path": c.Request.URL.Path,
	})
}

func (h *Handlers) aboutAuthor(c *gin.Context) {
	h.render.Render(c, http.StatusOK, "about/author", gin.H{})
}

func (h *Handlers) aboutTech(c *gin.Context) {
	h.render.Render(c, http.StatusOK, "about/tech", gin.H{})
}
