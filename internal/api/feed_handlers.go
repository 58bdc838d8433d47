package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/beken0w/yatube/internal/auth"
	"github.com/beken0w/yatube/internal/paginate"
)

func (h *Handlers) globalFeed(c *gin.Context) {
	page, err := h.blog.GlobalFeed(c.Request.Context(), paginate.ParsePage(c.Query("page")))
	if err != nil {
		h.handleError(c, err, "/")
		return
	}
	h.render.Render(c, http.StatusOK, "posts/index", gin.H{
		"page_obj": page,
	})
}

func (h *Handlers) groupFeed(c *gin.Context) {
	group, page, err := h.blog.GroupFeed(c.Request.Context(), c.Param("slug"), paginate.ParsePage(c.Query("page")))
	if err != nil {
		h.handleError(c, err, "/")
		return
	}
	h.render.Render(c, http.StatusOK, "posts/group_list", gin.H{
		"group": gin.H{
			"title":       group.Title,
			"slug":        group.Slug,
			"description": group.Description,
		},
		"page_obj": page,
	})
}

func (h *Handlers) profileFeed(c *gin.Context) {
	actor := auth.CurrentActor(c)
	profile, page, err := h.blog.ProfileFeed(c.Request.Context(), actor, c.Param("username"), paginate.ParsePage(c.Query("page")))
	if err != nil {
		h.handleError(c, err, "/")
		return
	}
	h.render.Render(c, http.StatusOK, "posts/profile", gin.H{
		"author":          profile.Username,
		"following":       profile.Following,
		"followers":       profile.Followers,
		"following_count": profile.FollowingCount,
		"count":           profile.PostCount,
		"page_obj":        page,
	})
}

func (h *Handlers) followFeed(c *gin.Context) {
	actor := auth.RequireActor(c)
	if actor == nil {
		return
	}
	page, err := h.blog.FollowFeed(c.Request.Context(), actor, paginate.ParsePage(c.Query("page")))
	if err != nil {
		h.handleError(c, err, "/")
		return
	}
	h.render.Render(c, http.StatusOK, "posts/follow", gin.H{
		"page_obj": page,
	})
}

func (h *Handlers) postDetail(c *gin.Context) {
	postID, ok := h.postID(c)
	if !ok {
		return
	}
	post, comments, err := h.blog.PostDetail(c.Request.Context(), postID)
	if err != nil {
		h.handleError(c, err, "/")
		return
	}
	h.render.Render(c, http.StatusOK, "posts/post_detail", gin.H{
		"post":     post,
		"comments": comments,
		"form": gin.H{
			"can_comment": auth.CurrentActor(c) != nil,
		},
	})
}

// postID parses the :id route parameter. Anything that is not an
// integer falls into the uniform not-found outcome.
func (h *Handlers) postID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.notFound(c)
		return 0, false
	}
	return id, true
}
