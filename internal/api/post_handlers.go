package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beken0w/yatube/internal/auth"
	"github.com/beken0w/yatube/internal/blog"
)

func (h *Handlers) createPostForm(c *gin.Context) {
	actor := auth.RequireActor(c)
	if actor == nil {
		return
	}
	groups, err := h.blog.ListGroups(c.Request.Context())
	if err != nil {
		h.handleError(c, err, "/")
		return
	}
	h.render.Render(c, http.StatusOK, "posts/post_create", gin.H{
		"groups": groups,
	})
}

func (h *Handlers) createPost(c *gin.Context) {
	actor := auth.RequireActor(c)
	if actor == nil {
		return
	}

	var form PostForm
	if !h.bindForm(c, &form) {
		return
	}

	_, err := h.blog.CreatePost(c.Request.Context(), actor, blog.PostInput{
		Text:    form.Text,
		GroupID: form.GroupID,
		Image:   form.Image,
	})
	if err != nil {
		h.handleError(c, err, "/")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s/", actor.Username))
}

func (h *Handlers) editPostForm(c *gin.Context) {
	actor := auth.RequireActor(c)
	if actor == nil {
		return
	}
	postID, ok := h.postID(c)
	if !ok {
		return
	}

	post, _, err := h.blog.PostDetail(c.Request.Context(), postID)
	if err != nil {
		h.handleError(c, err, "/")
		return
	}

	// Non-authors land back on the detail page, no error surfaced
	if post.Author != actor.Username {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", postID))
		return
	}

	h.render.Render(c, http.StatusOK, "posts/post_create", gin.H{
		"post":    post,
		"is_edit": true,
	})
}

func (h *Handlers) editPost(c *gin.Context) {
	actor := auth.RequireActor(c)
	if actor == nil {
		return
	}
	postID, ok := h.postID(c)
	if !ok {
		return
	}

	var form PostForm
	if !h.bindForm(c, &form) {
		return
	}

	detail := fmt.Sprintf("/posts/%d/", postID)
	_, err := h.blog.EditPost(c.Request.Context(), actor, postID, blog.PostInput{
		Text:    form.Text,
		GroupID: form.GroupID,
		Image:   form.Image,
	})
	if err != nil {
		h.handleError(c, err, detail)
		return
	}

	c.Redirect(http.StatusFound, detail)
}

func (h *Handlers) addComment(c *gin.Context) {
	actor := auth.RequireActor(c)
	if actor == nil {
		return
	}
	postID, ok := h.postID(c)
	if !ok {
		return
	}

	var form CommentForm
	if !h.bindForm(c, &form) {
		return
	}

	if _, err := h.blog.AddComment(c.Request.Context(), actor, postID, form.Text); err != nil {
		h.handleError(c, err, fmt.Sprintf("/posts/%d/", postID))
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", postID))
}
