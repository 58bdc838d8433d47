package blog

import (
	"time"

	"github.com/beken0w/yatube/internal/models"
	"github.com/beken0w/yatube/internal/paginate"
)

// PostView is the serialized shape of a post in feed pages. Feed pages
// are cached as bytes, so this shape must stay stable.
type PostView struct {
	ID      int64      `json:"id"`
	Text    string     `json:"text"`
	Author  string     `json:"author"`
	Group   *GroupView `json:"group,omitempty"`
	Image   string     `json:"image,omitempty"`
	Created time.Time  `json:"created"`
}

// GroupView is the serialized shape of a group reference
type GroupView struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// CommentView is the serialized shape of a comment on a post detail page
type CommentView struct {
	ID      int64     `json:"id"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	Created time.Time `json:"created"`
}

// FeedPage is one page of a feed
type FeedPage = paginate.Page[PostView]

func toPostView(post *models.Post) PostView {
	view := PostView{
		ID:      post.ID,
		Text:    post.Text,
		Image:   post.Image,
		Created: post.CreatedAt,
	}
	if post.Author != nil {
		view.Author = post.Author.Username
	}
	if post.Group != nil {
		view.Group = &GroupView{
			Title: post.Group.Title,
			Slug:  post.Group.Slug,
		}
	}
	return view
}

func toPostViews(posts []*models.Post) []PostView {
	views := make([]PostView, len(posts))
	for i, post := range posts {
		views[i] = toPostView(post)
	}
	return views
}

func toCommentViews(comments []*models.Comment) []CommentView {
	views := make([]CommentView, len(comments))
	for i, comment := range comments {
		views[i] = CommentView{
			ID:      comment.ID,
			Text:    comment.Text,
			Created: comment.CreatedAt,
		}
		if comment.Author != nil {
			views[i].Author = comment.Author.Username
		}
	}
	return views
}
