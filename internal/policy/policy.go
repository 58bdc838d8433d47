package policy

import (
	"github.com/beken0w/yatube/internal/models"
)

// Access decisions are pure predicates over (actor, resource). A nil
// actor is an anonymous request. Callers translate a false result into
// the appropriate redirect or error.

// CanCreatePost reports whether actor may create a post
func CanCreatePost(actor *models.User) bool {
	return actor != nil
}

// CanEditPost reports whether actor may edit the given post. Only the
// author may edit.
func CanEditPost(actor *models.User, post *models.Post) bool {
	if actor == nil || post == nil {
		return false
	}
	return actor.ID == post.AuthorID
}

// CanComment reports whether actor may comment on a post
func CanComment(actor *models.User) bool {
	return actor != nil
}

// CanFollow reports whether actor may start following target.
// Self-follows and duplicate edges are refused.
func CanFollow(actor, target *models.User, alreadyFollowing bool) bool {
	if actor == nil || target == nil {
		return false
	}
	return actor.ID != target.ID && !alreadyFollowing
}

// CanUnfollow reports whether actor may stop following target. There
// must be an edge to remove.
func CanUnfollow(actor, target *models.User, following bool) bool {
	if actor == nil || target == nil {
		return false
	}
	return following
}
