package policy

import (
	"testing"

	"github.com/beken0w/yatube/internal/models"
)

var (
	alice = &models.User{ID: 1, Username: "alice"}
	bob   = &models.User{ID: 2, Username: "bob"}
)

func TestCanCreatePost(t *testing.T) {
	tests := []struct {
		name     string
		actor    *models.User
		expected bool
	}{
		{"authenticated", alice, true},
		{"anonymous", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanCreatePost(tt.actor); got != tt.expected {
				t.Errorf("CanCreatePost() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCanEditPost(t *testing.T) {
	post := &models.Post{ID: 10, AuthorID: alice.ID}

	tests := []struct {
		name     string
		actor    *models.User
		post     *models.Post
		expected bool
	}{
		{"author", alice, post, true},
		{"other user", bob, post, false},
		{"anonymous", nil, post, false},
		{"nil post", alice, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanEditPost(tt.actor, tt.post); got != tt.expected {
				t.Errorf("CanEditPost() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCanComment(t *testing.T) {
	if !CanComment(alice) {
		t.Error("CanComment() = false for authenticated actor")
	}
	if CanComment(nil) {
		t.Error("CanComment() = true for anonymous actor")
	}
}

func TestCanFollow(t *testing.T) {
	tests := []struct {
		name      string
		actor     *models.User
		target    *models.User
		following bool
		expected  bool
	}{
		{"new edge", alice, bob, false, true},
		{"already following", alice, bob, true, false},
		{"self follow", alice, alice, false, false},
		{"anonymous", nil, bob, false, false},
		{"nil target", alice, nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanFollow(tt.actor, tt.target, tt.following); got != tt.expected {
				t.Errorf("CanFollow() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCanUnfollow(t *testing.T) {
	tests := []struct {
		name      string
		actor     *models.User
		target    *models.User
		following bool
		expected  bool
	}{
		{"existing edge", alice, bob, true, true},
		{"no edge", alice, bob, false, false},
		{"anonymous", nil, bob, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanUnfollow(tt.actor, tt.target, tt.following); got != tt.expected {
				t.Errorf("CanUnfollow() = %v, want %v", got, tt.expected)
			}
		})
	}
}
