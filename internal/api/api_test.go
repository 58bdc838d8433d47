package api_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/beken0w/yatube/internal/api"
	"github.com/beken0w/yatube/internal/auth"
	"github.com/beken0w/yatube/internal/blog"
	"github.com/beken0w/yatube/internal/cache"
	"github.com/beken0w/yatube/internal/db"
	"github.com/beken0w/yatube/internal/models"
	"github.com/beken0w/yatube/pkg/config"
)

type server struct {
	engine *gin.Engine
	blog   *blog.Service
	auth   *auth.Service
}

var serverSeq int

func newServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	serverSeq++
	dbCfg := config.DatabaseConfig{
		Driver: "sqlite",
		URL:    fmt.Sprintf("file:apitest%d?mode=memory&cache=shared", serverSeq),
	}
	database, err := db.New(&dbCfg, "ERROR")
	require.NoError(t, err)
	require.NoError(t, database.Migrate())
	t.Cleanup(func() { database.Close() })

	blogSvc := blog.NewService(database, cache.NewMemory(),
		config.PaginationConfig{FirstPageSize: 10, PageSize: 10}, 20*time.Minute)
	authSvc := auth.NewService(database, &config.AuthConfig{
		SessionSecret: "test-secret",
		SessionTTL:    time.Hour,
	})

	engine := gin.New()
	api.NewHandlers(blogSvc, authSvc, nil).SetupRoutes(engine)

	return &server{engine: engine, blog: blogSvc, auth: authSvc}
}

func (s *server) signup(t *testing.T, username string) *models.User {
	t.Helper()
	user, err := s.auth.Signup(context.Background(), username, "password123")
	require.NoError(t, err)
	return user
}

func (s *server) get(t *testing.T, path string, actor *models.User) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	s.authenticate(t, req, actor)
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func (s *server) postForm(t *testing.T, path string, actor *models.User, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	s.authenticate(t, req, actor)
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func (s *server) authenticate(t *testing.T, req *http.Request, actor *models.User) {
	t.Helper()
	if actor == nil {
		return
	}
	token, err := s.auth.IssueToken(actor)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
}

func TestGlobalFeedRoute(t *testing.T) {
	s := newServer(t)
	alice := s.signup(t, "alice")
	_, err := s.blog.CreatePost(context.Background(), alice, blog.PostInput{Text: "hello"})
	require.NoError(t, err)

	rec := s.get(t, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "hello")
}

func TestAnonymousCreateRedirectsToLogin(t *testing.T) {
	s := newServer(t)

	rec := s.get(t, "/create/", nil)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/auth/login/?next=/create/", rec.Header().Get("Location"))
}

func TestAnonymousCommentRedirectsToLogin(t *testing.T) {
	s := newServer(t)
	alice := s.signup(t, "alice")
	post, err := s.blog.CreatePost(context.Background(), alice, blog.PostInput{Text: "hello"})
	require.NoError(t, err)

	path := fmt.Sprintf("/posts/%d/comment/", post.ID)
	rec := s.postForm(t, path, nil, url.Values{"text": {"hi"}})
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/auth/login/?next="+path, rec.Header().Get("Location"))
}

func TestEditByNonAuthorRedirectsToDetail(t *testing.T) {
	s := newServer(t)
	alice := s.signup(t, "alice")
	bob := s.signup(t, "bob")
	post, err := s.blog.CreatePost(context.Background(), alice, blog.PostInput{Text: "hello"})
	require.NoError(t, err)

	detail := fmt.Sprintf("/posts/%d/", post.ID)

	rec := s.get(t, detail+"edit/", bob)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, detail, rec.Header().Get("Location"))

	rec = s.postForm(t, detail+"edit/", bob, url.Values{"text": {"hijacked"}})
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, detail, rec.Header().Get("Location"))

	// Stored text unchanged
	view, _, err := s.blog.PostDetail(context.Background(), post.ID)
	require.NoError(t, err)
	require.Equal(t, "hello", view.Text)
}

func TestAddCommentIncrementsCount(t *testing.T) {
	s := newServer(t)
	alice := s.signup(t, "alice")
	bob := s.signup(t, "bob")
	post, err := s.blog.CreatePost(context.Background(), alice, blog.PostInput{Text: "hello"})
	require.NoError(t, err)

	detail := fmt.Sprintf("/posts/%d/", post.ID)

	rec := s.postForm(t, detail+"comment/", bob, url.Values{"text": {"nice"}})
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, detail, rec.Header().Get("Location"))

	_, comments, err := s.blog.PostDetail(context.Background(), post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
}

func TestCreatePostRedirectsToProfile(t *testing.T) {
	s := newServer(t)
	alice := s.signup(t, "alice")

	rec := s.postForm(t, "/create/", alice, url.Values{"text": {"fresh"}})
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/profile/alice/", rec.Header().Get("Location"))
}

func TestFollowRoutes(t *testing.T) {
	s := newServer(t)
	alice := s.signup(t, "alice")
	s.signup(t, "bob")

	// Both directions redirect back to the profile, and repeating the
	// action changes nothing
	for i := 0; i < 2; i++ {
		rec := s.get(t, "/profile/bob/follow/", alice)
		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, "/profile/bob/", rec.Header().Get("Location"))
	}

	page, err := s.blog.FollowFeed(context.Background(), alice, 1)
	require.NoError(t, err)
	require.Empty(t, page.Items) // bob has no posts yet

	rec := s.get(t, "/profile/bob/unfollow/", alice)
	require.Equal(t, http.StatusFound, rec.Code)

	// Anonymous callers are sent to login
	rec = s.get(t, "/profile/bob/follow/", nil)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/auth/login/?next=/profile/bob/follow/", rec.Header().Get("Location"))
}

func TestNotFoundOutcomes(t *testing.T) {
	s := newServer(t)

	tests := []struct {
		name string
		path string
	}{
		{"unknown group", "/group/nope/"},
		{"unknown profile", "/profile/nobody/"},
		{"unknown post", "/posts/424242/"},
		{"non-numeric post id", "/posts/abc/"},
		{"unmatched path", "/totally/unknown/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.get(t, tt.path, nil)
			require.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestLoginFlow(t *testing.T) {
	s := newServer(t)
	s.signup(t, "alice")

	rec := s.postForm(t, "/auth/login/?next=/create/", nil, url.Values{
		"username": {"alice"},
		"password": {"password123"},
	})
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/create/", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	var found bool
	for _, cookie := range cookies {
		if cookie.Name == auth.SessionCookie && cookie.Value != "" {
			found = true
		}
	}
	require.True(t, found, "login must set the session cookie")

	// Bad credentials are rejected
	rec = s.postForm(t, "/auth/login/", nil, url.Values{
		"username": {"alice"},
		"password": {"wrong"},
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSignupRejectsDuplicate(t *testing.T) {
	s := newServer(t)
	s.signup(t, "alice")

	rec := s.postForm(t, "/auth/signup/", nil, url.Values{
		"username": {"alice"},
		"password": {"password123"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProfileIncludesFollowFlag(t *testing.T) {
	s := newServer(t)
	alice := s.signup(t, "alice")
	s.signup(t, "bob")

	require.NoError(t, s.blog.Follow(context.Background(), alice, "bob"))

	rec := s.get(t, "/profile/bob/", alice)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"following":true`)
}
