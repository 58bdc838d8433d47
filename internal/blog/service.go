package blog

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/beken0w/yatube/internal/cache"
	"github.com/beken0w/yatube/internal/db"
	"github.com/beken0w/yatube/internal/models"
	"github.com/beken0w/yatube/internal/paginate"
	"github.com/beken0w/yatube/internal/policy"
	"github.com/beken0w/yatube/internal/validate"
	"github.com/beken0w/yatube/pkg/config"
	"github.com/beken0w/yatube/pkg/logging"
	"github.com/beken0w/yatube/pkg/telemetry"
)

// Service assembles feeds and executes the write operations of the
// platform. All access decisions go through the policy package; the
// global feed is served through the page cache.
type Service struct {
	users    *db.UserRepository
	groups   *db.GroupRepository
	posts    *db.PostRepository
	comments *db.CommentRepository
	follows  *db.FollowRepository
	store    cache.Store
	sizes    paginate.Sizes
	feedTTL  time.Duration
	logger   *zap.Logger
}

// NewService creates a blog service
func NewService(database *db.DB, store cache.Store, pagination config.PaginationConfig, feedTTL time.Duration) *Service {
	repo := db.NewRepository(database.DB)
	return &Service{
		users:    db.NewUserRepository(repo),
		groups:   db.NewGroupRepository(repo),
		posts:    db.NewPostRepository(repo),
		comments: db.NewCommentRepository(repo),
		follows:  db.NewFollowRepository(repo),
		store:    store,
		sizes: paginate.Sizes{
			First: pagination.FirstPageSize,
			Rest:  pagination.PageSize,
		},
		feedTTL: feedTTL,
		logger:  logging.WithComponent("blog"),
	}
}

// PostInput carries the mutable fields of a post
type PostInput struct {
	Text    string
	GroupID *int64
	Image   string
}

// Profile describes an author page
type Profile struct {
	Username       string `json:"username"`
	PostCount      int64  `json:"post_count"`
	Followers      int64  `json:"followers"`
	FollowingCount int64  `json:"following_count"`
	Following      bool   `json:"following"`
}

func (s *Service) pageSize(pageNumber int) int {
	if pageNumber <= 1 {
		return s.sizes.First
	}
	return s.sizes.Rest
}

// GlobalFeed returns one page of all posts, newest-first. Pages are
// served from the cache for the configured TTL; data changes within the
// window do not show until expiry.
func (s *Service) GlobalFeed(ctx context.Context, pageNumber int) (FeedPage, error) {
	ctx, span := telemetry.StartSpan(ctx, "blog.global_feed")
	defer span.End()

	if pageNumber < 1 {
		pageNumber = 1
	}
	key := cache.FeedKey(pageNumber, s.pageSize(pageNumber))

	if raw, ok, err := s.store.Get(ctx, key); err == nil && ok {
		var page FeedPage
		if err := json.Unmarshal(raw, &page); err == nil {
			return page, nil
		}
		s.logger.Warn("Discarding undecodable cached feed page", zap.String("key", key))
	}

	posts, err := s.posts.ListAll(ctx)
	if err != nil {
		return FeedPage{}, err
	}
	page := paginate.Paginate(toPostViews(posts), pageNumber, s.sizes)

	// Out-of-range requests clamp onto an existing page. Cache under the
	// page actually served, never under the requested number, so client
	// input cannot grow the key space; an entry already cached for the
	// served page wins to keep reads within the TTL window identical.
	if page.Number != pageNumber {
		key = cache.FeedKey(page.Number, s.pageSize(page.Number))
		if raw, ok, err := s.store.Get(ctx, key); err == nil && ok {
			var cached FeedPage
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
		}
	}

	raw, err := json.Marshal(page)
	if err != nil {
		return FeedPage{}, err
	}
	if err := s.store.Set(ctx, key, raw, s.feedTTL); err != nil {
		s.logger.Warn("Failed to cache feed page", zap.String("key", key), zap.Error(err))
	}

	return page, nil
}

// GroupFeed returns one page of a group's posts, newest-first
func (s *Service) GroupFeed(ctx context.Context, slug string, pageNumber int) (*models.Group, FeedPage, error) {
	ctx, span := telemetry.StartSpan(ctx, "blog.group_feed")
	defer span.End()

	group, err := s.groups.GetBySlug(ctx, slug)
	if err != nil {
		return nil, FeedPage{}, err
	}
	if group == nil {
		return nil, FeedPage{}, ErrNotFound
	}

	posts, err := s.posts.ListByGroup(ctx, group.ID)
	if err != nil {
		return nil, FeedPage{}, err
	}
	return group, paginate.Paginate(toPostViews(posts), pageNumber, s.sizes), nil
}

// ProfileFeed returns an author's profile and one page of their posts.
// The profile reports whether the current actor already follows the
// author; anonymous actors never do.
func (s *Service) ProfileFeed(ctx context.Context, actor *models.User, username string, pageNumber int) (*Profile, FeedPage, error) {
	ctx, span := telemetry.StartSpan(ctx, "blog.profile_feed")
	defer span.End()

	author, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, FeedPage{}, err
	}
	if author == nil {
		return nil, FeedPage{}, ErrNotFound
	}

	posts, err := s.posts.ListByAuthor(ctx, author.ID)
	if err != nil {
		return nil, FeedPage{}, err
	}

	following := false
	if actor != nil {
		following, err = s.follows.Exists(ctx, actor.ID, author.ID)
		if err != nil {
			return nil, FeedPage{}, err
		}
	}
	followers, err := s.follows.CountFollowers(ctx, author.ID)
	if err != nil {
		return nil, FeedPage{}, err
	}
	followingCount, err := s.follows.CountFollowing(ctx, author.ID)
	if err != nil {
		return nil, FeedPage{}, err
	}
	postCount, err := s.posts.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, FeedPage{}, err
	}

	profile := &Profile{
		Username:       author.Username,
		PostCount:      postCount,
		Followers:      followers,
		FollowingCount: followingCount,
		Following:      following,
	}
	return profile, paginate.Paginate(toPostViews(posts), pageNumber, s.sizes), nil
}

// FollowFeed returns one page of posts by authors the actor follows
func (s *Service) FollowFeed(ctx context.Context, actor *models.User, pageNumber int) (FeedPage, error) {
	ctx, span := telemetry.StartSpan(ctx, "blog.follow_feed")
	defer span.End()

	if actor == nil {
		return FeedPage{}, ErrUnauthorized
	}

	posts, err := s.posts.ListByFollowed(ctx, actor.ID)
	if err != nil {
		return FeedPage{}, err
	}
	return paginate.Paginate(toPostViews(posts), pageNumber, s.sizes), nil
}

// PostDetail returns a post with its comments, newest-first
func (s *Service) PostDetail(ctx context.Context, postID int64) (PostView, []CommentView, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return PostView{}, nil, err
	}
	if post == nil {
		return PostView{}, nil, ErrNotFound
	}

	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return PostView{}, nil, err
	}
	return toPostView(post), toCommentViews(comments), nil
}

// CreatePost creates a post authored by the actor. Author and creation
// time are fixed here and never change afterwards.
func (s *Service) CreatePost(ctx context.Context, actor *models.User, input PostInput) (*models.Post, error) {
	ctx, span := telemetry.StartSpan(ctx, "blog.create_post")
	defer span.End()

	if !policy.CanCreatePost(actor) {
		return nil, ErrUnauthorized
	}
	text, err := validate.Text(input.Text)
	if err != nil {
		return nil, err
	}
	groupID, err := s.resolveGroup(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:      text,
		AuthorID:  actor.ID,
		GroupID:   groupID,
		Image:     input.Image,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	s.logger.Info("Post created", zap.Int64("post_id", post.ID), zap.String("author", actor.Username))
	return post, nil
}

// EditPost updates a post's text, group and image. Only the author may
// edit; concurrent edits are last-writer-wins.
func (s *Service) EditPost(ctx context.Context, actor *models.User, postID int64, input PostInput) (*models.Post, error) {
	ctx, span := telemetry.StartSpan(ctx, "blog.edit_post")
	defer span.End()

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	if actor == nil {
		return nil, ErrUnauthorized
	}
	if !policy.CanEditPost(actor, post) {
		return nil, ErrForbidden
	}

	text, err := validate.Text(input.Text)
	if err != nil {
		return nil, err
	}
	groupID, err := s.resolveGroup(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}

	post.Text = text
	post.GroupID = groupID
	post.Image = input.Image
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// AddComment creates a comment authored by the actor on the given post
func (s *Service) AddComment(ctx context.Context, actor *models.User, postID int64, text string) (*models.Comment, error) {
	ctx, span := telemetry.StartSpan(ctx, "blog.add_comment")
	defer span.End()

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	if !policy.CanComment(actor) {
		return nil, ErrUnauthorized
	}

	trimmed, err := validate.TextMax(text, models.MaxCommentLength)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:      trimmed,
		PostID:    post.ID,
		AuthorID:  actor.ID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Follow adds a follow edge from actor to the named author. Following
// an already-followed author, or yourself, is a silent no-op.
func (s *Service) Follow(ctx context.Context, actor *models.User, username string) error {
	ctx, span := telemetry.StartSpan(ctx, "blog.follow")
	defer span.End()

	if actor == nil {
		return ErrUnauthorized
	}
	author, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if author == nil {
		return ErrNotFound
	}

	following, err := s.follows.Exists(ctx, actor.ID, author.ID)
	if err != nil {
		return err
	}
	if !policy.CanFollow(actor, author, following) {
		return nil
	}

	return s.follows.Create(ctx, &models.Follow{
		UserID:    actor.ID,
		AuthorID:  author.ID,
		CreatedAt: time.Now().UTC(),
	})
}

// Unfollow removes the follow edge from actor to the named author.
// Unfollowing someone you don't follow is a silent no-op.
func (s *Service) Unfollow(ctx context.Context, actor *models.User, username string) error {
	ctx, span := telemetry.StartSpan(ctx, "blog.unfollow")
	defer span.End()

	if actor == nil {
		return ErrUnauthorized
	}
	author, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if author == nil {
		return ErrNotFound
	}

	following, err := s.follows.Exists(ctx, actor.ID, author.ID)
	if err != nil {
		return err
	}
	if !policy.CanUnfollow(actor, author, following) {
		return nil
	}

	return s.follows.Delete(ctx, actor.ID, author.ID)
}

// DeletePost removes a post and its comments. Only the author may
// delete.
func (s *Service) DeletePost(ctx context.Context, actor *models.User, postID int64) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	if actor == nil {
		return ErrUnauthorized
	}
	if !policy.CanEditPost(actor, post) {
		return ErrForbidden
	}
	return s.posts.Delete(ctx, postID)
}

func (s *Service) resolveGroup(ctx context.Context, groupID *int64) (sql.NullInt64, error) {
	if groupID == nil {
		return sql.NullInt64{}, nil
	}
	group, err := s.groups.GetByID(ctx, *groupID)
	if err != nil {
		return sql.NullInt64{}, err
	}
	if group == nil {
		return sql.NullInt64{}, ErrNotFound
	}
	return sql.NullInt64{Int64: group.ID, Valid: true}, nil
}
