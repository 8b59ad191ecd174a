package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/d60-Lab/campus-social/internal/model"
	"github.com/d60-Lab/campus-social/internal/repository"
	"github.com/d60-Lab/campus-social/pkg/logger"
	"github.com/d60-Lab/campus-social/pkg/metrics"
)

// FeedQuery AuthorID 为 0 表示全站推荐流；Cutoff 为零值时取当前时间
type FeedQuery struct {
	AuthorID uint
	Cutoff   time.Time
	Page     int
	PageSize int
}

type FeedPage struct {
	model.Page[model.PostView]
	DateTimeFetch time.Time `json:"date_time_fetch"`
}

// NewPostsQuery 时间窗 [LastFetch, Server]，两端包含
type NewPostsQuery struct {
	AuthorID  uint
	LastFetch time.Time
	Server    time.Time
}

type NewPosts struct {
	Posts          []model.PostView `json:"posts"`
	ServerDateTime time.Time        `json:"server_date_time"`
}

type NewPostCount struct {
	Count          int64     `json:"count"`
	ServerDateTime time.Time `json:"server_date_time"`
}

type PostService interface {
	CreatePost(ctx context.Context, user *model.User, content string) (*model.PostView, error)
	CreateComment(ctx context.Context, user *model.User, postID uint, content string) (*model.CommentView, error)
	GetPost(ctx context.Context, viewer *model.User, postID uint) (*model.PostView, error)
	Feed(ctx context.Context, viewer *model.User, q FeedQuery) (*FeedPage, error)
	NewSince(ctx context.Context, viewer *model.User, q NewPostsQuery) (*NewPosts, error)
	NewCount(ctx context.Context, q NewPostsQuery) (*NewPostCount, error)
	UserPostCount(ctx context.Context, authorID uint) (int64, error)
	ToggleLike(ctx context.Context, user *model.User, postID uint, add bool) error
	DeletePost(ctx context.Context, user *model.User, postID uint) error
	// ForceDelete 管理员删除，不校验归属
	ForceDelete(ctx context.Context, postID uint) error
}

type postService struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
	likes    repository.LikeRepository
	now      func() time.Time
}

func NewPostService(posts repository.PostRepository, comments repository.CommentRepository, likes repository.LikeRepository) PostService {
	return &postService{
		posts:    posts,
		comments: comments,
		likes:    likes,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func validateContent(content string, max int) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > max {
		return "", ErrContentTooLong
	}
	return content, nil
}

func canRead(viewer *model.User) error {
	if viewer == nil || viewer.Role == model.RoleGuest {
		return ErrUnauthorized
	}
	return nil
}

func (s *postService) CreatePost(ctx context.Context, user *model.User, content string) (*model.PostView, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}
	content, err := validateContent(content, model.MaxPostLength)
	if err != nil {
		return nil, err
	}
	p := &model.Post{UserID: user.ID, Content: content, Timestamp: s.now()}
	if err := s.posts.Create(ctx, p); err != nil {
		return nil, err
	}
	p.User = *user
	metrics.SocialActions.WithLabelValues("post").Inc()
	view := toPostView(p, 0, false)
	return &view, nil
}

func (s *postService) CreateComment(ctx context.Context, user *model.User, postID uint, content string) (*model.CommentView, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}
	content, err := validateContent(content, model.MaxCommentLength)
	if err != nil {
		return nil, err
	}
	ok, err := s.posts.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrPostNotFound
	}
	c := &model.Comment{PostID: postID, UserID: user.ID, Content: content, Timestamp: s.now()}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	c.User = *user
	metrics.SocialActions.WithLabelValues("comment").Inc()
	view := toCommentView(c)
	return &view, nil
}

func (s *postService) GetPost(ctx context.Context, viewer *model.User, postID uint) (*model.PostView, error) {
	if err := canRead(viewer); err != nil {
		return nil, err
	}
	p, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPostNotFound
	}
	views, err := s.enrich(ctx, viewer, []*model.Post{p})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *postService) Feed(ctx context.Context, viewer *model.User, q FeedQuery) (*FeedPage, error) {
	if err := canRead(viewer); err != nil {
		return nil, err
	}
	page, size := normalizePage(q.Page, q.PageSize)
	cutoff := q.Cutoff
	if cutoff.IsZero() {
		cutoff = s.now()
	}
	cutoff = cutoff.UTC()

	f := repository.PostFilter{AuthorID: q.AuthorID, To: cutoff}
	posts, err := s.posts.List(ctx, f, offsetOf(page, size), size)
	if err != nil {
		return nil, err
	}
	total, err := s.posts.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	views, err := s.enrich(ctx, viewer, posts)
	if err != nil {
		return nil, err
	}
	return &FeedPage{
		Page:          model.Page[model.PostView]{Items: views, Page: page, PageSize: size, Total: total},
		DateTimeFetch: cutoff,
	}, nil
}

func (s *postService) window(q NewPostsQuery) (repository.PostFilter, time.Time) {
	server := q.Server
	if server.IsZero() {
		server = s.now()
	}
	server = server.UTC()
	return repository.PostFilter{AuthorID: q.AuthorID, From: q.LastFetch.UTC(), To: server}, server
}

func (s *postService) NewSince(ctx context.Context, viewer *model.User, q NewPostsQuery) (*NewPosts, error) {
	if err := canRead(viewer); err != nil {
		return nil, err
	}
	f, server := s.window(q)
	out := &NewPosts{Posts: []model.PostView{}, ServerDateTime: server}
	if q.LastFetch.IsZero() || f.From.After(f.To) {
		return out, nil
	}
	posts, err := s.posts.List(ctx, f, 0, 0)
	if err != nil {
		return nil, err
	}
	if out.Posts, err = s.enrich(ctx, viewer, posts); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *postService) NewCount(ctx context.Context, q NewPostsQuery) (*NewPostCount, error) {
	f, server := s.window(q)
	out := &NewPostCount{ServerDateTime: server}
	if q.LastFetch.IsZero() || f.From.After(f.To) {
		return out, nil
	}
	n, err := s.posts.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	out.Count = n
	return out, nil
}

func (s *postService) UserPostCount(ctx context.Context, authorID uint) (int64, error) {
	return s.posts.Count(ctx, repository.PostFilter{AuthorID: authorID})
}

// ToggleLike add=true 点赞，add=false 取消；两条失败路径都不改变状态
func (s *postService) ToggleLike(ctx context.Context, user *model.User, postID uint, add bool) error {
	if user == nil {
		return ErrUnauthorized
	}
	ok, err := s.posts.Exists(ctx, postID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPostNotFound
	}
	liked, err := s.likes.Exists(ctx, user.ID, postID)
	if err != nil {
		return err
	}

	if !add {
		if !liked {
			return ErrNotLiked
		}
		n, err := s.likes.Delete(ctx, user.ID, postID)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotLiked
		}
		metrics.SocialActions.WithLabelValues("unlike").Inc()
		return nil
	}

	if liked {
		return ErrAlreadyLiked
	}
	if err := s.likes.Create(ctx, &model.Like{PostID: postID, UserID: user.ID, Timestamp: s.now()}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyLiked
		}
		return err
	}
	metrics.SocialActions.WithLabelValues("like").Inc()
	return nil
}

func (s *postService) DeletePost(ctx context.Context, user *model.User, postID uint) error {
	if user == nil {
		return ErrUnauthorized
	}
	p, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPostNotFound
	}
	if p.UserID != user.ID {
		return ErrForbidden
	}
	return s.ForceDelete(ctx, postID)
}

func (s *postService) ForceDelete(ctx context.Context, postID uint) error {
	if err := s.posts.DeleteCascade(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	logger.Info("post deleted", zap.Uint("post_id", postID))
	return nil
}

// enrich 两次聚合查询得到点赞数和当前用户点赞状态
func (s *postService) enrich(ctx context.Context, viewer *model.User, posts []*model.Post) ([]model.PostView, error) {
	if len(posts) == 0 {
		return []model.PostView{}, nil
	}
	ids := make([]uint, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	counts, err := s.likes.CountByPosts(ctx, ids)
	if err != nil {
		return nil, err
	}
	var viewerID uint
	if viewer != nil {
		viewerID = viewer.ID
	}
	liked, err := s.likes.LikedPosts(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}
	views := make([]model.PostView, len(posts))
	for i, p := range posts {
		views[i] = toPostView(p, counts[p.ID], liked[p.ID])
	}
	return views, nil
}

func toPostView(p *model.Post, likes int64, liked bool) model.PostView {
	comments := make([]model.CommentView, len(p.Comments))
	for i := range p.Comments {
		comments[i] = toCommentView(&p.Comments[i])
	}
	return model.PostView{
		ID:        p.ID,
		Content:   p.Content,
		User:      p.User.PostUserInfo(),
		Comments:  comments,
		Timestamp: p.Timestamp,
		LikeCount: likes,
		IsLiked:   liked,
	}
}

func toCommentView(c *model.Comment) model.CommentView {
	return model.CommentView{
		CommentID:          c.ID,
		Content:            c.Content,
		CommenterID:        c.UserID,
		CommenterFirstName: c.User.FirstName,
		CommenterLastName:  c.User.LastName,
		ProfilePicture:     c.User.Base64ProfilePicture(),
		Timestamp:          c.Timestamp,
	}
}
