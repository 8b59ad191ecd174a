package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/d60-Lab/campus-social/internal/model"
)

// PostFilter 动态查询条件；零值字段不参与过滤
type PostFilter struct {
	AuthorID uint
	From     time.Time // 包含
	To       time.Time // 包含
}

func (f PostFilter) apply(q *gorm.DB) *gorm.DB {
	if f.AuthorID != 0 {
		q = q.Where("user_id = ?", f.AuthorID)
	}
	if !f.From.IsZero() {
		q = q.Where("timestamp >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("timestamp <= ?", f.To)
	}
	return q
}

type PostRepository interface {
	Create(ctx context.Context, p *model.Post) error
	FindByID(ctx context.Context, id uint) (*model.Post, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, f PostFilter, offset, limit int) ([]*model.Post, error)
	Count(ctx context.Context, f PostFilter) (int64, error)
	DeleteCascade(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, p *model.Post) error {
	return r.db.WithContext(ctx).Omit("User", "Comments").Create(p).Error
}

func withDetails(q *gorm.DB) *gorm.DB {
	return q.Preload("User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp ASC").Order("comment_id ASC")
		}).
		Preload("Comments.User")
}

func (r *postRepository) FindByID(ctx context.Context, id uint) (*model.Post, error) {
	return takeOne[model.Post](withDetails(r.db.WithContext(ctx)).Where("post_id = ?", id))
}

func (r *postRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(r.db.WithContext(ctx).Model(&model.Post{}).Where("post_id = ?", id))
}

// List 按时间倒序，同一时间按 id 倒序，保证分页稳定；limit<=0 表示不分页
func (r *postRepository) List(ctx context.Context, f PostFilter, offset, limit int) ([]*model.Post, error) {
	q := f.apply(withDetails(r.db.WithContext(ctx))).
		Order("timestamp DESC").Order("post_id DESC")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}
	var posts []*model.Post
	err := q.Find(&posts).Error
	return posts, err
}

func (r *postRepository) Count(ctx context.Context, f PostFilter) (int64, error) {
	var cnt int64
	err := f.apply(r.db.WithContext(ctx).Model(&model.Post{})).Count(&cnt).Error
	return cnt, err
}

// DeleteCascade 先删评论和点赞，再删动态本身
func (r *postRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		res := tx.Where("post_id = ?", id).Delete(&model.Post{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
