package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/campus-social/internal/model"
)

type LikeRepository interface {
	// Create 重复点赞返回 gorm.ErrDuplicatedKey
	Create(ctx context.Context, l *model.Like) error
	// Delete 返回实际删除的行数
	Delete(ctx context.Context, userID, postID uint) (int64, error)
	Exists(ctx context.Context, userID, postID uint) (bool, error)
	CountByPost(ctx context.Context, postID uint) (int64, error)
	CountByPosts(ctx context.Context, postIDs []uint) (map[uint]int64, error)
	LikedPosts(ctx context.Context, userID uint, postIDs []uint) (map[uint]bool, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository { return &likeRepository{db: db} }

func (r *likeRepository) Create(ctx context.Context, l *model.Like) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *likeRepository) Delete(ctx context.Context, userID, postID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.Like{})
	return res.RowsAffected, res.Error
}

func (r *likeRepository) Exists(ctx context.Context, userID, postID uint) (bool, error) {
	return exists(r.db.WithContext(ctx).Model(&model.Like{}).Where("user_id = ? AND post_id = ?", userID, postID))
}

func (r *likeRepository) CountByPost(ctx context.Context, postID uint) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Like{}).Where("post_id = ?", postID).Count(&cnt).Error
	return cnt, err
}

// CountByPosts 一次分组 count，避免逐条加载点赞集合
func (r *likeRepository) CountByPosts(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
	out := make(map[uint]int64, len(postIDs))
	if len(postIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		PostID uint
		Cnt    int64
	}
	err := r.db.WithContext(ctx).Model(&model.Like{}).
		Select("post_id, COUNT(*) AS cnt").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.PostID] = row.Cnt
	}
	return out, nil
}

func (r *likeRepository) LikedPosts(ctx context.Context, userID uint, postIDs []uint) (map[uint]bool, error) {
	out := make(map[uint]bool, len(postIDs))
	if len(postIDs) == 0 || userID == 0 {
		return out, nil
	}
	var ids []uint
	err := r.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}
