package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/campus-social/internal/model"
)

type FollowRepository interface {
	// Create 重复关注由复合主键拒绝，返回 gorm.ErrDuplicatedKey
	Create(ctx context.Context, followerID, followingID uint) error
	// Delete 返回实际删除的行数，关系不存在时为 0
	Delete(ctx context.Context, followerID, followingID uint) (int64, error)
	Exists(ctx context.Context, followerID, followingID uint) (bool, error)
	ListFollowers(ctx context.Context, userID uint, offset, limit int) ([]*model.Follow, error)
	ListFollowings(ctx context.Context, userID uint, offset, limit int) ([]*model.Follow, error)
	CountFollowers(ctx context.Context, userID uint) (int64, error)
	CountFollowings(ctx context.Context, userID uint) (int64, error)
	// Neighbors 返回与 userID 有任一方向边的全部用户
	Neighbors(ctx context.Context, userID uint) ([]uint, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository { return &followRepository{db: db} }

func (r *followRepository) Create(ctx context.Context, followerID, followingID uint) error {
	f := &model.Follow{FollowerID: followerID, FollowingID: followingID}
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.Follow{})
	return res.RowsAffected, res.Error
}

func (r *followRepository) Exists(ctx context.Context, followerID, followingID uint) (bool, error) {
	return exists(r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID))
}

func (r *followRepository) ListFollowers(ctx context.Context, userID uint, offset, limit int) ([]*model.Follow, error) {
	var res []*model.Follow
	err := r.db.WithContext(ctx).Where("following_id = ?", userID).
		Order("timestamp DESC").Order("follower_id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (r *followRepository) ListFollowings(ctx context.Context, userID uint, offset, limit int) ([]*model.Follow, error) {
	var res []*model.Follow
	err := r.db.WithContext(ctx).Where("follower_id = ?", userID).
		Order("timestamp DESC").Order("following_id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (r *followRepository) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Follow{}).Where("following_id = ?", userID).Count(&cnt).Error
	return cnt, err
}

func (r *followRepository) CountFollowings(ctx context.Context, userID uint) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Follow{}).Where("follower_id = ?", userID).Count(&cnt).Error
	return cnt, err
}

func (r *followRepository) Neighbors(ctx context.Context, userID uint) ([]uint, error) {
	var edges []*model.Follow
	if err := r.db.WithContext(ctx).
		Where("follower_id = ? OR following_id = ?", userID, userID).
		Find(&edges).Error; err != nil {
		return nil, err
	}
	seen := make(map[uint]struct{}, len(edges))
	out := make([]uint, 0, len(edges))
	for _, e := range edges {
		other := e.FollowingID
		if other == userID {
			other = e.FollowerID
		}
		if _, ok := seen[other]; !ok {
			seen[other] = struct{}{}
			out = append(out, other)
		}
	}
	return out, nil
}
