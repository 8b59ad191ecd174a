package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/campus-social/internal/cache"
	"github.com/d60-Lab/campus-social/internal/model"
	"github.com/d60-Lab/campus-social/internal/repository"
	"github.com/d60-Lab/campus-social/pkg/metrics"
)

// RelationshipService 关系链服务
type RelationshipService interface {
	Follow(ctx context.Context, followerID, followingID uint) error
	Unfollow(ctx context.Context, followerID, followingID uint) error
	IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error)
	IsMutual(ctx context.Context, a, b uint) (bool, error)
	ListFollowers(ctx context.Context, userID uint, page, pageSize int) (*model.Page[model.UserSummary], error)
	ListFollowings(ctx context.Context, userID uint, page, pageSize int) (*model.Page[model.UserSummary], error)
	CountFollowers(ctx context.Context, userID uint) (int64, error)
	CountFollowings(ctx context.Context, userID uint) (int64, error)
}

type relationshipService struct {
	follows repository.FollowRepository
	users   repository.UserRepository
	counts  *cache.FollowCounts
}

// NewRelationshipService counts 可以为 nil
func NewRelationshipService(follows repository.FollowRepository, users repository.UserRepository, counts *cache.FollowCounts) RelationshipService {
	return &relationshipService{follows: follows, users: users, counts: counts}
}

func (s *relationshipService) Follow(ctx context.Context, followerID, followingID uint) error {
	if followerID == followingID {
		return ErrInvalidRelationship
	}
	target, err := s.users.FindByID(ctx, followingID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}
	already, err := s.follows.Exists(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if already {
		return ErrAlreadyFollowing
	}
	if err := s.follows.Create(ctx, followerID, followingID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return ErrAlreadyFollowing
		case errors.Is(err, model.ErrSelfFollow):
			return ErrInvalidRelationship
		}
		return err
	}
	s.counts.Invalidate(ctx, followerID, followingID)
	metrics.SocialActions.WithLabelValues("follow").Inc()
	return nil
}

// Unfollow 关系不存在时视为成功
func (s *relationshipService) Unfollow(ctx context.Context, followerID, followingID uint) error {
	n, err := s.follows.Delete(ctx, followerID, followingID)
	if err != nil || n == 0 {
		return err
	}
	s.counts.Invalidate(ctx, followerID, followingID)
	metrics.SocialActions.WithLabelValues("unfollow").Inc()
	return nil
}

func (s *relationshipService) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.follows.Exists(ctx, followerID, followingID)
}

func (s *relationshipService) IsMutual(ctx context.Context, a, b uint) (bool, error) {
	ab, err := s.follows.Exists(ctx, a, b)
	if err != nil || !ab {
		return false, err
	}
	return s.follows.Exists(ctx, b, a)
}

func (s *relationshipService) ListFollowers(ctx context.Context, userID uint, page, pageSize int) (*model.Page[model.UserSummary], error) {
	page, pageSize = normalizePage(page, pageSize)
	edges, err := s.follows.ListFollowers(ctx, userID, offsetOf(page, pageSize), pageSize)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, len(edges))
	for i, e := range edges {
		ids[i] = e.FollowerID
	}
	total, err := s.CountFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.summaries(ctx, ids, page, pageSize, total)
}

func (s *relationshipService) ListFollowings(ctx context.Context, userID uint, page, pageSize int) (*model.Page[model.UserSummary], error) {
	page, pageSize = normalizePage(page, pageSize)
	edges, err := s.follows.ListFollowings(ctx, userID, offsetOf(page, pageSize), pageSize)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, len(edges))
	for i, e := range edges {
		ids[i] = e.FollowingID
	}
	total, err := s.CountFollowings(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.summaries(ctx, ids, page, pageSize, total)
}

// summaries 保持边的顺序；用户已删除时返回占位
func (s *relationshipService) summaries(ctx context.Context, ids []uint, page, pageSize int, total int64) (*model.Page[model.UserSummary], error) {
	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	items := make([]model.UserSummary, 0, len(ids))
	for _, id := range ids {
		if u, ok := users[id]; ok {
			items = append(items, u.Summary())
		} else {
			items = append(items, model.DeletedUserSummary(id))
		}
	}
	return &model.Page[model.UserSummary]{Items: items, Page: page, PageSize: pageSize, Total: total}, nil
}

func (s *relationshipService) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	return s.counts.Get(ctx, cache.Followers, userID, func(ctx context.Context) (int64, error) {
		return s.follows.CountFollowers(ctx, userID)
	})
}

func (s *relationshipService) CountFollowings(ctx context.Context, userID uint) (int64, error) {
	return s.counts.Get(ctx, cache.Followings, userID, func(ctx context.Context) (int64, error) {
		return s.follows.CountFollowings(ctx, userID)
	})
}
