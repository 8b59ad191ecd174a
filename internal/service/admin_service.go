package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/d60-Lab/campus-social/internal/cache"
	"github.com/d60-Lab/campus-social/internal/model"
	"github.com/d60-Lab/campus-social/internal/repository"
	"github.com/d60-Lab/campus-social/pkg/logger"
)

type AdminService interface {
	DeleteUser(ctx context.Context, admin *model.User, userID uint) error
	DeletePost(ctx context.Context, admin *model.User, postID uint) error
}

type adminService struct {
	users   repository.UserRepository
	follows repository.FollowRepository
	posts   PostService
	counts  *cache.FollowCounts
}

func NewAdminService(users repository.UserRepository, follows repository.FollowRepository, posts PostService, counts *cache.FollowCounts) AdminService {
	return &adminService{users: users, follows: follows, posts: posts, counts: counts}
}

// DeleteUser 不能删除管理员账号
func (s *adminService) DeleteUser(ctx context.Context, admin *model.User, userID uint) error {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}
	if u.Role == model.RoleAdmin {
		return ErrForbidden
	}
	neighbors, err := s.follows.Neighbors(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.users.DeleteCascade(ctx, userID); err != nil {
		return err
	}

	s.counts.Forget(ctx, userID)
	for _, n := range neighbors {
		s.counts.Forget(ctx, n)
	}
	logger.Info("user deleted by admin", zap.Uint("user_id", userID), zap.Uint("admin_id", adminID(admin)))
	return nil
}

func (s *adminService) DeletePost(ctx context.Context, admin *model.User, postID uint) error {
	if err := s.posts.ForceDelete(ctx, postID); err != nil {
		return err
	}
	logger.Info("post deleted by admin", zap.Uint("post_id", postID), zap.Uint("admin_id", adminID(admin)))
	return nil
}

func adminID(u *model.User) uint {
	if u == nil {
		return 0
	}
	return u.ID
}
