package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/d60-Lab/campus-social/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	Save(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByVerificationToken(ctx context.Context, token string) (*model.User, error)
	FindByIDs(ctx context.Context, ids []uint) (map[uint]*model.User, error)
	Search(ctx context.Context, normalized string, offset, limit int) ([]*model.User, int64, error)
	DeleteCascade(ctx context.Context, id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// Save 全字段更新，会触发 BeforeSave 邮箱校验
func (r *userRepository) Save(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	return takeOne[model.User](r.db.WithContext(ctx).Where("user_id = ?", id))
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return takeOne[model.User](r.db.WithContext(ctx).Where("email = ?", email))
}

func (r *userRepository) FindByVerificationToken(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, nil
	}
	return takeOne[model.User](r.db.WithContext(ctx).Where("verification_token = ?", token))
}

func (r *userRepository) FindByIDs(ctx context.Context, ids []uint) (map[uint]*model.User, error) {
	out := make(map[uint]*model.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var users []*model.User
	if err := r.db.WithContext(ctx).Where("user_id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}

// likeEscaper 让 % 和 _ 按字面匹配；用 ! 作转义符，MySQL 字符串里的反斜杠另有含义
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// Search 在名、姓以及姓名拼接上做不区分大小写的子串匹配
func (r *userRepository) Search(ctx context.Context, normalized string, offset, limit int) ([]*model.User, int64, error) {
	concat := "LOWER(first_name || last_name)"
	if r.db.Dialector.Name() == "mysql" {
		concat = "LOWER(CONCAT(first_name, last_name))"
	}
	pattern := "%" + likeEscaper.Replace(normalized) + "%"
	q := r.db.WithContext(ctx).Model(&model.User{}).
		Where("LOWER(first_name) LIKE ? ESCAPE '!' OR LOWER(last_name) LIKE ? ESCAPE '!' OR "+concat+" LIKE ? ESCAPE '!'",
			pattern, pattern, pattern)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []*model.User
	err := q.Order("first_name ASC").Order("last_name ASC").Order("user_id ASC").
		Offset(offset).Limit(limit).Find(&users).Error
	return users, total, err
}

// DeleteCascade 在一个事务里删除用户及其所有关联数据
func (r *userRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var postIDs []uint
		if err := tx.Model(&model.Post{}).Where("user_id = ?", id).Pluck("post_id", &postIDs).Error; err != nil {
			return err
		}
		steps := []struct {
			model any
			where string
			args  []any
		}{
			{&model.Comment{}, "post_id IN ? OR user_id = ?", []any{postIDs, id}},
			{&model.Like{}, "post_id IN ? OR user_id = ?", []any{postIDs, id}},
			{&model.Report{}, "report_type = ? AND reported_id IN ?", []any{model.ReportedPost, postIDs}},
			{&model.Post{}, "user_id = ?", []any{id}},
			{&model.Follow{}, "follower_id = ? OR following_id = ?", []any{id, id}},
			{&model.DirectMessage{}, "sender_id = ? OR receiver_id = ?", []any{id, id}},
			{&model.GroupMessage{}, "sender_id = ?", []any{id}},
			{&model.GroupMember{}, "user_id = ?", []any{id}},
			{&model.Report{}, "report_type = ? AND reported_id = ?", []any{model.ReportedUser, id}},
		}
		for _, s := range steps {
			if err := tx.Where(s.where, s.args...).Delete(s.model).Error; err != nil {
				return err
			}
		}
		return tx.Where("user_id = ?", id).Delete(&model.User{}).Error
	})
}
